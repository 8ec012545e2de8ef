package request

// DraftItemAddRequest appends a line to an open quote draft.
type DraftItemAddRequest struct {
	MaterialID string `json:"materialId" binding:"required"`
}

// DraftItemUpdateRequest patches a draft line; absent fields keep their
// current value.
type DraftItemUpdateRequest struct {
	Quantity *int     `json:"quantity"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
}

// DraftPatchRequest adjusts draft-level settings.
type DraftPatchRequest struct {
	ProfitMultiplier float64 `json:"profitMultiplier" binding:"required"`
}
