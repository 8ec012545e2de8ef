package request

// DealRequest is the payload for creating a pipeline deal. Required fields
// and the positive-value rule are enforced here, at the edge; the store
// itself stays permissive.
type DealRequest struct {
	Title      string  `json:"title" binding:"required"`
	ClientName string  `json:"clientName" binding:"required"`
	Value      float64 `json:"value" binding:"required,gt=0"`
}

// DealStatusPatchRequest moves a deal to another column. The status id is
// intentionally not validated against existing stages.
type DealStatusPatchRequest struct {
	Status string `json:"status" binding:"required"`
}
