package handlers

import (
	"net/http"

	request "acm_e_letras/internal/adapter/http/dto/request"
	response "acm_e_letras/internal/adapter/http/dto/response"
	"acm_e_letras/internal/domain/entities"
	"acm_e_letras/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DraftHandler exposes quote edit sessions. Every mutation returns the full
// recalculated draft so the client can render totals without computing them.
type DraftHandler struct {
	app    usecase.IAppUseCase
	drafts usecase.IQuoteDraftUseCase
}

func NewDraftHandler(app usecase.IAppUseCase, drafts usecase.IQuoteDraftUseCase) *DraftHandler {
	return &DraftHandler{app: app, drafts: drafts}
}

// BeginDraft godoc
// @Summary  Open an edit session over a quote
// @Produce  json
// @Success  201 {object} response.QuoteResponse
// @Router   /quotes/{id}/draft [post]
func (h *DraftHandler) BeginDraft(c *gin.Context) {
	draft, err := h.drafts.Begin(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, h.respond(draft))
}

// GetDraft godoc
// @Summary  Fetch the current draft
// @Produce  json
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id}/draft [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	draft, err := h.drafts.Get(c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.respond(draft))
}

// PatchDraft godoc
// @Summary  Adjust the draft profit multiplier
// @Accept   json
// @Produce  json
// @Param    draft body request.DraftPatchRequest true "Draft settings"
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id}/draft [patch]
func (h *DraftHandler) PatchDraft(c *gin.Context) {
	var payload request.DraftPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	draft, err := h.drafts.SetProfitMultiplier(c.Param("id"), payload.ProfitMultiplier)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.respond(draft))
}

// AddDraftItem godoc
// @Summary  Add a line item to the draft
// @Accept   json
// @Produce  json
// @Param    item body request.DraftItemAddRequest true "Material to add"
// @Success  201 {object} response.QuoteResponse
// @Router   /quotes/{id}/draft/items [post]
func (h *DraftHandler) AddDraftItem(c *gin.Context) {
	var payload request.DraftItemAddRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	draft, err := h.drafts.AddItem(c.Param("id"), payload.MaterialID)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, h.respond(draft))
}

// UpdateDraftItem godoc
// @Summary  Patch a draft line item
// @Accept   json
// @Produce  json
// @Param    item body request.DraftItemUpdateRequest true "Partial line item"
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id}/draft/items/{itemId} [patch]
func (h *DraftHandler) UpdateDraftItem(c *gin.Context) {
	var payload request.DraftItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	draft, err := h.drafts.UpdateItem(c.Param("id"), c.Param("itemId"),
		payload.Quantity, payload.Width, payload.Height)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.respond(draft))
}

// RemoveDraftItem godoc
// @Summary  Remove a draft line item
// @Produce  json
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id}/draft/items/{itemId} [delete]
func (h *DraftHandler) RemoveDraftItem(c *gin.Context) {
	draft, err := h.drafts.RemoveItem(c.Param("id"), c.Param("itemId"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.respond(draft))
}

// SaveDraft godoc
// @Summary  Commit the draft back to the store
// @Produce  json
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id}/draft/save [post]
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	committed, err := h.drafts.Save(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.respond(committed))
}

// CancelDraft godoc
// @Summary  Discard the draft without saving
// @Success  204
// @Router   /quotes/{id}/draft [delete]
func (h *DraftHandler) CancelDraft(c *gin.Context) {
	if err := h.drafts.Cancel(c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) respond(q entities.Quote) response.QuoteResponse {
	return response.FromQuote(q, h.app.Data().Materials)
}
