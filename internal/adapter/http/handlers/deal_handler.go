package handlers

import (
	"net/http"

	request "acm_e_letras/internal/adapter/http/dto/request"
	response "acm_e_letras/internal/adapter/http/dto/response"
	"acm_e_letras/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DealHandler handles HTTP requests for pipeline deals.
type DealHandler struct {
	usecase usecase.IAppUseCase
}

func NewDealHandler(uc usecase.IAppUseCase) *DealHandler {
	return &DealHandler{usecase: uc}
}

// ListDeals godoc
// @Summary  List deals
// @Produce  json
// @Success  200 {array} response.DealResponse
// @Router   /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDeals(h.usecase.Data().Deals))
}

// CreateDeal godoc
// @Summary  Create a deal in the first pipeline stage
// @Accept   json
// @Produce  json
// @Param    deal body request.DealRequest true "Deal"
// @Success  201 {object} response.DealResponse
// @Router   /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var payload request.DealRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	deal, err := h.usecase.AddDeal(c.Request.Context(), payload.Title, payload.ClientName, payload.Value)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDeal(deal))
}

// MoveDeal godoc
// @Summary  Move a deal to another stage
// @Accept   json
// @Produce  json
// @Param    id body request.DealStatusPatchRequest true "Target stage"
// @Success  200 {object} response.DealResponse
// @Router   /deals/{id}/status [patch]
func (h *DealHandler) MoveDeal(c *gin.Context) {
	var payload request.DealStatusPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	deal, err := h.usecase.UpdateDealStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeal(deal))
}

// DeleteDeal godoc
// @Summary  Delete a deal
// @Success  204
// @Router   /deals/{id} [delete]
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	if err := h.usecase.DeleteDeal(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
