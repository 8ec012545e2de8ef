package handlers

import (
	"net/http"

	request "acm_e_letras/internal/adapter/http/dto/request"
	response "acm_e_letras/internal/adapter/http/dto/response"
	"acm_e_letras/internal/domain/entities"
	"acm_e_letras/internal/usecase"
	"acm_e_letras/pkg"

	"github.com/gin-gonic/gin"
)

var errStatusProtected = pkg.NewDomainErrorSimple("STATUS_PROTECTED",
	"The 'Orçamento' stage cannot be renamed or deleted", http.StatusUnprocessableEntity)

// StatusHandler handles HTTP requests for pipeline stages. The reserved
// "Orçamento" stage is protected here: it can change color but never be
// renamed or removed.
type StatusHandler struct {
	usecase usecase.IAppUseCase
}

func NewStatusHandler(uc usecase.IAppUseCase) *StatusHandler {
	return &StatusHandler{usecase: uc}
}

// ListStatuses godoc
// @Summary  List pipeline stages
// @Produce  json
// @Success  200 {array} response.StatusResponse
// @Router   /statuses [get]
func (h *StatusHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStatuses(h.usecase.Data().DealStatuses))
}

// CreateStatus godoc
// @Summary  Create a pipeline stage
// @Accept   json
// @Produce  json
// @Param    status body request.StatusCreateRequest true "Stage"
// @Success  201 {object} response.StatusResponse
// @Router   /statuses [post]
func (h *StatusHandler) CreateStatus(c *gin.Context) {
	var payload request.StatusCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	status, err := h.usecase.AddDealStatus(c.Request.Context(), payload.Name)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromStatus(status))
}

// UpdateStatus godoc
// @Summary  Rename or recolor a pipeline stage
// @Accept   json
// @Produce  json
// @Param    status body request.StatusUpdateRequest true "Partial stage"
// @Success  200 {object} response.StatusResponse
// @Router   /statuses/{id} [patch]
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.Validate() {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	if payload.Name != nil && h.isProtected(id) {
		c.JSON(errStatusProtected.HTTPStatus, errStatusProtected.ToHTTPError())
		return
	}

	status, err := h.usecase.UpdateStatusDetails(c.Request.Context(), id, payload.Name, payload.Color)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatus(status))
}

// DeleteStatus godoc
// @Summary  Delete an empty pipeline stage
// @Success  204
// @Router   /statuses/{id} [delete]
func (h *StatusHandler) DeleteStatus(c *gin.Context) {
	id := c.Param("id")
	if h.isProtected(id) {
		c.JSON(errStatusProtected.HTTPStatus, errStatusProtected.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteDealStatus(c.Request.Context(), id); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StatusHandler) isProtected(id string) bool {
	status, ok := h.usecase.Data().FindStatusByID(id)
	return ok && status.Name == entities.StatusNameOrcamento
}
