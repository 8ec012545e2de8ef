package handlers

import (
	"net/http"

	request "acm_e_letras/internal/adapter/http/dto/request"
	response "acm_e_letras/internal/adapter/http/dto/response"
	"acm_e_letras/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MaterialHandler handles HTTP requests for the materials catalog.
type MaterialHandler struct {
	usecase usecase.IAppUseCase
}

func NewMaterialHandler(uc usecase.IAppUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// ListMaterials godoc
// @Summary  List catalog materials
// @Produce  json
// @Success  200 {array} response.MaterialResponse
// @Router   /materials [get]
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMaterials(h.usecase.Data().Materials))
}

// CreateMaterial godoc
// @Summary  Register a catalog material
// @Accept   json
// @Produce  json
// @Param    material body request.MaterialCreateRequest true "Material"
// @Success  201 {object} response.MaterialResponse
// @Router   /materials [post]
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.AddMaterial(c.Request.Context(), payload.Name, payload.Price, payload.ResolvePricingType())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromMaterial(material))
}

// UpdateMaterial godoc
// @Summary  Update a catalog material
// @Accept   json
// @Produce  json
// @Param    material body request.MaterialUpdateRequest true "Partial material"
// @Success  200 {object} response.MaterialResponse
// @Router   /materials/{id} [patch]
func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.Validate() {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.UpdateMaterial(c.Request.Context(), c.Param("id"),
		payload.Name, payload.Price, payload.ResolvePricingType())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(material))
}

// DeleteMaterial godoc
// @Summary  Delete a catalog material
// @Success  204
// @Router   /materials/{id} [delete]
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.DeleteMaterial(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
