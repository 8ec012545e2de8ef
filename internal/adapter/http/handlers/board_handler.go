package handlers

import (
	"net/http"

	response "acm_e_letras/internal/adapter/http/dto/response"
	"acm_e_letras/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BoardHandler serves the kanban read model: every stage with its deals.
type BoardHandler struct {
	usecase usecase.IAppUseCase
}

func NewBoardHandler(uc usecase.IAppUseCase) *BoardHandler {
	return &BoardHandler{usecase: uc}
}

// GetBoard godoc
// @Summary  Sales pipeline board
// @Produce  json
// @Success  200 {object} response.BoardResponse
// @Router   /board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	c.JSON(http.StatusOK, response.BuildBoard(h.usecase.Data()))
}
