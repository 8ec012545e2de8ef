package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "acm_e_letras/internal/adapter/http/dto/request"
	response "acm_e_letras/internal/adapter/http/dto/response"
	"acm_e_letras/internal/adapter/pdf"
	"acm_e_letras/internal/usecase"
	"acm_e_letras/pkg"

	"github.com/gin-gonic/gin"
)

var errUnknownQuoteMaterial = pkg.NewDomainErrorSimple("INVALID_QUOTE_ITEMS",
	"A quote item references a material that is not in the catalog", http.StatusUnprocessableEntity)

// QuoteHandler handles HTTP requests for quotes, including the rendered PDF
// proposal.
type QuoteHandler struct {
	usecase usecase.IAppUseCase
}

func NewQuoteHandler(uc usecase.IAppUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListQuotes godoc
// @Summary  List quotes
// @Produce  json
// @Success  200 {array} response.QuoteResponse
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	data := h.usecase.Data()
	c.JSON(http.StatusOK, response.FromQuotes(data.Quotes, data.Materials))
}

// GetQuote godoc
// @Summary  Fetch a quote
// @Produce  json
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	data := h.usecase.Data()
	quote, ok := data.FindQuote(c.Param("id"))
	if !ok {
		appErr := mapDomainError(usecase.ErrQuoteNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote, data.Materials))
}

// CreateQuote godoc
// @Summary  Create a quote and its companion pipeline deal
// @Accept   json
// @Produce  json
// @Param    quote body request.QuoteRequest true "Quote"
// @Success  201 {object} response.QuoteResponse
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	data := h.usecase.Data()
	input, err := payload.ResolveInput(data.Materials)
	if err != nil {
		if errors.Is(err, request.ErrUnknownMaterial) {
			c.JSON(errUnknownQuoteMaterial.HTTPStatus, errUnknownQuoteMaterial.ToHTTPError())
			return
		}
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.AddQuote(c.Request.Context(), input)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote, data.Materials))
}

// DeleteQuote godoc
// @Summary  Delete a quote (its companion deal survives)
// @Success  204
// @Router   /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportQuotePDF godoc
// @Summary  Download the quote as a PDF proposal
// @Produce  application/pdf
// @Success  200
// @Router   /quotes/{id}/pdf [get]
func (h *QuoteHandler) ExportQuotePDF(c *gin.Context) {
	data := h.usecase.Data()
	quote, ok := data.FindQuote(c.Param("id"))
	if !ok {
		appErr := mapDomainError(usecase.ErrQuoteNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := pdf.Render(quote, data.Materials, data.CompanyLogo)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename(quote)))
	c.Data(http.StatusOK, "application/pdf", doc)
}
