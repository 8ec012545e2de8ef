package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	response "acm_e_letras/internal/adapter/http/dto/response"
	"acm_e_letras/internal/usecase"
	"acm_e_letras/pkg"

	"github.com/gin-gonic/gin"
)

// maxLogoBytes caps the uploaded company logo at 1 MiB, matching the limit
// the settings screen enforces.
const maxLogoBytes = 1 << 20

var (
	errLogoTooLarge = pkg.NewDomainErrorSimple("LOGO_TOO_LARGE",
		"Logo must be at most 1 MiB", http.StatusRequestEntityTooLarge)
	errLogoNotImage = pkg.NewDomainErrorSimple("LOGO_NOT_IMAGE",
		"Logo must be an image file", http.StatusUnsupportedMediaType)
	errMissingLogoFile = pkg.NewDomainErrorSimple("MISSING_LOGO_FILE",
		"Multipart field 'logo' is required", http.StatusBadRequest)
)

// BackupHandler handles full-snapshot export/import, factory reset and the
// company settings (logo).
type BackupHandler struct {
	usecase usecase.IAppUseCase
}

func NewBackupHandler(uc usecase.IAppUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

// ExportBackup godoc
// @Summary  Download the full data snapshot as a JSON backup
// @Produce  json
// @Success  200
// @Router   /backup/export [get]
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	payload, filename, err := h.usecase.ExportData()
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", payload)
}

// ImportBackup godoc
// @Summary  Replace all data with an uploaded backup
// @Accept   json
// @Success  204
// @Router   /backup/import [post]
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ImportData(c.Request.Context(), raw); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetData godoc
// @Summary  Reset all data to the seed aggregate
// @Success  204
// @Router   /backup/reset [post]
func (h *BackupHandler) ResetData(c *gin.Context) {
	if err := h.usecase.ResetData(c.Request.Context()); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSettings godoc
// @Summary  Company settings
// @Produce  json
// @Success  200 {object} response.SettingsResponse
// @Router   /settings [get]
func (h *BackupHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, response.SettingsResponse{CompanyLogo: h.usecase.Data().CompanyLogo})
}

// UploadLogo godoc
// @Summary  Upload the company logo used on PDF proposals
// @Accept   multipart/form-data
// @Success  204
// @Router   /settings/logo [post]
func (h *BackupHandler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(errMissingLogoFile.HTTPStatus, errMissingLogoFile.ToHTTPError())
		return
	}
	defer file.Close()

	if header.Size > maxLogoBytes {
		c.JSON(errLogoTooLarge.HTTPStatus, errLogoTooLarge.ToHTTPError())
		return
	}

	raw, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if len(raw) > maxLogoBytes {
		c.JSON(errLogoTooLarge.HTTPStatus, errLogoTooLarge.ToHTTPError())
		return
	}

	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") {
		c.JSON(errLogoNotImage.HTTPStatus, errLogoNotImage.ToHTTPError())
		return
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(raw))
	if err := h.usecase.SetCompanyLogo(c.Request.Context(), dataURI); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteLogo godoc
// @Summary  Remove the company logo
// @Success  204
// @Router   /settings/logo [delete]
func (h *BackupHandler) DeleteLogo(c *gin.Context) {
	if err := h.usecase.SetCompanyLogo(c.Request.Context(), ""); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
