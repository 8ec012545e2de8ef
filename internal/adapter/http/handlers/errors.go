package handlers

import (
	"errors"
	"net/http"

	"acm_e_letras/internal/domain/migration"
	"acm_e_letras/internal/usecase"
	"acm_e_letras/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapDomainError translates use case sentinels into the wire error contract.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoDealStatuses):
		return pkg.NewDomainErrorSimple("NO_DEAL_STATUS", "No pipeline stage configured", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusNameTaken):
		return pkg.NewDomainErrorSimple("STATUS_NAME_TAKEN", "A stage with this name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusInUse):
		return pkg.NewDomainErrorSimple("STATUS_IN_USE", "Stage still has deals in it", http.StatusConflict)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusNotFound):
		return pkg.NewDomainErrorSimple("STATUS_NOT_FOUND", "Stage not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoActiveDraft):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_DRAFT", "No draft session open for this quote", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftItemNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_ITEM_NOT_FOUND", "Draft item not found", http.StatusNotFound)
	case errors.Is(err, migration.ErrMalformedSnapshot):
		return pkg.NewDomainErrorSimple("INVALID_BACKUP", "Backup file is not a readable snapshot", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
