package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"acm_e_letras/internal/domain/entities"
	"acm_e_letras/internal/domain/migration"
)

// ExportData serializes the whole aggregate for download and returns the
// payload together with the backup filename.
func (u *AppUseCase) ExportData() ([]byte, string, error) {
	data := u.Data()
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("acm_e_letras_backup_%s.json", u.now().UTC().Format("2006-01-02"))
	return raw, filename, nil
}

// ImportData runs the snapshot through the migration layer and replaces the
// aggregate wholesale. Malformed input returns migration.ErrMalformedSnapshot
// and leaves the existing data untouched.
func (u *AppUseCase) ImportData(ctx context.Context, raw []byte) error {
	data, err := migration.Normalize(raw)
	if err != nil {
		return err
	}
	u.replace(ctx, data)
	return nil
}

// ResetData restores the seed aggregate.
func (u *AppUseCase) ResetData(ctx context.Context) error {
	u.replace(ctx, entities.NewAppData())
	return nil
}

// SetCompanyLogo stores the branding image as a data URI. Size and type
// limits are enforced at the upload edge.
func (u *AppUseCase) SetCompanyLogo(ctx context.Context, dataURI string) error {
	return u.mutate(ctx, func(data *entities.AppData) error {
		data.CompanyLogo = dataURI
		return nil
	})
}
