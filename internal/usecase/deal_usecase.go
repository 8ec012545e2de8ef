package usecase

import (
	"context"
	"strings"

	"acm_e_letras/internal/domain/entities"
)

// AddDeal appends a deal in the first configured pipeline stage. Without any
// stage the aggregate is left untouched.
func (u *AppUseCase) AddDeal(ctx context.Context, title, clientName string, value float64) (entities.Deal, error) {
	title = strings.TrimSpace(title)
	clientName = strings.TrimSpace(clientName)

	var created entities.Deal
	err := u.mutate(ctx, func(data *entities.AppData) error {
		if len(data.DealStatuses) == 0 {
			return ErrNoDealStatuses
		}
		created = entities.Deal{
			ID:         u.newID(),
			Title:      title,
			ClientName: clientName,
			Value:      value,
			Status:     data.DealStatuses[0].ID,
		}
		data.Deals = append(data.Deals, created)
		return nil
	})
	return created, err
}

// UpdateDealStatus reassigns a deal's pipeline stage. The status id is
// deliberately not checked for existence; the board renders deals with an
// unresolved stage as orphans instead of failing.
func (u *AppUseCase) UpdateDealStatus(ctx context.Context, id, statusID string) (entities.Deal, error) {
	var updated entities.Deal
	err := u.mutate(ctx, func(data *entities.AppData) error {
		for i := range data.Deals {
			if data.Deals[i].ID == id {
				data.Deals[i].Status = statusID
				updated = data.Deals[i]
				return nil
			}
		}
		return ErrDealNotFound
	})
	return updated, err
}

// DeleteDeal removes a deal by id. Deleting an unknown id is a no-op.
func (u *AppUseCase) DeleteDeal(ctx context.Context, id string) error {
	return u.mutate(ctx, func(data *entities.AppData) error {
		kept := data.Deals[:0]
		for _, d := range data.Deals {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		data.Deals = kept
		return nil
	})
}
