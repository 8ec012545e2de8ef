package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"acm_e_letras/internal/domain/entities"

	"go.uber.org/zap"
)

// AddDealStatus appends a new pipeline stage with a random color. Duplicate
// names are rejected and leave the aggregate untouched.
func (u *AppUseCase) AddDealStatus(ctx context.Context, name string) (entities.DealStatus, error) {
	name = strings.TrimSpace(name)

	var created entities.DealStatus
	err := u.mutate(ctx, func(data *entities.AppData) error {
		if _, exists := data.FindStatusByName(name); exists {
			u.log.Info("rejected duplicate deal status name", zap.String("name", name))
			return ErrStatusNameTaken
		}
		created = entities.DealStatus{
			ID:    u.newID(),
			Name:  name,
			Color: fmt.Sprintf("#%06x", rand.Intn(0x1000000)),
		}
		data.DealStatuses = append(data.DealStatuses, created)
		return nil
	})
	return created, err
}

// UpdateStatusDetails renames and/or recolors a stage. A rename colliding
// with another stage's name is rejected. Protecting the "Orçamento" stage is
// the caller's job; the store stays permissive.
func (u *AppUseCase) UpdateStatusDetails(ctx context.Context, id string, name, color *string) (entities.DealStatus, error) {
	var updated entities.DealStatus
	err := u.mutate(ctx, func(data *entities.AppData) error {
		if name != nil {
			trimmed := strings.TrimSpace(*name)
			name = &trimmed
			if other, exists := data.FindStatusByName(trimmed); exists && other.ID != id {
				u.log.Info("rejected status rename to existing name", zap.String("name", trimmed))
				return ErrStatusNameTaken
			}
		}
		for i := range data.DealStatuses {
			if data.DealStatuses[i].ID != id {
				continue
			}
			if name != nil {
				data.DealStatuses[i].Name = *name
			}
			if color != nil {
				data.DealStatuses[i].Color = *color
			}
			updated = data.DealStatuses[i]
			return nil
		}
		return ErrStatusNotFound
	})
	return updated, err
}

// DeleteDealStatus removes an empty stage. A stage still referenced by any
// deal is rejected; an unknown id is a no-op.
func (u *AppUseCase) DeleteDealStatus(ctx context.Context, id string) error {
	return u.mutate(ctx, func(data *entities.AppData) error {
		for _, d := range data.Deals {
			if d.Status == id {
				u.log.Info("rejected deletion of non-empty deal status", zap.String("statusId", id))
				return ErrStatusInUse
			}
		}
		kept := data.DealStatuses[:0]
		for _, s := range data.DealStatuses {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		data.DealStatuses = kept
		return nil
	})
}
