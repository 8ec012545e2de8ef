package usecase

import (
	"context"
	"strings"

	"acm_e_letras/internal/domain/entities"
)

// AddMaterial appends a catalog item. Price validation happens at the edge.
func (u *AppUseCase) AddMaterial(ctx context.Context, name string, price float64, pricingType entities.PricingType) (entities.Material, error) {
	name = strings.TrimSpace(name)

	var created entities.Material
	err := u.mutate(ctx, func(data *entities.AppData) error {
		created = entities.Material{
			ID:          u.newID(),
			Name:        name,
			Price:       price,
			PricingType: pricingType,
		}
		data.Materials = append(data.Materials, created)
		return nil
	})
	return created, err
}

// UpdateMaterial patches the given fields. Quotes that already copied the old
// price are not touched: line-item prices are add-time snapshots.
func (u *AppUseCase) UpdateMaterial(ctx context.Context, id string, name *string, price *float64, pricingType *entities.PricingType) (entities.Material, error) {
	var updated entities.Material
	err := u.mutate(ctx, func(data *entities.AppData) error {
		for i := range data.Materials {
			if data.Materials[i].ID != id {
				continue
			}
			if name != nil {
				data.Materials[i].Name = strings.TrimSpace(*name)
			}
			if price != nil {
				data.Materials[i].Price = *price
			}
			if pricingType != nil {
				data.Materials[i].PricingType = *pricingType
			}
			updated = data.Materials[i]
			return nil
		}
		return ErrMaterialNotFound
	})
	return updated, err
}

// DeleteMaterial removes a catalog item without touching quotes that
// reference it; their items keep the copied price and render the material as
// unknown. Deleting an unknown id is a no-op.
func (u *AppUseCase) DeleteMaterial(ctx context.Context, id string) error {
	return u.mutate(ctx, func(data *entities.AppData) error {
		kept := data.Materials[:0]
		for _, m := range data.Materials {
			if m.ID != id {
				kept = append(kept, m)
			}
		}
		data.Materials = kept
		return nil
	})
}
