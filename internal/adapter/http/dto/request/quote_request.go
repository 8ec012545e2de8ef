package request

import (
	"errors"

	"acm_e_letras/internal/domain/entities"
	"acm_e_letras/internal/usecase"

	"github.com/google/uuid"
)

// ErrUnknownMaterial marks a quote line referencing a material id that is not
// in the catalog.
var ErrUnknownMaterial = errors.New("quote item references unknown material")

// defaultProfitMultiplier matches the builder's starting multiplier when the
// client omits one.
const defaultProfitMultiplier = 3

// QuoteItemRequest is one line of a quote creation payload. Unit price and
// pricing type are never accepted from the client; they are snapshotted from
// the referenced material.
type QuoteItemRequest struct {
	MaterialID string   `json:"materialId" binding:"required"`
	Quantity   int      `json:"quantity"`
	Width      *float64 `json:"width"`
	Height     *float64 `json:"height"`
}

// QuoteRequest creates a quote. Totals are computed server-side.
type QuoteRequest struct {
	CompanyName      string             `json:"companyName" binding:"required"`
	ContactPerson    string             `json:"contactPerson" binding:"required"`
	Phone            string             `json:"phone"`
	ProfitMultiplier float64            `json:"profitMultiplier"`
	Items            []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ResolveInput translates the payload into the domain command, snapshotting
// each material's current price and pricing type and clamping quantities and
// dimensions to their floors.
func (r QuoteRequest) ResolveInput(materials []entities.Material) (usecase.QuoteInput, error) {
	byID := make(map[string]entities.Material, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}

	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		m, ok := byID[it.MaterialID]
		if !ok {
			return usecase.QuoteInput{}, ErrUnknownMaterial
		}

		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		item := entities.QuoteItem{
			ItemID:      uuid.NewString(),
			MaterialID:  m.ID,
			Quantity:    qty,
			UnitPrice:   m.Price,
			PricingType: m.PricingType,
		}
		if m.PricingType == entities.PricingPerArea {
			item.Width = clampDim(it.Width)
			item.Height = clampDim(it.Height)
		}
		items = append(items, item)
	}

	multiplier := r.ProfitMultiplier
	if multiplier == 0 {
		multiplier = defaultProfitMultiplier
	}
	if multiplier < 1 {
		multiplier = 1
	}

	return usecase.QuoteInput{
		CompanyName:      r.CompanyName,
		ContactPerson:    r.ContactPerson,
		Phone:            r.Phone,
		Items:            items,
		ProfitMultiplier: multiplier,
	}, nil
}

func clampDim(v *float64) *float64 {
	d := 1.0
	if v != nil && *v > 0.01 {
		d = *v
	} else if v != nil {
		d = 0.01
	}
	return &d
}
