package response

import (
	"time"

	"acm_e_letras/internal/domain/entities"
	"acm_e_letras/internal/domain/pricing"
)

// unknownMaterialName is shown for lines whose material was deleted after the
// quote was created. The line still participates in the totals.
const unknownMaterialName = "N/A"

type QuoteItemResponse struct {
	ItemID       string   `json:"itemId"`
	MaterialID   string   `json:"materialId"`
	MaterialName string   `json:"materialName"`
	Quantity     int      `json:"quantity"`
	UnitPrice    float64  `json:"unitPrice"`
	Width        *float64 `json:"width,omitempty"`
	Height       *float64 `json:"height,omitempty"`
	PricingType  string   `json:"pricingType"`
	LineTotal    float64  `json:"lineTotal"`
}

type QuoteResponse struct {
	ID               string              `json:"id"`
	QuoteNumber      string              `json:"quoteNumber"`
	CompanyName      string              `json:"companyName"`
	ContactPerson    string              `json:"contactPerson"`
	Phone            string              `json:"phone"`
	Items            []QuoteItemResponse `json:"items"`
	CostSubtotal     float64             `json:"costSubtotal"`
	Subtotal         float64             `json:"subtotal"`
	Tax              float64             `json:"tax"`
	Total            float64             `json:"total"`
	ProfitMultiplier float64             `json:"profitMultiplier"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// FromQuote resolves material names against the current catalog and exposes
// the derived per-line and aggregate figures.
func FromQuote(q entities.Quote, materials []entities.Material) QuoteResponse {
	byID := make(map[string]entities.Material, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}

	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		name := unknownMaterialName
		if m, ok := byID[it.MaterialID]; ok {
			name = m.Name
		}
		items = append(items, QuoteItemResponse{
			ItemID:       it.ItemID,
			MaterialID:   it.MaterialID,
			MaterialName: name,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Width:        it.Width,
			Height:       it.Height,
			PricingType:  string(it.PricingType),
			LineTotal:    pricing.LineTotal(it),
		})
	}

	return QuoteResponse{
		ID:               q.ID,
		QuoteNumber:      q.QuoteNumber,
		CompanyName:      q.CompanyName,
		ContactPerson:    q.ContactPerson,
		Phone:            q.Phone,
		Items:            items,
		CostSubtotal:     pricing.CostSubtotal(q.Items),
		Subtotal:         q.Subtotal,
		Tax:              q.Tax,
		Total:            q.Total,
		ProfitMultiplier: q.ProfitMultiplier,
		CreatedAt:        q.CreatedAt,
	}
}

func FromQuotes(quotes []entities.Quote, materials []entities.Material) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q, materials))
	}
	return out
}
