// Package pricing derives a quote's financial totals from its line items.
// Every function is pure; no rounding is applied here. Two-decimal display
// formatting belongs to the presentation layer.
package pricing

import "acm_e_letras/internal/domain/entities"

// InterestRate is the fixed surcharge applied on top of the profit-adjusted
// subtotal (15%).
const InterestRate = 0.15

// Summary holds every derived figure for a set of items and a multiplier.
type Summary struct {
	CostSubtotal float64
	Subtotal     float64
	Tax          float64
	Total        float64
}

// LineTotal computes the cost of a single line item. For area-priced items a
// missing width or height counts as 1, not as an error.
func LineTotal(it entities.QuoteItem) float64 {
	if it.PricingType == entities.PricingPerArea {
		return it.UnitPrice * dim(it.Width) * dim(it.Height) * float64(it.Quantity)
	}
	return it.UnitPrice * float64(it.Quantity)
}

// CostSubtotal is the sum of all line totals before profit.
func CostSubtotal(items []entities.QuoteItem) float64 {
	total := 0.0
	for _, it := range items {
		total += LineTotal(it)
	}
	return total
}

// Summarize computes the full chain: cost subtotal, profit-adjusted subtotal,
// interest, and grand total.
func Summarize(items []entities.QuoteItem, profitMultiplier float64) Summary {
	cost := CostSubtotal(items)
	subtotal := cost * profitMultiplier
	tax := subtotal * InterestRate
	return Summary{
		CostSubtotal: cost,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        subtotal + tax,
	}
}

func dim(v *float64) float64 {
	if v == nil {
		return 1
	}
	return *v
}
