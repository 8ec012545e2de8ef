package entities

import "time"

// QuoteItem is one quote↔material association. UnitPrice and PricingType are
// copied from the material when the item is added and never re-synced.
// Width/Height are meaningful only for PricingPerArea items; when absent the
// pricing engine treats them as 1.
type QuoteItem struct {
	ItemID      string      `json:"itemId"`
	MaterialID  string      `json:"materialId"`
	Quantity    int         `json:"quantity"`
	UnitPrice   float64     `json:"unitPrice"`
	Width       *float64    `json:"width,omitempty"`
	Height      *float64    `json:"height,omitempty"`
	PricingType PricingType `json:"pricingType"`
}

// Clone returns a deep copy of the item, including the optional dimensions.
func (it QuoteItem) Clone() QuoteItem {
	out := it
	if it.Width != nil {
		w := *it.Width
		out.Width = &w
	}
	if it.Height != nil {
		h := *it.Height
		out.Height = &h
	}
	return out
}

// Quote is a priced proposal document.
//
// Domain notes:
//   - QuoteNumber is "ORC-NNNN", strictly increasing and never reused, even
//     after the quote that carried it is deleted.
//   - Subtotal/Tax/Total are the committed results of the pricing engine at
//     save time; they are never recomputed lazily from a stored quote.
type Quote struct {
	ID               string      `json:"id"`
	QuoteNumber      string      `json:"quoteNumber"`
	CompanyName      string      `json:"companyName"`
	ContactPerson    string      `json:"contactPerson"`
	Phone            string      `json:"phone"`
	Items            []QuoteItem `json:"items"`
	Subtotal         float64     `json:"subtotal"`
	Tax              float64     `json:"tax"`
	Total            float64     `json:"total"`
	ProfitMultiplier float64     `json:"profitMultiplier"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// Clone returns a deep copy. The draft reconciler edits clones so the
// committed quote stays untouched until an explicit save.
func (q Quote) Clone() Quote {
	out := q
	out.Items = make([]QuoteItem, len(q.Items))
	for i, it := range q.Items {
		out.Items[i] = it.Clone()
	}
	return out
}
