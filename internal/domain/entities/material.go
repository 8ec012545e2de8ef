package entities

import "encoding/json"

// PricingType selects how a material is priced inside a quote.
//
// Legacy backups used "per_m2" for the area-based type; the migration layer
// normalizes it to PricingPerArea on load.
type PricingType string

const (
	PricingPerArea PricingType = "per_area"
	PricingPerUnit PricingType = "per_unit"
)

// UnmarshalJSON accepts the legacy "per_m2" spelling alongside the current
// values so old backup files import cleanly.
func (p *PricingType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "per_m2" {
		s = string(PricingPerArea)
	}
	*p = PricingType(s)
	return nil
}

// Material is a priced catalog item. Deleting a material never cascades to
// quotes that already copied its price into a line item.
type Material struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	PricingType PricingType `json:"pricingType"`
}
