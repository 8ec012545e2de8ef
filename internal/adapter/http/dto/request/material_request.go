package request

import (
	"acm_e_letras/internal/domain/entities"
)

// MaterialCreateRequest registers a catalog material. pricingType is the
// canonical wire value ("per_area" or "per_unit").
type MaterialCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	PricingType string  `json:"pricingType" binding:"required,oneof=per_area per_unit"`
}

func (r MaterialCreateRequest) ResolvePricingType() entities.PricingType {
	return entities.PricingType(r.PricingType)
}

// MaterialUpdateRequest carries a partial material update; absent fields keep
// their stored value.
type MaterialUpdateRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	PricingType *string  `json:"pricingType"`
}

// Validate checks the fields that are present.
func (r MaterialUpdateRequest) Validate() bool {
	if r.Price != nil && *r.Price <= 0 {
		return false
	}
	if r.PricingType != nil {
		switch entities.PricingType(*r.PricingType) {
		case entities.PricingPerArea, entities.PricingPerUnit:
		default:
			return false
		}
	}
	return true
}

func (r MaterialUpdateRequest) ResolvePricingType() *entities.PricingType {
	if r.PricingType == nil {
		return nil
	}
	pt := entities.PricingType(*r.PricingType)
	return &pt
}
