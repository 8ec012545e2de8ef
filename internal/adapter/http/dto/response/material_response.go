package response

import (
	"acm_e_letras/internal/domain/entities"
)

type MaterialResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	PricingType string  `json:"pricingType"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		PricingType: string(m.PricingType),
	}
}

func FromMaterials(materials []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, FromMaterial(m))
	}
	return out
}
