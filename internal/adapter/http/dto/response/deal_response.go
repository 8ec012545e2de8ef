package response

import (
	"acm_e_letras/internal/domain/entities"
)

type DealResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	ClientName string  `json:"clientName"`
	Value      float64 `json:"value"`
	Status     string  `json:"status"`
}

func FromDeal(d entities.Deal) DealResponse {
	return DealResponse{
		ID:         d.ID,
		Title:      d.Title,
		ClientName: d.ClientName,
		Value:      d.Value,
		Status:     d.Status,
	}
}

func FromDeals(deals []entities.Deal) []DealResponse {
	out := make([]DealResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, FromDeal(d))
	}
	return out
}
