package response

import (
	"acm_e_letras/internal/domain/entities"
)

type StatusResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func FromStatus(s entities.DealStatus) StatusResponse {
	return StatusResponse{ID: s.ID, Name: s.Name, Color: s.Color}
}

func FromStatuses(statuses []entities.DealStatus) []StatusResponse {
	out := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, FromStatus(s))
	}
	return out
}

// BoardColumnResponse is one kanban column: the stage plus the deals sitting
// in it, in stored order.
type BoardColumnResponse struct {
	StatusResponse
	Deals []DealResponse `json:"deals"`
}

// BoardResponse is the whole pipeline, one column per stage. Deals pointing
// at a stage id that no longer exists are simply not shown.
type BoardResponse struct {
	Columns []BoardColumnResponse `json:"columns"`
}

func BuildBoard(data entities.AppData) BoardResponse {
	columns := make([]BoardColumnResponse, 0, len(data.DealStatuses))
	for _, s := range data.DealStatuses {
		col := BoardColumnResponse{StatusResponse: FromStatus(s), Deals: []DealResponse{}}
		for _, d := range data.Deals {
			if d.Status == s.ID {
				col.Deals = append(col.Deals, FromDeal(d))
			}
		}
		columns = append(columns, col)
	}
	return BoardResponse{Columns: columns}
}
