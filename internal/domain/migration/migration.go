// Package migration normalizes persisted snapshots into the current AppData
// schema. It runs on every import and on the initial load, and is idempotent:
// feeding it already-current data changes nothing beyond backfilling absent
// status ids.
package migration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"acm_e_letras/internal/domain/entities"

	"github.com/google/uuid"
)

// ErrMalformedSnapshot marks input that is neither current-shape nor
// legacy-shape JSON. The caller must leave its existing data untouched.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// defaultPalette colors legacy statuses by position. Beyond the palette a
// random color is assigned.
var defaultPalette = [...]string{
	entities.OrcamentoColor, // Orçamento
	"#4A90E2",               // Prospecção
	"#F5A623",               // Negociação
	"#50E3C2",               // Fechado
	"#D0021B",               // Perdido
}

// rawSnapshot defers dealStatuses decoding: the collection is the tag that
// distinguishes the legacy shape (array of names) from the current one.
type rawSnapshot struct {
	Deals        []entities.Deal     `json:"deals"`
	Materials    []entities.Material `json:"materials"`
	Quotes       []entities.Quote    `json:"quotes"`
	DealStatuses json.RawMessage     `json:"dealStatuses"`
	CompanyLogo  string              `json:"companyLogo"`
}

// Normalize parses a snapshot in either the current or the legacy shape and
// returns a fully assembled AppData. Missing collections default to empty and
// missing statuses default to the built-in "Orçamento" stage.
func Normalize(raw []byte) (entities.AppData, error) {
	var snap rawSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return entities.AppData{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	out := entities.AppData{
		Deals:       snap.Deals,
		Materials:   snap.Materials,
		Quotes:      snap.Quotes,
		CompanyLogo: snap.CompanyLogo,
	}
	if out.Deals == nil {
		out.Deals = []entities.Deal{}
	}
	if out.Materials == nil {
		out.Materials = []entities.Material{}
	}
	if out.Quotes == nil {
		out.Quotes = []entities.Quote{}
	}

	statuses, legacyNames, err := decodeStatuses(snap.DealStatuses)
	if err != nil {
		return entities.AppData{}, err
	}

	switch {
	case legacyNames != nil:
		out.DealStatuses = migrateLegacyStatuses(legacyNames, out.Deals)
	case statuses != nil:
		for i := range statuses {
			if statuses[i].ID == "" {
				statuses[i].ID = uuid.NewString()
			}
		}
		out.DealStatuses = statuses
	default:
		out.DealStatuses = entities.NewAppData().DealStatuses
	}

	return out, nil
}

// decodeStatuses returns either structured statuses or legacy names,
// depending on the shape of the first element.
func decodeStatuses(raw json.RawMessage) ([]entities.DealStatus, []string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, nil, fmt.Errorf("%w: dealStatuses: %v", ErrMalformedSnapshot, err)
	}
	if len(elems) == 0 {
		return []entities.DealStatus{}, nil, nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(elems[0]), []byte(`"`)) {
		var names []string
		if err := json.Unmarshal(raw, &names); err != nil {
			return nil, nil, fmt.Errorf("%w: legacy dealStatuses: %v", ErrMalformedSnapshot, err)
		}
		return nil, names, nil
	}

	var statuses []entities.DealStatus
	if err := json.Unmarshal(raw, &statuses); err != nil {
		return nil, nil, fmt.Errorf("%w: dealStatuses: %v", ErrMalformedSnapshot, err)
	}
	return statuses, nil, nil
}

// migrateLegacyStatuses converts status names into structured statuses,
// rewrites every deal's status from name to the generated id, and guarantees
// an "Orçamento" status exists and sorts first. Deals pointing at unknown
// names fall back to the first status.
func migrateLegacyStatuses(names []string, deals []entities.Deal) []entities.DealStatus {
	byName := make(map[string]entities.DealStatus, len(names))
	statuses := make([]entities.DealStatus, 0, len(names)+1)
	for i, name := range names {
		s := entities.DealStatus{
			ID:    uuid.NewString(),
			Name:  name,
			Color: paletteColor(i),
		}
		byName[name] = s
		statuses = append(statuses, s)
	}

	if _, ok := byName[entities.StatusNameOrcamento]; !ok {
		orc := entities.DealStatus{
			ID:    uuid.NewString(),
			Name:  entities.StatusNameOrcamento,
			Color: entities.OrcamentoColor,
		}
		statuses = append([]entities.DealStatus{orc}, statuses...)
	} else {
		statuses = moveToFront(statuses, entities.StatusNameOrcamento)
	}

	for i := range deals {
		if s, ok := byName[deals[i].Status]; ok {
			deals[i].Status = s.ID
		} else if len(statuses) > 0 {
			deals[i].Status = statuses[0].ID
		}
	}

	return statuses
}

func moveToFront(statuses []entities.DealStatus, name string) []entities.DealStatus {
	for i, s := range statuses {
		if s.Name == name {
			out := make([]entities.DealStatus, 0, len(statuses))
			out = append(out, s)
			out = append(out, statuses[:i]...)
			out = append(out, statuses[i+1:]...)
			return out
		}
	}
	return statuses
}

func paletteColor(index int) string {
	if index < len(defaultPalette) {
		return defaultPalette[index]
	}
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}
