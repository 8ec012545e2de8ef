package entities

// StatusNameOrcamento is the distinguished pipeline stage every quote lands
// in. It cannot be renamed or deleted through the settings surface and sorts
// first after a legacy migration.
const StatusNameOrcamento = "Orçamento"

// OrcamentoColor is the locked color of the built-in "Orçamento" stage.
const OrcamentoColor = "#8E8E8E"

// DealStatus is one kanban column of the sales pipeline.
//
// Domain notes:
//   - Names are unique within the collection.
//   - A status may only be deleted while no deal references it.
type DealStatus struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Deal is a unit of pipeline work. Status is a DealStatus id.
type Deal struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	ClientName string  `json:"clientName"`
	Value      float64 `json:"value"`
	Status     string  `json:"status"`
}

// AppData is the aggregate root owned by the app usecase. The snapshot store
// only ever sees its serialized form; the JSON field names are the contract
// of the backup export file.
type AppData struct {
	Deals        []Deal       `json:"deals"`
	Materials    []Material   `json:"materials"`
	Quotes       []Quote      `json:"quotes"`
	DealStatuses []DealStatus `json:"dealStatuses"`
	CompanyLogo  string       `json:"companyLogo,omitempty"`
}

// NewAppData returns the seed aggregate: empty collections plus the single
// built-in "Orçamento" stage.
func NewAppData() AppData {
	return AppData{
		Deals:     []Deal{},
		Materials: []Material{},
		Quotes:    []Quote{},
		DealStatuses: []DealStatus{
			{ID: "s1", Name: StatusNameOrcamento, Color: OrcamentoColor},
		},
	}
}

// Clone returns a deep copy. Mutators work on copies so a failed transform
// can never leave a partially mutated aggregate visible.
func (d AppData) Clone() AppData {
	out := d
	out.Deals = append([]Deal(nil), d.Deals...)
	out.Materials = append([]Material(nil), d.Materials...)
	out.DealStatuses = append([]DealStatus(nil), d.DealStatuses...)
	out.Quotes = make([]Quote, len(d.Quotes))
	for i, q := range d.Quotes {
		out.Quotes[i] = q.Clone()
	}
	return out
}

// FindStatusByName returns the status with the given name, or false.
func (d AppData) FindStatusByName(name string) (DealStatus, bool) {
	for _, s := range d.DealStatuses {
		if s.Name == name {
			return s, true
		}
	}
	return DealStatus{}, false
}

// FindStatusByID returns the status with the given id, or false.
func (d AppData) FindStatusByID(id string) (DealStatus, bool) {
	for _, s := range d.DealStatuses {
		if s.ID == id {
			return s, true
		}
	}
	return DealStatus{}, false
}

// FindMaterial returns the material with the given id, or false. Callers must
// treat a miss as "unknown material", never as a failure: quotes keep
// referencing deleted materials by design.
func (d AppData) FindMaterial(id string) (Material, bool) {
	for _, m := range d.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// FindQuote returns the quote with the given id, or false.
func (d AppData) FindQuote(id string) (Quote, bool) {
	for _, q := range d.Quotes {
		if q.ID == id {
			return q, true
		}
	}
	return Quote{}, false
}
