package usecase

import (
	"context"
	"errors"
	"sync"

	"acm_e_letras/internal/domain/entities"
	"acm_e_letras/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNoActiveDraft     = errors.New("no active draft for this quote")
	ErrDraftItemNotFound = errors.New("draft item not found")
)

// Draft clamp floors: a line needs at least one piece, and area dimensions
// collapse to a centimeter instead of zero.
const (
	minQuantity  = 1
	minDimension = 0.01
)

// IQuoteDraftUseCase is the edit-session surface over a single quote: a
// working draft diverges from the committed original until it is explicitly
// saved or discarded, with totals recomputed on every change.

type IQuoteDraftUseCase interface {
	Begin(ctx context.Context, quoteID string) (entities.Quote, error)
	Get(quoteID string) (entities.Quote, error)
	AddItem(quoteID, materialID string) (entities.Quote, error)
	UpdateItem(quoteID, itemID string, quantity *int, width, height *float64) (entities.Quote, error)
	RemoveItem(quoteID, itemID string) (entities.Quote, error)
	SetProfitMultiplier(quoteID string, multiplier float64) (entities.Quote, error)
	Save(ctx context.Context, quoteID string) (entities.Quote, error)
	Cancel(quoteID string) error
}

type draftSession struct {
	draft entities.Quote
}

type QuoteDraftUseCase struct {
	mu       sync.Mutex
	app      IAppUseCase
	sessions map[string]*draftSession
}

var _ IQuoteDraftUseCase = (*QuoteDraftUseCase)(nil)

func NewQuoteDraftUseCase(app IAppUseCase) *QuoteDraftUseCase {
	return &QuoteDraftUseCase{app: app, sessions: make(map[string]*draftSession)}
}

// Begin transitions a quote from viewing to editing by deep-cloning the
// committed record into an independent draft. Calling Begin again discards
// any previous draft and starts over from the committed original.
func (u *QuoteDraftUseCase) Begin(ctx context.Context, quoteID string) (entities.Quote, error) {
	original, ok := u.app.Data().FindQuote(quoteID)
	if !ok {
		return entities.Quote{}, ErrQuoteNotFound
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.sessions[quoteID] = &draftSession{draft: original.Clone()}
	return u.sessions[quoteID].draft.Clone(), nil
}

// Get returns the current draft.
func (u *QuoteDraftUseCase) Get(quoteID string) (entities.Quote, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[quoteID]
	if !ok {
		return entities.Quote{}, ErrNoActiveDraft
	}
	return s.draft.Clone(), nil
}

// AddItem appends a line item snapshotting the material's current price and
// pricing type. Area-priced items start as a 1x1 piece.
func (u *QuoteDraftUseCase) AddItem(quoteID, materialID string) (entities.Quote, error) {
	material, ok := u.app.Data().FindMaterial(materialID)
	if !ok {
		return entities.Quote{}, ErrMaterialNotFound
	}

	return u.edit(quoteID, func(draft *entities.Quote) error {
		item := entities.QuoteItem{
			ItemID:      uuid.NewString(),
			MaterialID:  material.ID,
			Quantity:    1,
			UnitPrice:   material.Price,
			PricingType: material.PricingType,
		}
		if material.PricingType == entities.PricingPerArea {
			w, h := 1.0, 1.0
			item.Width = &w
			item.Height = &h
		}
		draft.Items = append(draft.Items, item)
		return nil
	})
}

// UpdateItem patches a line item's quantity and dimensions, clamping to the
// domain floors.
func (u *QuoteDraftUseCase) UpdateItem(quoteID, itemID string, quantity *int, width, height *float64) (entities.Quote, error) {
	return u.edit(quoteID, func(draft *entities.Quote) error {
		for i := range draft.Items {
			if draft.Items[i].ItemID != itemID {
				continue
			}
			if quantity != nil {
				q := *quantity
				if q < minQuantity {
					q = minQuantity
				}
				draft.Items[i].Quantity = q
			}
			if width != nil {
				w := clampDimension(*width)
				draft.Items[i].Width = &w
			}
			if height != nil {
				h := clampDimension(*height)
				draft.Items[i].Height = &h
			}
			return nil
		}
		return ErrDraftItemNotFound
	})
}

// RemoveItem drops a line item from the draft.
func (u *QuoteDraftUseCase) RemoveItem(quoteID, itemID string) (entities.Quote, error) {
	return u.edit(quoteID, func(draft *entities.Quote) error {
		for i := range draft.Items {
			if draft.Items[i].ItemID == itemID {
				draft.Items = append(draft.Items[:i], draft.Items[i+1:]...)
				return nil
			}
		}
		return ErrDraftItemNotFound
	})
}

// SetProfitMultiplier adjusts the draft multiplier, floored at 1.
func (u *QuoteDraftUseCase) SetProfitMultiplier(quoteID string, multiplier float64) (entities.Quote, error) {
	return u.edit(quoteID, func(draft *entities.Quote) error {
		if multiplier < 1 {
			multiplier = 1
		}
		draft.ProfitMultiplier = multiplier
		return nil
	})
}

// Save commits the draft back to the domain store and ends the edit session.
func (u *QuoteDraftUseCase) Save(ctx context.Context, quoteID string) (entities.Quote, error) {
	u.mu.Lock()
	s, ok := u.sessions[quoteID]
	if !ok {
		u.mu.Unlock()
		return entities.Quote{}, ErrNoActiveDraft
	}
	draft := s.draft.Clone()
	u.mu.Unlock()

	committed, err := u.app.UpdateQuote(ctx, quoteID, draft)
	if err != nil {
		return entities.Quote{}, err
	}

	u.mu.Lock()
	delete(u.sessions, quoteID)
	u.mu.Unlock()
	return committed, nil
}

// Cancel discards the draft without persisting anything. The committed quote
// is untouched by construction: the draft was an independent copy.
func (u *QuoteDraftUseCase) Cancel(quoteID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.sessions[quoteID]; !ok {
		return ErrNoActiveDraft
	}
	delete(u.sessions, quoteID)
	return nil
}

// edit runs fn on the draft and recomputes the derived totals in place.
func (u *QuoteDraftUseCase) edit(quoteID string, fn func(draft *entities.Quote) error) (entities.Quote, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[quoteID]
	if !ok {
		return entities.Quote{}, ErrNoActiveDraft
	}
	if err := fn(&s.draft); err != nil {
		return entities.Quote{}, err
	}
	summary := pricing.Summarize(s.draft.Items, s.draft.ProfitMultiplier)
	s.draft.Subtotal = summary.Subtotal
	s.draft.Tax = summary.Tax
	s.draft.Total = summary.Total
	return s.draft.Clone(), nil
}

func clampDimension(v float64) float64 {
	if v < minDimension {
		return minDimension
	}
	return v
}
