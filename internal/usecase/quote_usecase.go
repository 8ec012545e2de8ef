package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"acm_e_letras/internal/domain/entities"
	"acm_e_letras/internal/domain/pricing"

	"go.uber.org/zap"
)

const quoteNumberPrefix = "ORC"

// QuoteInput is the domain command for creating a quote. Totals are derived
// here, never trusted from the caller.
type QuoteInput struct {
	CompanyName      string
	ContactPerson    string
	Phone            string
	Items            []entities.QuoteItem
	ProfitMultiplier float64
}

// AddQuote creates a quote with the next sequential number and, when the
// "Orçamento" stage exists, a companion deal carrying the quote total. The
// coupling is one-way: neither deletion cascades to the other.
func (u *AppUseCase) AddQuote(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	var created entities.Quote
	err := u.mutate(ctx, func(data *entities.AppData) error {
		summary := pricing.Summarize(in.Items, in.ProfitMultiplier)
		number := nextQuoteNumber(data.Quotes)

		created = entities.Quote{
			ID:               u.newID(),
			QuoteNumber:      number,
			CompanyName:      strings.TrimSpace(in.CompanyName),
			ContactPerson:    strings.TrimSpace(in.ContactPerson),
			Phone:            strings.TrimSpace(in.Phone),
			Items:            in.Items,
			Subtotal:         summary.Subtotal,
			Tax:              summary.Tax,
			Total:            summary.Total,
			ProfitMultiplier: in.ProfitMultiplier,
			CreatedAt:        u.now().UTC(),
		}
		data.Quotes = append(data.Quotes, created)

		budgetStatus, ok := data.FindStatusByName(entities.StatusNameOrcamento)
		if !ok {
			u.log.Error("could not find 'Orçamento' status, quote created without companion deal",
				zap.String("quoteNumber", number))
			return nil
		}
		data.Deals = append(data.Deals, entities.Deal{
			ID:         u.newID(),
			Title:      fmt.Sprintf("Orçamento #%s", number),
			ClientName: created.CompanyName,
			Value:      created.Total,
			Status:     budgetStatus.ID,
		})
		return nil
	})
	return created, err
}

// UpdateQuote replaces a quote's mutable fields (the draft reconciler's
// commit step). Identity fields (id, number, creation time) are kept from the
// stored record.
func (u *AppUseCase) UpdateQuote(ctx context.Context, id string, updated entities.Quote) (entities.Quote, error) {
	var committed entities.Quote
	err := u.mutate(ctx, func(data *entities.AppData) error {
		for i := range data.Quotes {
			if data.Quotes[i].ID != id {
				continue
			}
			next := updated.Clone()
			next.ID = data.Quotes[i].ID
			next.QuoteNumber = data.Quotes[i].QuoteNumber
			next.CreatedAt = data.Quotes[i].CreatedAt
			data.Quotes[i] = next
			committed = next
			return nil
		}
		return ErrQuoteNotFound
	})
	return committed, err
}

// DeleteQuote removes a quote by id only; the companion deal survives.
// Deleting an unknown id is a no-op.
func (u *AppUseCase) DeleteQuote(ctx context.Context, id string) error {
	return u.mutate(ctx, func(data *entities.AppData) error {
		kept := data.Quotes[:0]
		for _, q := range data.Quotes {
			if q.ID != id {
				kept = append(kept, q)
			}
		}
		data.Quotes = kept
		return nil
	})
}

// nextQuoteNumber scans the existing numeric suffixes and formats max+1
// zero-padded to four digits. Deleting an earlier quote never frees its
// number.
func nextQuoteNumber(quotes []entities.Quote) string {
	max := 0
	for _, q := range quotes {
		parts := strings.SplitN(q.QuoteNumber, "-", 2)
		if len(parts) != 2 {
			continue
		}
		if n, err := strconv.Atoi(parts[1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%04d", quoteNumberPrefix, max+1)
}
