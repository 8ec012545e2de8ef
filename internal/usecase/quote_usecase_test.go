package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"acm_e_letras/internal/domain/entities"
)

func perUnitItem(id string, price float64, qty int) entities.QuoteItem {
	return entities.QuoteItem{
		ItemID:      id,
		MaterialID:  "m-" + id,
		Quantity:    qty,
		UnitPrice:   price,
		PricingType: entities.PricingPerUnit,
	}
}

func addQuote(t *testing.T, app *AppUseCase, in QuoteInput) entities.Quote {
	t.Helper()
	quote, err := app.AddQuote(context.Background(), in)
	if err != nil {
		t.Fatalf("AddQuote: %v", err)
	}
	return quote
}

func TestAddQuoteComputesTotals(t *testing.T) {
	app, _ := newTestApp(t)

	quote := addQuote(t, app, QuoteInput{
		CompanyName:      "  Mercado Silva  ",
		ContactPerson:    "Ana",
		Items:            []entities.QuoteItem{perUnitItem("i1", 100, 2)},
		ProfitMultiplier: 2,
	})

	if quote.CompanyName != "Mercado Silva" {
		t.Fatalf("expected trimmed company name, got %q", quote.CompanyName)
	}
	if quote.Subtotal != 400 {
		t.Fatalf("subtotal = %v, want 400", quote.Subtotal)
	}
	if math.Abs(quote.Tax-60) > 1e-9 {
		t.Fatalf("tax = %v, want 60", quote.Tax)
	}
	if math.Abs(quote.Total-460) > 1e-9 {
		t.Fatalf("total = %v, want 460", quote.Total)
	}
	if quote.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}
}

func TestQuoteNumbering(t *testing.T) {
	app, _ := newTestApp(t)
	in := QuoteInput{
		CompanyName:      "Mercado Silva",
		ContactPerson:    "Ana",
		Items:            []entities.QuoteItem{perUnitItem("i1", 100, 1)},
		ProfitMultiplier: 1,
	}

	first := addQuote(t, app, in)
	second := addQuote(t, app, in)
	if first.QuoteNumber != "ORC-0001" || second.QuoteNumber != "ORC-0002" {
		t.Fatalf("unexpected numbers: %q, %q", first.QuoteNumber, second.QuoteNumber)
	}

	// Deleting an earlier quote never frees its number.
	if err := app.DeleteQuote(context.Background(), first.ID); err != nil {
		t.Fatalf("DeleteQuote: %v", err)
	}
	third := addQuote(t, app, in)
	if third.QuoteNumber != "ORC-0003" {
		t.Fatalf("expected ORC-0003 after deletion, got %q", third.QuoteNumber)
	}
}

func TestAddQuoteCreatesCompanionDeal(t *testing.T) {
	app, _ := newTestApp(t)

	quote := addQuote(t, app, QuoteInput{
		CompanyName:      "Mercado Silva",
		ContactPerson:    "Ana",
		Items:            []entities.QuoteItem{perUnitItem("i1", 100, 2)},
		ProfitMultiplier: 2,
	})

	data := app.Data()
	if len(data.Deals) != 1 {
		t.Fatalf("expected one companion deal, got %d", len(data.Deals))
	}
	deal := data.Deals[0]
	if deal.Title != fmt.Sprintf("Orçamento #%s", quote.QuoteNumber) {
		t.Fatalf("unexpected deal title %q", deal.Title)
	}
	if deal.Value != quote.Total || deal.ClientName != quote.CompanyName {
		t.Fatalf("companion deal does not mirror the quote: %+v", deal)
	}
	budget, _ := data.FindStatusByName(entities.StatusNameOrcamento)
	if deal.Status != budget.ID {
		t.Fatalf("companion deal not in the %q stage", entities.StatusNameOrcamento)
	}
}

func TestAddQuoteWithoutBudgetStageSkipsCompanionDeal(t *testing.T) {
	app, _ := newTestApp(t)
	name := "Propostas"
	if _, err := app.UpdateStatusDetails(context.Background(), app.Data().DealStatuses[0].ID, &name, nil); err != nil {
		t.Fatalf("UpdateStatusDetails: %v", err)
	}

	quote := addQuote(t, app, QuoteInput{
		CompanyName:      "Mercado Silva",
		ContactPerson:    "Ana",
		Items:            []entities.QuoteItem{perUnitItem("i1", 100, 1)},
		ProfitMultiplier: 1,
	})

	data := app.Data()
	if _, ok := data.FindQuote(quote.ID); !ok {
		t.Fatal("quote must be created even without the budget stage")
	}
	if len(data.Deals) != 0 {
		t.Fatalf("expected no companion deal, got %+v", data.Deals)
	}
}

func TestUpdateQuoteKeepsIdentityFields(t *testing.T) {
	app, _ := newTestApp(t)
	quote := addQuote(t, app, QuoteInput{
		CompanyName:      "Mercado Silva",
		ContactPerson:    "Ana",
		Items:            []entities.QuoteItem{perUnitItem("i1", 100, 1)},
		ProfitMultiplier: 1,
	})

	edited := quote.Clone()
	edited.ID = "spoofed"
	edited.QuoteNumber = "ORC-9999"
	edited.CompanyName = "Padaria Central"

	committed, err := app.UpdateQuote(context.Background(), quote.ID, edited)
	if err != nil {
		t.Fatalf("UpdateQuote: %v", err)
	}
	if committed.ID != quote.ID || committed.QuoteNumber != quote.QuoteNumber {
		t.Fatalf("identity fields must come from the stored record: %+v", committed)
	}
	if !committed.CreatedAt.Equal(quote.CreatedAt) {
		t.Fatal("creation time must be preserved")
	}
	if committed.CompanyName != "Padaria Central" {
		t.Fatal("mutable fields must be replaced")
	}

	if _, err := app.UpdateQuote(context.Background(), "ghost", edited); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestDeleteQuoteKeepsCompanionDeal(t *testing.T) {
	app, _ := newTestApp(t)
	quote := addQuote(t, app, QuoteInput{
		CompanyName:      "Mercado Silva",
		ContactPerson:    "Ana",
		Items:            []entities.QuoteItem{perUnitItem("i1", 100, 1)},
		ProfitMultiplier: 1,
	})

	if err := app.DeleteQuote(context.Background(), quote.ID); err != nil {
		t.Fatalf("DeleteQuote: %v", err)
	}

	data := app.Data()
	if len(data.Quotes) != 0 {
		t.Fatal("quote still present after delete")
	}
	if len(data.Deals) != 1 || !strings.HasPrefix(data.Deals[0].Title, "Orçamento #") {
		t.Fatalf("companion deal must survive quote deletion, got %+v", data.Deals)
	}
}
