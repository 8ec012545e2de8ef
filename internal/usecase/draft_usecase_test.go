package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"acm_e_letras/internal/domain/entities"
)

func newDraftFixture(t *testing.T) (*AppUseCase, *QuoteDraftUseCase, entities.Material, entities.Quote) {
	t.Helper()
	app, _ := newTestApp(t)

	material, err := app.AddMaterial(context.Background(), "ACM 3mm", 100, entities.PricingPerArea)
	if err != nil {
		t.Fatalf("AddMaterial: %v", err)
	}

	w, h := 2.0, 3.0
	quote, err := app.AddQuote(context.Background(), QuoteInput{
		CompanyName:   "Mercado Silva",
		ContactPerson: "Ana",
		Items: []entities.QuoteItem{{
			ItemID: "i1", MaterialID: material.ID, Quantity: 1,
			UnitPrice: material.Price, Width: &w, Height: &h,
			PricingType: entities.PricingPerArea,
		}},
		ProfitMultiplier: 2,
	})
	if err != nil {
		t.Fatalf("AddQuote: %v", err)
	}

	return app, NewQuoteDraftUseCase(app), material, quote
}

func TestBeginUnknownQuote(t *testing.T) {
	app, _ := newTestApp(t)
	drafts := NewQuoteDraftUseCase(app)

	if _, err := drafts.Begin(context.Background(), "ghost"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestDraftEditsDoNotLeakUntilSave(t *testing.T) {
	app, drafts, _, quote := newDraftFixture(t)

	if _, err := drafts.Begin(context.Background(), quote.ID); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := drafts.SetProfitMultiplier(quote.ID, 5); err != nil {
		t.Fatalf("SetProfitMultiplier: %v", err)
	}

	stored, _ := app.Data().FindQuote(quote.ID)
	if stored.ProfitMultiplier != 2 {
		t.Fatal("draft edit leaked into the committed quote")
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	app, drafts, _, quote := newDraftFixture(t)

	if _, err := drafts.Begin(context.Background(), quote.ID); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := drafts.SetProfitMultiplier(quote.ID, 5); err != nil {
		t.Fatalf("SetProfitMultiplier: %v", err)
	}
	if err := drafts.Cancel(quote.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	stored, _ := app.Data().FindQuote(quote.ID)
	if stored.ProfitMultiplier != 2 || stored.Total != quote.Total {
		t.Fatalf("cancel modified the committed quote: %+v", stored)
	}
	if _, err := drafts.Get(quote.ID); !errors.Is(err, ErrNoActiveDraft) {
		t.Fatalf("expected ErrNoActiveDraft after cancel, got %v", err)
	}
	if err := drafts.Cancel(quote.ID); !errors.Is(err, ErrNoActiveDraft) {
		t.Fatalf("expected ErrNoActiveDraft on double cancel, got %v", err)
	}
}

func TestSaveCommitsDraftAndEndsSession(t *testing.T) {
	app, drafts, _, quote := newDraftFixture(t)

	if _, err := drafts.Begin(context.Background(), quote.ID); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	edited, err := drafts.SetProfitMultiplier(quote.ID, 3)
	if err != nil {
		t.Fatalf("SetProfitMultiplier: %v", err)
	}

	committed, err := drafts.Save(context.Background(), quote.ID)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if committed.Total != edited.Total {
		t.Fatalf("committed totals differ from draft: %v != %v", committed.Total, edited.Total)
	}

	stored, _ := app.Data().FindQuote(quote.ID)
	if stored.ProfitMultiplier != 3 {
		t.Fatal("saved draft not visible in the store")
	}
	if _, err := drafts.Get(quote.ID); !errors.Is(err, ErrNoActiveDraft) {
		t.Fatalf("expected session to end after save, got %v", err)
	}
}

func TestDraftTotalsRecomputedOnEveryEdit(t *testing.T) {
	_, drafts, material, quote := newDraftFixture(t)

	if _, err := drafts.Begin(context.Background(), quote.ID); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// Second 1x1 area line at the snapshot price.
	draft, err := drafts.AddItem(quote.ID, material.ID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	// cost = 100*2*3 + 100*1*1 = 700; subtotal = 1400; total = 1610
	if math.Abs(draft.Total-1610) > 1e-9 {
		t.Fatalf("total = %v, want 1610", draft.Total)
	}

	newItem := draft.Items[1]
	qty := 2
	draft, err = drafts.UpdateItem(quote.ID, newItem.ItemID, &qty, nil, nil)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	// cost = 600 + 200 = 800; subtotal = 1600; total = 1840
	if math.Abs(draft.Total-1840) > 1e-9 {
		t.Fatalf("total = %v, want 1840", draft.Total)
	}

	draft, err = drafts.RemoveItem(quote.ID, newItem.ItemID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if math.Abs(draft.Total-quote.Total) > 1e-9 {
		t.Fatalf("total = %v, want %v after removal", draft.Total, quote.Total)
	}
}

func TestDraftClamps(t *testing.T) {
	_, drafts, material, quote := newDraftFixture(t)

	if _, err := drafts.Begin(context.Background(), quote.ID); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	draft, err := drafts.AddItem(quote.ID, material.ID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	itemID := draft.Items[1].ItemID

	qty := 0
	width := -5.0
	draft, err = drafts.UpdateItem(quote.ID, itemID, &qty, &width, nil)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	item := draft.Items[1]
	if item.Quantity != 1 {
		t.Fatalf("quantity = %d, want clamp to 1", item.Quantity)
	}
	if item.Width == nil || *item.Width != 0.01 {
		t.Fatalf("width = %v, want clamp to 0.01", item.Width)
	}

	draft, err = drafts.SetProfitMultiplier(quote.ID, 0.2)
	if err != nil {
		t.Fatalf("SetProfitMultiplier: %v", err)
	}
	if draft.ProfitMultiplier != 1 {
		t.Fatalf("multiplier = %v, want floor at 1", draft.ProfitMultiplier)
	}
}

func TestDraftItemSnapshotsMaterialPrice(t *testing.T) {
	app, drafts, material, quote := newDraftFixture(t)

	if _, err := drafts.Begin(context.Background(), quote.ID); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	draft, err := drafts.AddItem(quote.ID, material.ID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	price := 999.0
	if _, err := app.UpdateMaterial(context.Background(), material.ID, nil, &price, nil); err != nil {
		t.Fatalf("UpdateMaterial: %v", err)
	}

	current, err := drafts.Get(quote.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if current.Items[1].UnitPrice != draft.Items[1].UnitPrice {
		t.Fatal("draft line must keep the price captured when it was added")
	}
}

func TestBeginAgainResetsDraft(t *testing.T) {
	_, drafts, _, quote := newDraftFixture(t)

	if _, err := drafts.Begin(context.Background(), quote.ID); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := drafts.SetProfitMultiplier(quote.ID, 7); err != nil {
		t.Fatalf("SetProfitMultiplier: %v", err)
	}

	fresh, err := drafts.Begin(context.Background(), quote.ID)
	if err != nil {
		t.Fatalf("second Begin: %v", err)
	}
	if fresh.ProfitMultiplier != 2 {
		t.Fatalf("second Begin must restart from the committed quote, got multiplier %v", fresh.ProfitMultiplier)
	}
}

func TestDraftUnknownItem(t *testing.T) {
	_, drafts, _, quote := newDraftFixture(t)

	if _, err := drafts.Begin(context.Background(), quote.ID); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	qty := 2
	if _, err := drafts.UpdateItem(quote.ID, "ghost", &qty, nil, nil); !errors.Is(err, ErrDraftItemNotFound) {
		t.Fatalf("expected ErrDraftItemNotFound, got %v", err)
	}
	if _, err := drafts.RemoveItem(quote.ID, "ghost"); !errors.Is(err, ErrDraftItemNotFound) {
		t.Fatalf("expected ErrDraftItemNotFound, got %v", err)
	}
}
