package usecase

import (
	"context"
	"errors"
	"testing"

	"acm_e_letras/internal/domain/entities"
)

func TestAddMaterial(t *testing.T) {
	app, _ := newTestApp(t)

	material, err := app.AddMaterial(context.Background(), "ACM 3mm", 250, entities.PricingPerArea)
	if err != nil {
		t.Fatalf("AddMaterial: %v", err)
	}
	if material.ID == "" {
		t.Fatal("expected generated material id")
	}

	stored, ok := app.Data().FindMaterial(material.ID)
	if !ok {
		t.Fatal("material missing from aggregate")
	}
	if stored.Name != "ACM 3mm" || stored.Price != 250 || stored.PricingType != entities.PricingPerArea {
		t.Fatalf("unexpected stored material: %+v", stored)
	}
}

func TestUpdateMaterialPartial(t *testing.T) {
	app, _ := newTestApp(t)
	material, err := app.AddMaterial(context.Background(), "ACM 3mm", 250, entities.PricingPerArea)
	if err != nil {
		t.Fatalf("AddMaterial: %v", err)
	}

	price := 300.0
	updated, err := app.UpdateMaterial(context.Background(), material.ID, nil, &price, nil)
	if err != nil {
		t.Fatalf("UpdateMaterial: %v", err)
	}
	if updated.Price != 300 || updated.Name != "ACM 3mm" || updated.PricingType != entities.PricingPerArea {
		t.Fatalf("unexpected material after partial update: %+v", updated)
	}

	if _, err := app.UpdateMaterial(context.Background(), "ghost", nil, &price, nil); !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
}

func TestDeleteMaterialLeavesQuoteItemsOrphaned(t *testing.T) {
	app, _ := newTestApp(t)
	material, err := app.AddMaterial(context.Background(), "Letra caixa", 80, entities.PricingPerUnit)
	if err != nil {
		t.Fatalf("AddMaterial: %v", err)
	}

	quote, err := app.AddQuote(context.Background(), QuoteInput{
		CompanyName:   "Mercado Silva",
		ContactPerson: "Ana",
		Items: []entities.QuoteItem{{
			ItemID: "i1", MaterialID: material.ID, Quantity: 4,
			UnitPrice: material.Price, PricingType: material.PricingType,
		}},
		ProfitMultiplier: 2,
	})
	if err != nil {
		t.Fatalf("AddQuote: %v", err)
	}

	if err := app.DeleteMaterial(context.Background(), material.ID); err != nil {
		t.Fatalf("DeleteMaterial: %v", err)
	}
	if err := app.DeleteMaterial(context.Background(), material.ID); err != nil {
		t.Fatalf("second DeleteMaterial should be a no-op, got %v", err)
	}

	// The quote keeps its line and its totals; only the name resolution
	// degrades at the presentation layer.
	stored, ok := app.Data().FindQuote(quote.ID)
	if !ok {
		t.Fatal("quote missing after material delete")
	}
	if len(stored.Items) != 1 || stored.Items[0].MaterialID != material.ID {
		t.Fatalf("expected orphaned quote item to survive, got %+v", stored.Items)
	}
	if stored.Total != quote.Total {
		t.Fatalf("totals changed after material delete: %v != %v", stored.Total, quote.Total)
	}
}
