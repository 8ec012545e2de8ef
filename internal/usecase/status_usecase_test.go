package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestAddDealStatusAssignsHexColor(t *testing.T) {
	app, _ := newTestApp(t)

	status, err := app.AddDealStatus(context.Background(), "Produção")
	if err != nil {
		t.Fatalf("AddDealStatus: %v", err)
	}
	if !hexColor.MatchString(status.Color) {
		t.Fatalf("expected hex color, got %q", status.Color)
	}
	if status.ID == "" {
		t.Fatal("expected generated stage id")
	}
}

func TestAddDealStatusRejectsDuplicateName(t *testing.T) {
	app, _ := newTestApp(t)

	if _, err := app.AddDealStatus(context.Background(), "Orçamento"); !errors.Is(err, ErrStatusNameTaken) {
		t.Fatalf("expected ErrStatusNameTaken, got %v", err)
	}
	if len(app.Data().DealStatuses) != 1 {
		t.Fatal("rejected stage must not be stored")
	}
}

func TestUpdateStatusDetailsPartial(t *testing.T) {
	app, _ := newTestApp(t)
	status, err := app.AddDealStatus(context.Background(), "Produção")
	if err != nil {
		t.Fatalf("AddDealStatus: %v", err)
	}

	t.Run("color only keeps name", func(t *testing.T) {
		color := "#123abc"
		updated, err := app.UpdateStatusDetails(context.Background(), status.ID, nil, &color)
		if err != nil {
			t.Fatalf("UpdateStatusDetails: %v", err)
		}
		if updated.Name != "Produção" || updated.Color != "#123abc" {
			t.Fatalf("unexpected stage after color update: %+v", updated)
		}
	})

	t.Run("rename to taken name is rejected", func(t *testing.T) {
		name := "Orçamento"
		if _, err := app.UpdateStatusDetails(context.Background(), status.ID, &name, nil); !errors.Is(err, ErrStatusNameTaken) {
			t.Fatalf("expected ErrStatusNameTaken, got %v", err)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		name := "Entrega"
		if _, err := app.UpdateStatusDetails(context.Background(), "ghost", &name, nil); !errors.Is(err, ErrStatusNotFound) {
			t.Fatalf("expected ErrStatusNotFound, got %v", err)
		}
	})
}

func TestDeleteDealStatus(t *testing.T) {
	t.Run("stage with deals is rejected", func(t *testing.T) {
		app, _ := newTestApp(t)
		deal, err := app.AddDeal(context.Background(), "Fachada", "Mercado Silva", 3200)
		if err != nil {
			t.Fatalf("AddDeal: %v", err)
		}
		if err := app.DeleteDealStatus(context.Background(), deal.Status); !errors.Is(err, ErrStatusInUse) {
			t.Fatalf("expected ErrStatusInUse, got %v", err)
		}
	})

	t.Run("empty stage is removed", func(t *testing.T) {
		app, _ := newTestApp(t)
		status, err := app.AddDealStatus(context.Background(), "Produção")
		if err != nil {
			t.Fatalf("AddDealStatus: %v", err)
		}
		if err := app.DeleteDealStatus(context.Background(), status.ID); err != nil {
			t.Fatalf("DeleteDealStatus: %v", err)
		}
		if _, ok := app.Data().FindStatusByID(status.ID); ok {
			t.Fatal("stage still present after delete")
		}
	})

	t.Run("unknown stage is a no-op", func(t *testing.T) {
		app, _ := newTestApp(t)
		if err := app.DeleteDealStatus(context.Background(), "ghost"); err != nil {
			t.Fatalf("expected no-op, got %v", err)
		}
	})
}
