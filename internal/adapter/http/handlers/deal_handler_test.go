package handlers

import (
	"net/http"
	"testing"
)

func TestDealHandler_CreateDeal(t *testing.T) {
	t.Run("creates in first stage", func(t *testing.T) {
		r, app := newTestRouter(t)

		w := doJSON(t, r, http.MethodPost, "/v1/deals",
			`{"title":"Fachada","clientName":"Mercado Silva","value":3200}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var deal struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		decodeBody(t, w, &deal)
		if deal.Status != app.Data().DealStatuses[0].ID {
			t.Fatalf("expected first stage, got %q", deal.Status)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/deals", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive value", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/deals",
			`{"title":"Fachada","clientName":"Mercado Silva","value":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDealHandler_MoveDeal(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/deals",
		`{"title":"Fachada","clientName":"Mercado Silva","value":3200}`)
	var deal struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &deal)

	t.Run("moves to arbitrary stage id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/v1/deals/"+deal.ID+"/status", `{"status":"stage-x"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var moved struct {
			Status string `json:"status"`
		}
		decodeBody(t, w, &moved)
		if moved.Status != "stage-x" {
			t.Fatalf("expected verbatim stage id, got %q", moved.Status)
		}
	})

	t.Run("unknown deal", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/v1/deals/ghost/status", `{"status":"stage-x"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "DEAL_NOT_FOUND" {
			t.Fatalf("expected DEAL_NOT_FOUND, got %q", code)
		}
	})
}

func TestDealHandler_DeleteDeal(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/deals",
		`{"title":"Fachada","clientName":"Mercado Silva","value":3200}`)
	var deal struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &deal)

	if w := doJSON(t, r, http.MethodDelete, "/v1/deals/"+deal.ID, ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	// Idempotent: a second delete also succeeds.
	if w := doJSON(t, r, http.MethodDelete, "/v1/deals/"+deal.ID, ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on repeat delete, got %d", w.Code)
	}
}
