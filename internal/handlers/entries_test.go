package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"debtledger/internal/ledger"
	"debtledger/internal/models"
	"debtledger/internal/services"
)

func TestBorrowCreatesDebitEntry(t *testing.T) {
	var gotType models.EntryType
	var gotInput services.EntryInput
	handler := newTestHandler(stubService{
		createEntryFn: func(entryType models.EntryType, input services.EntryInput) (models.LedgerEntry, error) {
			gotType = entryType
			gotInput = input
			return models.LedgerEntry{ID: "d-1", Type: entryType, Amount: 10000}, nil
		},
	})

	body := `{"counterparty":"alex","date":"2024-03-01","description":"laptop","amount":100,"account":"checking"}`
	req := httptest.NewRequest(http.MethodPost, "/entries/borrow", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if gotType != models.EntryTypeDebit {
		t.Fatalf("type = %s, want debit", gotType)
	}
	if gotInput.Amount != "100" || gotInput.Counterparty != "alex" {
		t.Fatalf("input not forwarded: %+v", gotInput)
	}
	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if payload["id"] != "d-1" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestLendCreatesCreditEntry(t *testing.T) {
	var gotType models.EntryType
	handler := newTestHandler(stubService{
		createEntryFn: func(entryType models.EntryType, input services.EntryInput) (models.LedgerEntry, error) {
			gotType = entryType
			return models.LedgerEntry{ID: "c-1", Type: entryType}, nil
		},
	})

	body := `{"counterparty":"sam","date":"2024-03-01","description":"loan","amount":"50.00"}`
	req := httptest.NewRequest(http.MethodPost, "/entries/lend", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if gotType != models.EntryTypeCredit {
		t.Fatalf("type = %s, want credit", gotType)
	}
}

func TestCreateEntryValidationError(t *testing.T) {
	handler := newTestHandler(stubService{
		createEntryFn: func(models.EntryType, services.EntryInput) (models.LedgerEntry, error) {
			return models.LedgerEntry{}, services.ErrInvalidAmount
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/entries/borrow", strings.NewReader(`{"amount":0}`))
	rr := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCreateEntryBadPayload(t *testing.T) {
	handler := newTestHandler(stubService{})
	req := httptest.NewRequest(http.MethodPost, "/entries/borrow", strings.NewReader(`{nope`))
	rr := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestListEntriesDefaultsAndFilters(t *testing.T) {
	var gotDirection ledger.Direction
	var gotStatus ledger.StatusFilter
	handler := newTestHandler(stubService{
		listEntriesFn: func(direction ledger.Direction, status ledger.StatusFilter) []services.EntryView {
			gotDirection = direction
			gotStatus = status
			return []services.EntryView{}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	rr := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if gotDirection != ledger.DirectionAll || gotStatus != ledger.StatusFilterActive {
		t.Fatalf("defaults wrong: %s/%s", gotDirection, gotStatus)
	}

	req = httptest.NewRequest(http.MethodGet, "/entries?direction=i_owe&status=archived", nil)
	rr = httptest.NewRecorder()
	handler.Routes().ServeHTTP(rr, req)
	if gotDirection != ledger.DirectionIOwe || gotStatus != ledger.StatusFilterArchived {
		t.Fatalf("filters not forwarded: %s/%s", gotDirection, gotStatus)
	}
}

func TestListEntriesRejectsUnknownFilter(t *testing.T) {
	handler := newTestHandler(stubService{})
	req := httptest.NewRequest(http.MethodGet, "/entries?direction=everything", nil)
	rr := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetSummary(t *testing.T) {
	handler := newTestHandler(stubService{
		summaryFn: func() services.Summary {
			return services.Summary{NetBalance: -1000, TotalOwedToMe: 5000, TotalIOwe: 6000}
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rr := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var payload map[string]float64
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if payload["net_balance"] != -10 || payload["total_owed_to_me"] != 50 || payload["total_i_owe"] != 60 {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}
