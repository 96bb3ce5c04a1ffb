package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"debtledger/internal/ledger"
	"debtledger/internal/models"
	"debtledger/internal/services"
)

type entryRequest struct {
	Counterparty string      `json:"counterparty"`
	Date         string      `json:"date"`
	Description  string      `json:"description"`
	Amount       json.Number `json:"amount"`
	Account      string      `json:"account"`
}

// Borrow records a debit entry: money the user took and now owes.
func (h *Handler) Borrow(w http.ResponseWriter, r *http.Request) {
	h.createEntry(w, r, models.EntryTypeDebit)
}

// Lend records a credit entry: money the user gave and is owed.
func (h *Handler) Lend(w http.ResponseWriter, r *http.Request) {
	h.createEntry(w, r, models.EntryTypeCredit)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request, entryType models.EntryType) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	entry, err := h.service.CreateEntry(entryType, services.EntryInput{
		Counterparty: req.Counterparty,
		Date:         req.Date,
		Description:  req.Description,
		Amount:       req.Amount.String(),
		Account:      req.Account,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// ListEntries returns the filtered ledger. The defaults match the page's
// initial view: every direction, active entries only.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	direction := ledger.DirectionAll
	if raw := r.URL.Query().Get("direction"); raw != "" {
		parsed, err := ledger.ParseDirection(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_direction")
			return
		}
		direction = parsed
	}
	status := ledger.StatusFilterActive
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := ledger.ParseStatusFilter(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_status")
			return
		}
		status = parsed
	}
	respondJSON(w, http.StatusOK, h.service.ListEntries(direction, status))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Summary())
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidAmount) ||
		errors.Is(err, services.ErrCounterpartyRequired) ||
		errors.Is(err, services.ErrDescriptionRequired) ||
		errors.Is(err, services.ErrDateRequired) ||
		errors.Is(err, services.ErrInvalidDate) ||
		errors.Is(err, services.ErrAccountRequired)
}
