package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"debtledger/internal/services"
	"debtledger/internal/store"

	"github.com/go-chi/chi/v5"
)

type paymentRequest struct {
	Amount               json.Number `json:"amount"`
	Account              string      `json:"account"`
	Description          string      `json:"description"`
	ReceiptFileName      string      `json:"receipt_file_name"`
	IsMarketplacePayment bool        `json:"is_marketplace_payment"`
}

type receiptRequest struct {
	Amount          json.Number `json:"amount"`
	Account         string      `json:"account"`
	Description     string      `json:"description"`
	ReceiptFileName string      `json:"receipt_file_name"`
}

// FixPayment appends a payment fixation to a debit entry.
func (h *Handler) FixPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	err := h.service.FixPayment(chi.URLParam(r, "id"), services.PaymentInput{
		Amount:               req.Amount.String(),
		Account:              req.Account,
		Description:          req.Description,
		ReceiptFileName:      req.ReceiptFileName,
		IsMarketplacePayment: req.IsMarketplacePayment,
	})
	if err != nil {
		respondFixationError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"status": "fixed"})
}

// FixReceipt appends a receipt fixation to a credit entry.
func (h *Handler) FixReceipt(w http.ResponseWriter, r *http.Request) {
	var req receiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	err := h.service.FixReceipt(chi.URLParam(r, "id"), services.ReceiptInput{
		Amount:          req.Amount.String(),
		Account:         req.Account,
		Description:     req.Description,
		ReceiptFileName: req.ReceiptFileName,
	})
	if err != nil {
		respondFixationError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"status": "fixed"})
}

func respondFixationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrEntryNotFound):
		respondError(w, http.StatusNotFound, "entry_not_found")
	case errors.Is(err, store.ErrEntryType):
		respondError(w, http.StatusBadRequest, "entry_type_mismatch")
	case isValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "fixation_failed")
	}
}
