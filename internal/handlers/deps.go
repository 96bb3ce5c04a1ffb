package handlers

import (
	"debtledger/internal/ledger"
	"debtledger/internal/models"
	"debtledger/internal/services"
)

type LedgerService interface {
	CreateEntry(entryType models.EntryType, input services.EntryInput) (models.LedgerEntry, error)
	FixPayment(entryID string, input services.PaymentInput) error
	FixReceipt(entryID string, input services.ReceiptInput) error
	ListEntries(direction ledger.Direction, status ledger.StatusFilter) []services.EntryView
	Summary() services.Summary
}
