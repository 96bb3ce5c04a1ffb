package handlers

import (
	"debtledger/internal/config"
	"debtledger/internal/ledger"
	"debtledger/internal/models"
	"debtledger/internal/services"
	"debtledger/internal/websocket"
)

type stubService struct {
	createEntryFn func(entryType models.EntryType, input services.EntryInput) (models.LedgerEntry, error)
	fixPaymentFn  func(entryID string, input services.PaymentInput) error
	fixReceiptFn  func(entryID string, input services.ReceiptInput) error
	listEntriesFn func(direction ledger.Direction, status ledger.StatusFilter) []services.EntryView
	summaryFn     func() services.Summary
}

func (s stubService) CreateEntry(entryType models.EntryType, input services.EntryInput) (models.LedgerEntry, error) {
	if s.createEntryFn == nil {
		return models.LedgerEntry{}, nil
	}
	return s.createEntryFn(entryType, input)
}

func (s stubService) FixPayment(entryID string, input services.PaymentInput) error {
	if s.fixPaymentFn == nil {
		return nil
	}
	return s.fixPaymentFn(entryID, input)
}

func (s stubService) FixReceipt(entryID string, input services.ReceiptInput) error {
	if s.fixReceiptFn == nil {
		return nil
	}
	return s.fixReceiptFn(entryID, input)
}

func (s stubService) ListEntries(direction ledger.Direction, status ledger.StatusFilter) []services.EntryView {
	if s.listEntriesFn == nil {
		return nil
	}
	return s.listEntriesFn(direction, status)
}

func (s stubService) Summary() services.Summary {
	if s.summaryFn == nil {
		return services.Summary{}
	}
	return s.summaryFn()
}

func newTestHandler(service LedgerService) *Handler {
	return New(config.Config{AllowedOrigins: "*"}, service, websocket.NewHub())
}
