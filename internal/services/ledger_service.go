package services

import (
	"errors"
	"strings"
	"time"

	"debtledger/internal/ledger"
	"debtledger/internal/models"
	"debtledger/internal/money"
	"debtledger/internal/validator"
	"debtledger/internal/websocket"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrCounterpartyRequired = errors.New("counterparty is required")
	ErrDescriptionRequired  = errors.New("description is required")
	ErrDateRequired         = errors.New("date is required")
	ErrInvalidDate          = errors.New("date must be a calendar date (YYYY-MM-DD)")
	ErrAccountRequired      = errors.New("account is required")
)

type EntryStore interface {
	Entries() []models.LedgerEntry
	Append(entry models.LedgerEntry)
	AddPayment(entryID string, fx models.PaymentFixation) error
	AddReceipt(entryID string, fx models.ReceiptFixation) error
}

// LedgerService validates user input, builds entries and fixations, drives
// the store and pushes the refreshed summary to websocket clients.
type LedgerService struct {
	entries EntryStore
	hub     *websocket.Hub
}

func NewLedgerService(entries EntryStore, hub *websocket.Hub) *LedgerService {
	return &LedgerService{entries: entries, hub: hub}
}

type EntryInput struct {
	Counterparty string
	Date         string
	Description  string
	Amount       string
	Account      string
}

type PaymentInput struct {
	Amount               string
	Account              string
	Description          string
	ReceiptFileName      string
	IsMarketplacePayment bool
}

type ReceiptInput struct {
	Amount          string
	Account         string
	Description     string
	ReceiptFileName string
}

type Summary struct {
	NetBalance    money.Amount `json:"net_balance"`
	TotalOwedToMe money.Amount `json:"total_owed_to_me"`
	TotalIOwe     money.Amount `json:"total_i_owe"`
}

// EntryView decorates a stored entry with the derived fields the page shows.
type EntryView struct {
	models.LedgerEntry
	Status      models.EntryStatus `json:"status"`
	Outstanding money.Amount       `json:"outstanding"`
}

// CreateEntry records a new borrow (debit) or lend (credit) entry. The
// account label is optional; everything else is required.
func (s *LedgerService) CreateEntry(entryType models.EntryType, input EntryInput) (models.LedgerEntry, error) {
	amount, err := parsePositiveAmount(input.Amount)
	if err != nil {
		return models.LedgerEntry{}, err
	}
	if validator.IsBlank(input.Counterparty) {
		return models.LedgerEntry{}, ErrCounterpartyRequired
	}
	if validator.IsBlank(input.Description) {
		return models.LedgerEntry{}, ErrDescriptionRequired
	}
	if input.Date == "" {
		return models.LedgerEntry{}, ErrDateRequired
	}
	if validator.ValidateDate(input.Date) != nil {
		return models.LedgerEntry{}, ErrInvalidDate
	}

	entry := models.LedgerEntry{
		ID:           uuid.NewString(),
		Type:         entryType,
		Amount:       amount,
		Description:  strings.TrimSpace(input.Description),
		Counterparty: strings.TrimSpace(input.Counterparty),
		Account:      strings.TrimSpace(input.Account),
		Date:         input.Date,
		CreatedAt:    time.Now().UTC(),
	}
	s.entries.Append(entry)
	s.broadcastSummary()
	return entry, nil
}

// FixPayment records a partial repayment against a debit entry. A
// marketplace payment carries the sentinel account label instead of a real
// account; otherwise the source account is required.
func (s *LedgerService) FixPayment(entryID string, input PaymentInput) error {
	amount, err := parsePositiveAmount(input.Amount)
	if err != nil {
		return err
	}
	account := strings.TrimSpace(input.Account)
	if input.IsMarketplacePayment {
		account = models.MarketplaceAccount
	} else if account == "" {
		return ErrAccountRequired
	}

	fx := models.PaymentFixation{
		Amount:               amount,
		Account:              account,
		Description:          strings.TrimSpace(input.Description),
		ReceiptFileName:      input.ReceiptFileName,
		IsMarketplacePayment: input.IsMarketplacePayment,
		FixedAt:              time.Now().UTC(),
	}
	if err := s.entries.AddPayment(entryID, fx); err != nil {
		return err
	}
	s.broadcastSummary()
	return nil
}

// FixReceipt records a partial receipt against a credit entry.
func (s *LedgerService) FixReceipt(entryID string, input ReceiptInput) error {
	amount, err := parsePositiveAmount(input.Amount)
	if err != nil {
		return err
	}
	account := strings.TrimSpace(input.Account)
	if account == "" {
		return ErrAccountRequired
	}

	fx := models.ReceiptFixation{
		Amount:          amount,
		Account:         account,
		Description:     strings.TrimSpace(input.Description),
		ReceiptFileName: input.ReceiptFileName,
		FixedAt:         time.Now().UTC(),
	}
	if err := s.entries.AddReceipt(entryID, fx); err != nil {
		return err
	}
	s.broadcastSummary()
	return nil
}

// ListEntries returns the filtered view with derived status and outstanding
// balance attached, in store order (newest first).
func (s *LedgerService) ListEntries(direction ledger.Direction, status ledger.StatusFilter) []EntryView {
	filtered := ledger.Filter(s.entries.Entries(), direction, status)
	views := make([]EntryView, 0, len(filtered))
	for _, entry := range filtered {
		views = append(views, EntryView{
			LedgerEntry: entry,
			Status:      ledger.Status(entry),
			Outstanding: ledger.Outstanding(entry),
		})
	}
	return views
}

// Summary returns the aggregate totals over all entries.
func (s *LedgerService) Summary() Summary {
	entries := s.entries.Entries()
	return Summary{
		NetBalance:    ledger.NetBalance(entries),
		TotalOwedToMe: ledger.TotalOwedToMe(entries),
		TotalIOwe:     ledger.TotalIOwe(entries),
	}
}

func (s *LedgerService) broadcastSummary() {
	if s.hub == nil {
		return
	}
	summary := s.Summary()
	s.hub.BroadcastSummary(websocket.SummaryUpdate{
		NetBalance:    summary.NetBalance,
		TotalOwedToMe: summary.TotalOwedToMe,
		TotalIOwe:     summary.TotalIOwe,
	})
}

func parsePositiveAmount(raw string) (money.Amount, error) {
	amount, err := money.Parse(raw)
	if err != nil || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}
