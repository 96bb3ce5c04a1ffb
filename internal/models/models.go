package models

import (
	"time"

	"debtledger/internal/money"
)

type EntryType string

const (
	EntryTypeCredit EntryType = "credit"
	EntryTypeDebit  EntryType = "debit"
)

type EntryStatus string

const (
	StatusActive   EntryStatus = "active"
	StatusArchived EntryStatus = "archived"
)

// MarketplaceAccount is the sentinel account label recorded on a payment
// fixation made from marketplace sales instead of a real account.
const MarketplaceAccount = "marketplace"

// LedgerEntry is one recorded debt: a debit ("I borrowed") or a credit
// ("I lent"). Entries are append-only; the only mutation ever applied is
// growing one of the fixation lists. Status is not stored — it is derived
// from the outstanding balance on every read.
type LedgerEntry struct {
	ID               string            `json:"id"`
	Type             EntryType         `json:"type"`
	Amount           money.Amount      `json:"amount"`
	Description      string            `json:"description"`
	Counterparty     string            `json:"counterparty"`
	Account          string            `json:"account"`
	Date             string            `json:"date"`
	CreatedAt        time.Time         `json:"createdAt"`
	PaymentFixations []PaymentFixation `json:"paymentFixations,omitempty"`
	ReceiptFixations []ReceiptFixation `json:"receiptFixations,omitempty"`
}

// PaymentFixation records a partial repayment against a debit entry.
type PaymentFixation struct {
	Amount               money.Amount `json:"amount"`
	Account              string       `json:"account"`
	Description          string       `json:"description,omitempty"`
	ReceiptFileName      string       `json:"receiptFileName,omitempty"`
	IsMarketplacePayment bool         `json:"isMarketplacePayment,omitempty"`
	FixedAt              time.Time    `json:"fixedAt"`
}

// ReceiptFixation records a partial receipt against a credit entry.
type ReceiptFixation struct {
	Amount          money.Amount `json:"amount"`
	Account         string       `json:"account"`
	Description     string       `json:"description,omitempty"`
	ReceiptFileName string       `json:"receiptFileName,omitempty"`
	FixedAt         time.Time    `json:"fixedAt"`
}
