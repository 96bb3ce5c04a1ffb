// Package ledger holds the accounting computations: outstanding balance per
// entry, the derived active/archived status, and the aggregate totals. All
// functions are pure; they never mutate their inputs.
package ledger

import (
	"debtledger/internal/models"
	"debtledger/internal/money"
)

// Outstanding returns the entry's principal minus its cumulative fixations,
// clamped at zero. Debit entries settle through payments and credit entries
// through receipts; a fixation of the wrong kind for the entry's type is
// ignored rather than treated as an error.
func Outstanding(entry models.LedgerEntry) money.Amount {
	var fixed money.Amount
	switch entry.Type {
	case models.EntryTypeDebit:
		for _, p := range entry.PaymentFixations {
			fixed += p.Amount
		}
	case models.EntryTypeCredit:
		for _, r := range entry.ReceiptFixations {
			fixed += r.Amount
		}
	}
	remaining := entry.Amount - fixed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Status derives the entry's status from its outstanding balance.
func Status(entry models.LedgerEntry) models.EntryStatus {
	if Outstanding(entry) > 0 {
		return models.StatusActive
	}
	return models.StatusArchived
}

// NetBalance is the running balance across all entries: +amount per credit,
// -amount per debit, moved toward zero by that entry's fixations. Unlike the
// directional totals it applies no per-entry clamping, so an overpaid entry
// pushes the net balance past the point where TotalOwedToMe-TotalIOwe would
// stop. The asymmetry is inherited behavior and is kept as is.
func NetBalance(entries []models.LedgerEntry) money.Amount {
	var balance money.Amount
	for _, entry := range entries {
		switch entry.Type {
		case models.EntryTypeCredit:
			balance += entry.Amount
			for _, r := range entry.ReceiptFixations {
				balance -= r.Amount
			}
		case models.EntryTypeDebit:
			balance -= entry.Amount
			for _, p := range entry.PaymentFixations {
				balance += p.Amount
			}
		}
	}
	return balance
}

// TotalOwedToMe sums the outstanding balance of credit entries.
func TotalOwedToMe(entries []models.LedgerEntry) money.Amount {
	var total money.Amount
	for _, entry := range entries {
		if entry.Type == models.EntryTypeCredit {
			total += Outstanding(entry)
		}
	}
	return total
}

// TotalIOwe sums the outstanding balance of debit entries.
func TotalIOwe(entries []models.LedgerEntry) money.Amount {
	var total money.Amount
	for _, entry := range entries {
		if entry.Type == models.EntryTypeDebit {
			total += Outstanding(entry)
		}
	}
	return total
}
