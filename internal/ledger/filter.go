package ledger

import (
	"errors"

	"debtledger/internal/models"
)

type Direction string

const (
	DirectionAll      Direction = "all"
	DirectionIOwe     Direction = "i_owe"
	DirectionOwedToMe Direction = "owed_to_me"
)

type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterArchived StatusFilter = "archived"
)

var (
	ErrInvalidDirection    = errors.New("invalid direction filter")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)

func ParseDirection(raw string) (Direction, error) {
	switch Direction(raw) {
	case DirectionAll, DirectionIOwe, DirectionOwedToMe:
		return Direction(raw), nil
	}
	return "", ErrInvalidDirection
}

func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch StatusFilter(raw) {
	case StatusFilterAll, StatusFilterActive, StatusFilterArchived:
		return StatusFilter(raw), nil
	}
	return "", ErrInvalidStatusFilter
}

// Filter narrows entries by direction and then by derived status, keeping
// the input order. The directional filters additionally require a positive
// outstanding balance, so a settled debt never shows under i_owe/owed_to_me
// even when the status filter asks for everything.
func Filter(entries []models.LedgerEntry, direction Direction, status StatusFilter) []models.LedgerEntry {
	result := make([]models.LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		switch direction {
		case DirectionIOwe:
			if entry.Type != models.EntryTypeDebit || Outstanding(entry) == 0 {
				continue
			}
		case DirectionOwedToMe:
			if entry.Type != models.EntryTypeCredit || Outstanding(entry) == 0 {
				continue
			}
		}
		if status != StatusFilterAll && Status(entry) != models.EntryStatus(status) {
			continue
		}
		result = append(result, entry)
	}
	return result
}
