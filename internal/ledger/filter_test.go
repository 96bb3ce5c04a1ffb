package ledger

import (
	"testing"

	"debtledger/internal/models"
)

func TestFilterComposition(t *testing.T) {
	entries := []models.LedgerEntry{
		debitEntry("d-open", 10000),
		debitEntry("d-settled", 10000, 10000),
		creditEntry("c-open", 5000),
		creditEntry("c-settled", 5000, 5000),
	}

	all := Filter(entries, DirectionAll, StatusFilterAll)
	if len(all) != len(entries) {
		t.Fatalf("all/all dropped entries: %d of %d", len(all), len(entries))
	}

	iOwe := Filter(entries, DirectionIOwe, StatusFilterAll)
	if len(iOwe) != 1 || iOwe[0].ID != "d-open" {
		t.Fatalf("i_owe = %#v, want only d-open", iOwe)
	}
	for _, filtered := range iOwe {
		found := false
		for _, entry := range all {
			if entry.ID == filtered.ID {
				found = true
			}
		}
		if !found {
			t.Fatalf("i_owe produced entry %s not present in all/all", filtered.ID)
		}
	}
}

func TestFilterStatusAppliedAfterDirection(t *testing.T) {
	entries := []models.LedgerEntry{
		debitEntry("d-open", 10000),
		debitEntry("d-settled", 10000, 10000),
	}
	if got := Filter(entries, DirectionIOwe, StatusFilterArchived); len(got) != 0 {
		t.Fatalf("archived i_owe should be empty, got %#v", got)
	}
	if got := Filter(entries, DirectionAll, StatusFilterArchived); len(got) != 1 || got[0].ID != "d-settled" {
		t.Fatalf("all/archived = %#v, want d-settled", got)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	entries := []models.LedgerEntry{
		debitEntry("newest", 100),
		creditEntry("middle", 100),
		debitEntry("oldest", 100),
	}
	got := Filter(entries, DirectionAll, StatusFilterActive)
	if len(got) != 3 || got[0].ID != "newest" || got[1].ID != "middle" || got[2].ID != "oldest" {
		t.Fatalf("order not preserved: %#v", got)
	}
}

func TestParseFilters(t *testing.T) {
	if _, err := ParseDirection("everything"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
	if _, err := ParseStatusFilter("done"); err == nil {
		t.Fatal("expected error for unknown status filter")
	}
	if direction, err := ParseDirection("owed_to_me"); err != nil || direction != DirectionOwedToMe {
		t.Fatalf("ParseDirection = %v, %v", direction, err)
	}
	if status, err := ParseStatusFilter("archived"); err != nil || status != StatusFilterArchived {
		t.Fatalf("ParseStatusFilter = %v, %v", status, err)
	}
}
