package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"debtledger/internal/models"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketLedger = "ledger"

	// blobKey matches the localStorage key the browser frontend used, so an
	// imported blob lands under the same name it left with.
	blobKey = "ledger-entries"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrEntryType     = errors.New("fixation kind does not match entry type")
)

// EntryStore keeps the full entry list in memory, newest first, and mirrors
// it into a single bbolt blob after every mutation. The in-memory list is
// authoritative for the session: a failed persist is logged and the
// operation still counts as done.
type EntryStore struct {
	db *bolt.DB

	mu      sync.Mutex
	entries []models.LedgerEntry
}

// Open opens the database, creates the ledger bucket and loads the blob. A
// missing or malformed blob starts the store empty; only opening the
// database itself can fail.
func Open(path string) (*EntryStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open ledger database: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLedger))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create ledger bucket: %w", err)
	}

	s := &EntryStore{db: db}
	s.load()
	return s, nil
}

// Close flushes the current list and closes the database.
func (s *EntryStore) Close() error {
	s.mu.Lock()
	s.persistLocked()
	s.mu.Unlock()
	return s.db.Close()
}

func (s *EntryStore) load() {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketLedger)).Get([]byte(blobKey))
		if raw != nil {
			data = make([]byte, len(raw))
			copy(data, raw)
		}
		return nil
	})
	if err != nil {
		log.Printf("ledger blob read failed, starting empty: %v", err)
		return
	}
	if data == nil {
		return
	}
	var entries []models.LedgerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("ledger blob malformed, starting empty: %v", err)
		return
	}
	s.entries = entries
}

// Entries returns a snapshot of the list in insertion order, newest first.
func (s *EntryStore) Entries() []models.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]models.LedgerEntry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// Append prepends a new entry and persists the full list.
func (s *EntryStore) Append(entry models.LedgerEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.LedgerEntry{entry}, s.entries...)
	s.persistLocked()
}

// AddPayment appends a payment fixation to the debit entry with the given
// id. The entry is left untouched when the id does not resolve or the entry
// is not a debit.
func (s *EntryStore) AddPayment(entryID string, fx models.PaymentFixation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID != entryID {
			continue
		}
		if s.entries[i].Type != models.EntryTypeDebit {
			return ErrEntryType
		}
		s.entries[i].PaymentFixations = append(s.entries[i].PaymentFixations, fx)
		s.persistLocked()
		return nil
	}
	return ErrEntryNotFound
}

// AddReceipt appends a receipt fixation to the credit entry with the given
// id, under the same rules as AddPayment.
func (s *EntryStore) AddReceipt(entryID string, fx models.ReceiptFixation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID != entryID {
			continue
		}
		if s.entries[i].Type != models.EntryTypeCredit {
			return ErrEntryType
		}
		s.entries[i].ReceiptFixations = append(s.entries[i].ReceiptFixations, fx)
		s.persistLocked()
		return nil
	}
	return ErrEntryNotFound
}

// Replace swaps in a whole new list, used by the legacy blob import.
func (s *EntryStore) Replace(entries []models.LedgerEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.persistLocked()
}

// persistLocked re-serializes the entire list into the blob. There is no
// delta persistence; every mutation writes the whole array.
func (s *EntryStore) persistLocked() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		log.Printf("ledger blob marshal failed, in-memory state kept: %v", err)
		return
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketLedger)).Put([]byte(blobKey), data)
	})
	if err != nil {
		log.Printf("ledger blob write failed, in-memory state kept: %v", err)
	}
}
