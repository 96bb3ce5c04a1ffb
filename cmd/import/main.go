// Command import loads a ledger blob exported from the browser frontend's
// local storage into the entry store. Legacy blobs carry a cosmetic status
// field per entry; it is dropped on import since status is derived.
package main

import (
	"encoding/json"
	"log"
	"os"

	"debtledger/internal/config"
	"debtledger/internal/models"
	"debtledger/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <exported-entries.json>", os.Args[0])
	}
	_ = godotenv.Load()
	cfg := config.Load()

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read export: %v", err)
	}
	var entries []models.LedgerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatalf("failed to parse export: %v", err)
	}

	entryStore, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open entry store: %v", err)
	}
	defer entryStore.Close()

	entryStore.Replace(entries)
	log.Printf("imported %d entries into %s", len(entries), cfg.DatabasePath)
}
