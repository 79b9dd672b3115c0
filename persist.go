package skintrack

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DefaultFile is the default collection slot. The name carries the document
// format version so a future format can live next to the old one.
const DefaultFile = "collection.v1.json"

// Load reads the collection document at path and heals it against the
// canonical roster. A missing or unreadable file silently yields a fresh
// canonical collection: corrupted storage must never make the tool unusable.
func Load(path string) *Collection {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewCollection()
	}
	stored, err := decodeDocument(data)
	if err != nil {
		log.Printf("ignoring unreadable collection file %q: %v", path, err)
		return NewCollection()
	}
	return Reconcile(Roster, stored)
}

// Save writes the whole collection document to path, creating the parent
// directory if needed. Callers save after every mutation, so a crash never
// loses more than the change in flight.
func Save(path string, c *Collection) error {
	data, err := encodeDocument(c)
	if err != nil {
		return fmt.Errorf("cannot encode collection: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create directory for %q: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write collection file %q: %w", path, err)
	}
	return nil
}
