package db

import (
	"fmt"

	"minassist/pkg/core/model"
)

// UpsertServiceEntry stores the entry for its calendar day, replacing any
// existing entry for that day. The entry id is forced to its date so exactly
// one entry can exist per day.
func (db *DB) UpsertServiceEntry(entry model.ServiceEntry) error {
	entry.ID = entry.Date
	if err := db.validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid service entry: %w", err)
	}

	entries, err := readList[model.ServiceEntry](db.kv, KeyServiceLog)
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	return db.kv.Write(KeyServiceLog, entries)
}

// DeleteServiceEntry removes the entry for the given day. Absent ids are a
// no-op.
func (db *DB) DeleteServiceEntry(id string) error {
	entries, err := readList[model.ServiceEntry](db.kv, KeyServiceLog)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}

	return db.kv.Write(KeyServiceLog, kept)
}

// ListServiceEntries returns all service entries.
func (db *DB) ListServiceEntries() ([]model.ServiceEntry, error) {
	return readList[model.ServiceEntry](db.kv, KeyServiceLog)
}
