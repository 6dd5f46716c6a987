package db

import "minassist/pkg/core/model"

// Wholesale collection replacements, used by import. Items keep the ids they
// arrive with.

// WriteActivities replaces the ministry activity collection.
func (db *DB) WriteActivities(items []model.MinistryActivity) error {
	if items == nil {
		items = []model.MinistryActivity{}
	}
	return db.kv.Write(KeyActivities, items)
}

// WriteAssignments replaces the school assignment collection.
func (db *DB) WriteAssignments(items []model.SchoolAssignment) error {
	if items == nil {
		items = []model.SchoolAssignment{}
	}
	return db.kv.Write(KeyAssignments, items)
}

// WriteDuties replaces the meeting duty collection.
func (db *DB) WriteDuties(items []model.MeetingDuty) error {
	if items == nil {
		items = []model.MeetingDuty{}
	}
	return db.kv.Write(KeyDuties, items)
}

// WriteServiceEntries replaces the service log.
func (db *DB) WriteServiceEntries(entries []model.ServiceEntry) error {
	if entries == nil {
		entries = []model.ServiceEntry{}
	}
	return db.kv.Write(KeyServiceLog, entries)
}
