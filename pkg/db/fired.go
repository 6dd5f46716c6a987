package db

import "minassist/pkg/core/model"

// FiredMarkers reads the fired-reminder set. The read always goes through the
// store so concurrent sweeps see the latest persisted value, never a stale
// in-memory copy.
func (db *DB) FiredMarkers() ([]model.FiredMarker, error) {
	return readList[model.FiredMarker](db.kv, KeyFired)
}

// WriteFiredMarkers replaces the persisted fired-reminder set.
func (db *DB) WriteFiredMarkers(markers []model.FiredMarker) error {
	if markers == nil {
		markers = []model.FiredMarker{}
	}
	return db.kv.Write(KeyFired, markers)
}
