// Package db exposes the persisted entity collections and settings over the
// key-value store.
package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"minassist/pkg/core/model"
	"minassist/pkg/kvstore"
	"minassist/pkg/notify"
)

// Slot keys. These names are also the top-level keys of the export bundle.
const (
	KeyActivities   = "ministryActivities"
	KeyAssignments  = "schoolAssignments"
	KeyDuties       = "meetingDuties"
	KeyServiceLog   = "serviceEntries"
	KeyFired        = "firedReminders"
	KeyAppTitle     = "appTitle"
	KeyMonthlyGoal  = "monthlyGoal"
	KeyDarkMode     = "isDarkMode"
	KeyNotification = notify.ConsentKey
)

// ErrReminderInPast is returned when an add or update carries a reminder
// timestamp that has already passed.
var ErrReminderInPast = errors.New("reminder time is in the past")

// CollectionKeys lists the slots holding schedulable items. A write to any of
// these should trigger fired-set reconciliation.
func CollectionKeys() []string {
	return []string{KeyActivities, KeyAssignments, KeyDuties}
}

// DB provides entity collection and settings operations backed by a Store.
type DB struct {
	kv       kvstore.Store
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewDB creates a new database layer over the given store.
func NewDB(kv kvstore.Store, logger *zap.Logger) *DB {
	return &DB{
		kv:       kv,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Store returns the underlying key-value store.
func (db *DB) Store() kvstore.Store { return db.kv }

func readList[T any](kv kvstore.Store, key string) ([]T, error) {
	var items []T
	if _, err := kv.Read(key, &items); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// checkReminder rejects reminder timestamps that are malformed or already in
// the past. prev holds the previously stored value on updates; an unchanged
// reminder is not re-validated so editing other fields stays possible.
func (db *DB) checkReminder(reminder, prev string) error {
	if reminder == "" || reminder == prev {
		return nil
	}
	ts, err := model.ParseReminder(reminder)
	if err != nil {
		return err
	}
	if ts.Before(db.now()) {
		return ErrReminderInPast
	}
	return nil
}
