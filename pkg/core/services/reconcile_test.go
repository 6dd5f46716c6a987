package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"minassist/pkg/core/model"
	"minassist/pkg/db"
	"minassist/pkg/kvstore"
)

// countingStore wraps a Store and counts writes per key, so tests can assert
// that reconciliation skips redundant persistence.
type countingStore struct {
	kvstore.Store
	writes map[string]int
}

func newCountingStore() *countingStore {
	return &countingStore{Store: kvstore.NewMemory(), writes: map[string]int{}}
}

func (c *countingStore) Write(key string, value any) error {
	c.writes[key]++
	return c.Store.Write(key, value)
}

func TestReconcile_PrunesMarkerForDeletedItem(t *testing.T) {
	// Scenario: the activity fired, then the user deleted it.
	now := time.Date(2024, 7, 15, 9, 0, 1, 0, time.Local)
	f := newSweepFixture(t, "granted", now)
	require.NoError(t, f.database.WriteActivities([]model.MinistryActivity{morningActivity()}))

	_, err := f.sweeper.RunOnce(context.Background())
	require.NoError(t, err)

	require.NoError(t, f.database.DeleteActivity("act-1"))

	pruned, err := Reconcile(f.database, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	markers, err := f.database.FiredMarkers()
	require.NoError(t, err)
	assert.Empty(t, markers)
}

func TestReconcile_NoWriteWhenNothingToPrune(t *testing.T) {
	kv := newCountingStore()
	database := db.NewDB(kv, zap.NewNop())

	require.NoError(t, database.WriteActivities([]model.MinistryActivity{morningActivity()}))
	require.NoError(t, database.WriteFiredMarkers([]model.FiredMarker{
		{ID: "act-1", Reminder: "2024-07-15T09:00"},
	}))
	firedWritesBefore := kv.writes[db.KeyFired]

	pruned, err := Reconcile(database, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, pruned)
	assert.Equal(t, firedWritesBefore, kv.writes[db.KeyFired], "unchanged fired set must not be rewritten")
}

func TestReconcile_EmptyFiredSetShortCircuits(t *testing.T) {
	kv := newCountingStore()
	database := db.NewDB(kv, zap.NewNop())
	require.NoError(t, database.WriteActivities([]model.MinistryActivity{morningActivity()}))

	pruned, err := Reconcile(database, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, pruned)
	assert.Zero(t, kv.writes[db.KeyFired])
}

func TestReconcile_EditedReminderReArmsItem(t *testing.T) {
	now := time.Date(2024, 7, 15, 9, 0, 1, 0, time.Local)
	f := newSweepFixture(t, "granted", now)
	require.NoError(t, f.database.WriteActivities([]model.MinistryActivity{morningActivity()}))

	_, err := f.sweeper.RunOnce(context.Background())
	require.NoError(t, err)

	// The user moves the reminder to the evening.
	edited := morningActivity()
	edited.Reminder = "2024-07-15T19:00"
	require.NoError(t, f.database.WriteActivities([]model.MinistryActivity{edited}))

	pruned, err := Reconcile(f.database, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, pruned, "marker for the old timestamp is stale")

	// Once the new timestamp passes, the reminder fires again.
	f.sweeper.now = func() time.Time {
		return time.Date(2024, 7, 15, 19, 0, 1, 0, time.Local)
	}
	fired, err := f.sweeper.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestReconcile_KeepsMarkersForLiveItems(t *testing.T) {
	now := time.Date(2024, 7, 20, 20, 0, 0, 0, time.Local)
	f := newSweepFixture(t, "granted", now)

	require.NoError(t, f.database.WriteActivities([]model.MinistryActivity{morningActivity()}))
	require.NoError(t, f.database.WriteDuties([]model.MeetingDuty{{
		ID:       "duty-1",
		Date:     "2024-07-18",
		Reminder: "2024-07-18T18:00",
		Person:   "Pedro",
		Duty:     "Acomodador",
	}}))

	_, err := f.sweeper.RunOnce(context.Background())
	require.NoError(t, err)

	require.NoError(t, f.database.DeleteDuty("duty-1"))

	pruned, err := Reconcile(f.database, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	markers, err := f.database.FiredMarkers()
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, "act-1", markers[0].ID, "the surviving item's marker stays")
}
