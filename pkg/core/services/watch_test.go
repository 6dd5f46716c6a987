package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"minassist/pkg/core/model"
)

func TestWatch_InvalidScheduleRejected(t *testing.T) {
	f := newSweepFixture(t, "granted", time.Now())

	err := Watch(context.Background(), f.sweeper, f.kv, zap.NewNop(), "every minute or so")
	assert.Error(t, err)
}

func TestWatch_ReconcilesOnCollectionChange(t *testing.T) {
	now := time.Date(2024, 7, 15, 9, 0, 1, 0, time.Local)
	f := newSweepFixture(t, "granted", now)
	require.NoError(t, f.database.WriteActivities([]model.MinistryActivity{morningActivity()}))

	_, err := f.sweeper.RunOnce(context.Background())
	require.NoError(t, err)
	markers, err := f.database.FiredMarkers()
	require.NoError(t, err)
	require.Len(t, markers, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		// A schedule far in the future keeps the cron side quiet; this test
		// exercises only the change subscription.
		done <- Watch(ctx, f.sweeper, f.kv, zap.NewNop(), "@every 1h")
	}()

	// Emptying the collection triggers the subscription, which prunes the
	// marker. The write repeats until the daemon goroutine has subscribed.
	require.Eventually(t, func() bool {
		if err := f.database.WriteActivities([]model.MinistryActivity{}); err != nil {
			return false
		}
		markers, err := f.database.FiredMarkers()
		return err == nil && len(markers) == 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
