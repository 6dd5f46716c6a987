package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"minassist/pkg/db"
	"minassist/pkg/kvstore"
)

// DefaultSweepSchedule runs the sweep once a minute.
const DefaultSweepSchedule = "@every 1m"

// Watch runs the reminder daemon until ctx is canceled: the sweep on the
// given cron schedule, and fired-set reconciliation on every collection
// change. Overlapping ticks are skipped rather than run in parallel.
func Watch(ctx context.Context, sweeper *Sweeper, store kvstore.Store, logger *zap.Logger, schedule string) error {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	collectionKeys := db.CollectionKeys()
	store.Subscribe(func(key string) {
		if !slices.Contains(collectionKeys, key) {
			return
		}
		if _, err := Reconcile(sweeper.store, logger); err != nil {
			logger.Warn("Fired-reminder reconciliation failed", zap.Error(err))
		}
	})

	// Catch up with deletions that happened while the daemon was down.
	if _, err := Reconcile(sweeper.store, logger); err != nil {
		logger.Warn("Initial reconciliation failed", zap.Error(err))
	}

	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger))
	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger)))

	_, err := scheduler.AddFunc(schedule, func() {
		if _, err := sweeper.RunOnce(ctx); err != nil {
			logger.Warn("Reminder sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	logger.Info("Reminder daemon started", zap.String("schedule", schedule))
	scheduler.Start()

	<-ctx.Done()

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	logger.Info("Reminder daemon stopped")

	return nil
}
