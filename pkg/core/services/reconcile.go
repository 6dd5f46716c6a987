package services

import (
	"fmt"

	"go.uber.org/zap"

	"minassist/pkg/core/model"
)

// Reconcile prunes fired markers whose item no longer exists, or whose item's
// reminder was edited to a different timestamp (which re-arms it). It runs
// whenever a collection changes, independent of the sweep timer.
//
// The write is skipped when nothing was pruned, so a store whose writes
// re-trigger change subscriptions cannot loop.
func Reconcile(store SweepStore, logger *zap.Logger) (int, error) {
	fired, err := store.FiredMarkers()
	if err != nil {
		return 0, fmt.Errorf("failed to load fired reminders: %w", err)
	}
	if len(fired) == 0 {
		return 0, nil
	}

	activities, err := store.ListActivities()
	if err != nil {
		return 0, fmt.Errorf("failed to list ministry activities: %w", err)
	}
	assignments, err := store.ListAssignments()
	if err != nil {
		return 0, fmt.Errorf("failed to list school assignments: %w", err)
	}
	duties, err := store.ListDuties()
	if err != nil {
		return 0, fmt.Errorf("failed to list meeting duties: %w", err)
	}

	live := make(map[model.FiredMarker]struct{}, len(activities)+len(assignments)+len(duties))
	for _, a := range activities {
		live[model.MarkerFor(a)] = struct{}{}
	}
	for _, a := range assignments {
		live[model.MarkerFor(a)] = struct{}{}
	}
	for _, d := range duties {
		live[model.MarkerFor(d)] = struct{}{}
	}

	kept := make([]model.FiredMarker, 0, len(fired))
	for _, marker := range fired {
		if _, ok := live[marker]; ok {
			kept = append(kept, marker)
		}
	}

	pruned := len(fired) - len(kept)
	if pruned == 0 {
		return 0, nil
	}

	if err := store.WriteFiredMarkers(kept); err != nil {
		return 0, fmt.Errorf("failed to persist pruned fired reminders: %w", err)
	}

	logger.Debug("Pruned fired reminders for deleted or re-armed items", zap.Int("count", pruned))
	return pruned, nil
}
