package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"minassist/pkg/core/model"
	"minassist/pkg/notify"
)

// DefaultIcon is attached to every reminder notification. Channels may ignore
// it.
const DefaultIcon = "appointment-soon"

// SweepStore defines the database operations the reminder sweep needs.
type SweepStore interface {
	ListActivities() ([]model.MinistryActivity, error)
	ListAssignments() ([]model.SchoolAssignment, error)
	ListDuties() ([]model.MeetingDuty, error)
	FiredMarkers() ([]model.FiredMarker, error)
	WriteFiredMarkers(markers []model.FiredMarker) error
}

// CollectDue scans items for reminders that have passed and are not yet in
// the fired set. It is pure: callers perform the notification and persistence
// I/O. A reminder equal to now counts as due.
func CollectDue(items []model.Schedulable, fired []model.FiredMarker, now time.Time) ([]notify.Notification, []model.FiredMarker) {
	firedSet := make(map[model.FiredMarker]struct{}, len(fired))
	for _, marker := range fired {
		firedSet[marker] = struct{}{}
	}

	var notifications []notify.Notification
	var newlyFired []model.FiredMarker

	for _, item := range items {
		reminder := item.ReminderAt()
		if reminder == "" {
			continue
		}
		if _, done := firedSet[model.MarkerFor(item)]; done {
			continue
		}

		ts, err := model.ParseReminder(reminder)
		if err != nil {
			// An unparseable reminder can never become due; skip it.
			continue
		}
		if ts.After(now) {
			continue
		}

		notifications = append(notifications, BuildNotification(item))
		newlyFired = append(newlyFired, model.MarkerFor(item))
	}

	return notifications, newlyFired
}

// BuildNotification derives the notification title and body from the item
// variant.
func BuildNotification(item model.Schedulable) notify.Notification {
	n := notify.Notification{Title: "Recordatorio", Icon: DefaultIcon}

	switch it := item.(type) {
	case model.MinistryActivity:
		n.Title = "Recordatorio de Ministerio"
		n.Body = fmt.Sprintf("Actividad en territorio %s. Dirige: %s.", it.Territory, it.Leader)
	case model.SchoolAssignment:
		n.Title = "Recordatorio de Asignación"
		n.Body = fmt.Sprintf("Asignación: \"%s\". Estudiante: %s.", it.Assignment, it.Student)
	case model.MeetingDuty:
		n.Title = "Recordatorio de Deber"
		n.Body = fmt.Sprintf("Deber: %s. Asignado: %s.", it.Duty, it.Person)
	}

	return n
}

// Sweeper owns the I/O around CollectDue: capability check, fresh fired-set
// load, notification emission and the batched fired-set write.
type Sweeper struct {
	store    SweepStore
	gate     *notify.Gate
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time

	// Guards against overlapping ticks emitting duplicates.
	mu sync.Mutex
}

// NewSweeper creates a reminder sweeper.
func NewSweeper(store SweepStore, gate *notify.Gate, notifier notify.Notifier, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		gate:     gate,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// RunOnce performs one full sweep and returns how many reminders fired.
//
// Emission failures do not prevent an item from being marked fired:
// at-most-once delivery wins over at-least-once, a dropped notification is an
// accepted loss.
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-checked every tick; the user may have revoked permission since the
	// last one.
	if state := s.gate.Status(); state != notify.PermissionGranted {
		s.logger.Debug("Skipping sweep, notifications not granted", zap.String("state", string(state)))
		return 0, nil
	}

	// Always a fresh read, never a cached copy: another writer may have
	// appended markers since the last tick.
	fired, err := s.store.FiredMarkers()
	if err != nil {
		return 0, fmt.Errorf("failed to load fired reminders: %w", err)
	}

	items, err := s.allItems()
	if err != nil {
		return 0, err
	}

	notifications, newlyFired := CollectDue(items, fired, s.now())
	if len(newlyFired) == 0 {
		return 0, nil
	}

	for i, n := range notifications {
		if err := s.notifier.Send(ctx, n); err != nil {
			s.logger.Warn("Notification emission failed, item still marked fired",
				zap.String("id", newlyFired[i].ID),
				zap.Error(err))
		}
	}

	// One batched read-modify-write so a reconciliation racing this sweep
	// cannot be clobbered by a stale copy.
	current, err := s.store.FiredMarkers()
	if err != nil {
		return 0, fmt.Errorf("failed to reload fired reminders: %w", err)
	}
	merged := mergeMarkers(current, newlyFired)
	if err := s.store.WriteFiredMarkers(merged); err != nil {
		return 0, fmt.Errorf("failed to persist fired reminders: %w", err)
	}

	s.logger.Info("Reminder sweep fired notifications", zap.Int("count", len(newlyFired)))
	return len(newlyFired), nil
}

func (s *Sweeper) allItems() ([]model.Schedulable, error) {
	activities, err := s.store.ListActivities()
	if err != nil {
		return nil, fmt.Errorf("failed to list ministry activities: %w", err)
	}
	assignments, err := s.store.ListAssignments()
	if err != nil {
		return nil, fmt.Errorf("failed to list school assignments: %w", err)
	}
	duties, err := s.store.ListDuties()
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting duties: %w", err)
	}

	items := make([]model.Schedulable, 0, len(activities)+len(assignments)+len(duties))
	for _, a := range activities {
		items = append(items, a)
	}
	for _, a := range assignments {
		items = append(items, a)
	}
	for _, d := range duties {
		items = append(items, d)
	}
	return items, nil
}

func mergeMarkers(current, added []model.FiredMarker) []model.FiredMarker {
	seen := make(map[model.FiredMarker]struct{}, len(current))
	merged := make([]model.FiredMarker, 0, len(current)+len(added))
	for _, m := range current {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		merged = append(merged, m)
	}
	for _, m := range added {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		merged = append(merged, m)
	}
	return merged
}
