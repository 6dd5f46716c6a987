package db

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"minassist/pkg/core/model"
)

// AddActivity validates the activity, assigns a fresh id and appends it.
// The returned value carries the generated id.
func (db *DB) AddActivity(activity model.MinistryActivity) (model.MinistryActivity, error) {
	if err := db.validate.Struct(activity); err != nil {
		return model.MinistryActivity{}, fmt.Errorf("invalid ministry activity: %w", err)
	}
	if err := db.checkReminder(activity.Reminder, ""); err != nil {
		return model.MinistryActivity{}, err
	}

	activity.ID = uuid.NewString()

	items, err := readList[model.MinistryActivity](db.kv, KeyActivities)
	if err != nil {
		return model.MinistryActivity{}, err
	}
	items = append(items, activity)

	if err := db.kv.Write(KeyActivities, items); err != nil {
		return model.MinistryActivity{}, err
	}
	return activity, nil
}

// UpdateActivity replaces the stored activity with a matching id. An unknown
// id is logged and ignored.
func (db *DB) UpdateActivity(activity model.MinistryActivity) error {
	if err := db.validate.Struct(activity); err != nil {
		return fmt.Errorf("invalid ministry activity: %w", err)
	}

	items, err := readList[model.MinistryActivity](db.kv, KeyActivities)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].ID == activity.ID {
			if err := db.checkReminder(activity.Reminder, items[i].Reminder); err != nil {
				return err
			}
			items[i] = activity
			found = true
			break
		}
	}
	if !found {
		db.logger.Warn("Update for unknown ministry activity ignored", zap.String("id", activity.ID))
		return nil
	}

	return db.kv.Write(KeyActivities, items)
}

// DeleteActivity removes the activity with the given id. Absent ids are a
// no-op.
func (db *DB) DeleteActivity(id string) error {
	items, err := readList[model.MinistryActivity](db.kv, KeyActivities)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	return db.kv.Write(KeyActivities, kept)
}

// ListActivities returns all ministry activities.
func (db *DB) ListActivities() ([]model.MinistryActivity, error) {
	return readList[model.MinistryActivity](db.kv, KeyActivities)
}

// AddAssignment validates the assignment, assigns a fresh id and appends it.
func (db *DB) AddAssignment(assignment model.SchoolAssignment) (model.SchoolAssignment, error) {
	if err := db.validate.Struct(assignment); err != nil {
		return model.SchoolAssignment{}, fmt.Errorf("invalid school assignment: %w", err)
	}
	if err := db.checkReminder(assignment.Reminder, ""); err != nil {
		return model.SchoolAssignment{}, err
	}

	assignment.ID = uuid.NewString()

	items, err := readList[model.SchoolAssignment](db.kv, KeyAssignments)
	if err != nil {
		return model.SchoolAssignment{}, err
	}
	items = append(items, assignment)

	if err := db.kv.Write(KeyAssignments, items); err != nil {
		return model.SchoolAssignment{}, err
	}
	return assignment, nil
}

// UpdateAssignment replaces the stored assignment with a matching id. An
// unknown id is logged and ignored.
func (db *DB) UpdateAssignment(assignment model.SchoolAssignment) error {
	if err := db.validate.Struct(assignment); err != nil {
		return fmt.Errorf("invalid school assignment: %w", err)
	}

	items, err := readList[model.SchoolAssignment](db.kv, KeyAssignments)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].ID == assignment.ID {
			if err := db.checkReminder(assignment.Reminder, items[i].Reminder); err != nil {
				return err
			}
			items[i] = assignment
			found = true
			break
		}
	}
	if !found {
		db.logger.Warn("Update for unknown school assignment ignored", zap.String("id", assignment.ID))
		return nil
	}

	return db.kv.Write(KeyAssignments, items)
}

// DeleteAssignment removes the assignment with the given id.
func (db *DB) DeleteAssignment(id string) error {
	items, err := readList[model.SchoolAssignment](db.kv, KeyAssignments)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	return db.kv.Write(KeyAssignments, kept)
}

// ListAssignments returns all school assignments.
func (db *DB) ListAssignments() ([]model.SchoolAssignment, error) {
	return readList[model.SchoolAssignment](db.kv, KeyAssignments)
}

// AddDuty validates the duty, assigns a fresh id and appends it.
func (db *DB) AddDuty(duty model.MeetingDuty) (model.MeetingDuty, error) {
	if err := db.validate.Struct(duty); err != nil {
		return model.MeetingDuty{}, fmt.Errorf("invalid meeting duty: %w", err)
	}
	if err := db.checkReminder(duty.Reminder, ""); err != nil {
		return model.MeetingDuty{}, err
	}

	duty.ID = uuid.NewString()

	items, err := readList[model.MeetingDuty](db.kv, KeyDuties)
	if err != nil {
		return model.MeetingDuty{}, err
	}
	items = append(items, duty)

	if err := db.kv.Write(KeyDuties, items); err != nil {
		return model.MeetingDuty{}, err
	}
	return duty, nil
}

// UpdateDuty replaces the stored duty with a matching id. An unknown id is
// logged and ignored.
func (db *DB) UpdateDuty(duty model.MeetingDuty) error {
	if err := db.validate.Struct(duty); err != nil {
		return fmt.Errorf("invalid meeting duty: %w", err)
	}

	items, err := readList[model.MeetingDuty](db.kv, KeyDuties)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].ID == duty.ID {
			if err := db.checkReminder(duty.Reminder, items[i].Reminder); err != nil {
				return err
			}
			items[i] = duty
			found = true
			break
		}
	}
	if !found {
		db.logger.Warn("Update for unknown meeting duty ignored", zap.String("id", duty.ID))
		return nil
	}

	return db.kv.Write(KeyDuties, items)
}

// DeleteDuty removes the duty with the given id.
func (db *DB) DeleteDuty(id string) error {
	items, err := readList[model.MeetingDuty](db.kv, KeyDuties)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	return db.kv.Write(KeyDuties, kept)
}

// ListDuties returns all meeting duties.
func (db *DB) ListDuties() ([]model.MeetingDuty, error) {
	return readList[model.MeetingDuty](db.kv, KeyDuties)
}
