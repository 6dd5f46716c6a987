// Package model defines the schedulable entities and service-log records the
// application persists.
package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used for item dates and service-entry
// ids.
const DateLayout = "2006-01-02"

// ReminderLayout is the minute-precision timestamp format used for reminder
// fields.
const ReminderLayout = "2006-01-02T15:04"

// Shift identifies the half-day a ministry activity occupies.
type Shift string

const (
	ShiftMorning   Shift = "MORNING"
	ShiftAfternoon Shift = "AFTERNOON"
)

// Schedulable is implemented by every item that carries a date and an
// optional reminder timestamp and is therefore eligible for the reminder
// sweep.
type Schedulable interface {
	ItemID() string
	ItemDate() string
	ReminderAt() string
}

// MinistryActivity is a field-service arrangement on a territory.
type MinistryActivity struct {
	ID          string `json:"id"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Reminder    string `json:"reminder,omitempty"`
	Territory   string `json:"territory" validate:"required"`
	Leader      string `json:"leader" validate:"required"`
	Shift       Shift  `json:"shift" validate:"required,oneof=MORNING AFTERNOON"`
	Description string `json:"description,omitempty"`
}

func (a MinistryActivity) ItemID() string     { return a.ID }
func (a MinistryActivity) ItemDate() string   { return a.Date }
func (a MinistryActivity) ReminderAt() string { return a.Reminder }

// SchoolAssignment is a rotating meeting assignment given to a student.
type SchoolAssignment struct {
	ID         string `json:"id"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Reminder   string `json:"reminder,omitempty"`
	Student    string `json:"student" validate:"required"`
	Assignment string `json:"assignment" validate:"required"`
	EndDate    string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Completed  bool   `json:"completed,omitempty"`
}

func (a SchoolAssignment) ItemID() string     { return a.ID }
func (a SchoolAssignment) ItemDate() string   { return a.Date }
func (a SchoolAssignment) ReminderAt() string { return a.Reminder }

// MeetingDuty is a rotating duty assigned to a person.
type MeetingDuty struct {
	ID        string `json:"id"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Reminder  string `json:"reminder,omitempty"`
	Person    string `json:"person" validate:"required"`
	Duty      string `json:"duty" validate:"required"`
	EndDate   string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Completed bool   `json:"completed,omitempty"`
}

func (d MeetingDuty) ItemID() string     { return d.ID }
func (d MeetingDuty) ItemDate() string   { return d.Date }
func (d MeetingDuty) ReminderAt() string { return d.Reminder }

// ServiceEntry records time and production for one calendar day. The id is
// the date itself, so at most one entry exists per day.
type ServiceEntry struct {
	ID           string  `json:"id"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours        float64 `json:"hours" validate:"gte=0"`
	Placements   int     `json:"placements,omitempty" validate:"gte=0"`
	Videos       int     `json:"videos,omitempty" validate:"gte=0"`
	ReturnVisits int     `json:"returnVisits,omitempty" validate:"gte=0"`
}

// FiredMarker records that an item's reminder has already produced a
// notification. Markers are keyed by the (id, reminder) pair so that editing
// an item's reminder to a new timestamp re-arms it.
type FiredMarker struct {
	ID       string `json:"id"`
	Reminder string `json:"reminder"`
}

// MarkerFor builds the fired marker for an item's current reminder.
func MarkerFor(item Schedulable) FiredMarker {
	return FiredMarker{ID: item.ItemID(), Reminder: item.ReminderAt()}
}

// ParseReminder parses a reminder timestamp in the item's local time. Both
// minute and second precision are accepted.
func ParseReminder(s string) (time.Time, error) {
	for _, layout := range []string{ReminderLayout, "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid reminder timestamp %q", s)
}
