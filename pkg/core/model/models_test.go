package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReminder_MinutePrecision(t *testing.T) {
	ts, err := ParseReminder("2024-07-15T09:00")
	require.NoError(t, err)

	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.July, ts.Month())
	assert.Equal(t, 15, ts.Day())
	assert.Equal(t, 9, ts.Hour())
	assert.Equal(t, 0, ts.Minute())
}

func TestParseReminder_SecondPrecision(t *testing.T) {
	ts, err := ParseReminder("2024-07-15T09:00:30")
	require.NoError(t, err)
	assert.Equal(t, 30, ts.Second())
}

func TestParseReminder_Invalid(t *testing.T) {
	_, err := ParseReminder("tomorrow at nine")
	assert.Error(t, err)
}

func TestMarkerFor_CarriesReminderTimestamp(t *testing.T) {
	activity := MinistryActivity{
		ID:       "act-1",
		Date:     "2024-07-15",
		Reminder: "2024-07-15T09:00",
	}

	marker := MarkerFor(activity)
	assert.Equal(t, FiredMarker{ID: "act-1", Reminder: "2024-07-15T09:00"}, marker)
}

func TestSchedulable_Implementations(t *testing.T) {
	items := []Schedulable{
		MinistryActivity{ID: "a", Date: "2024-07-15", Reminder: "2024-07-15T09:00"},
		SchoolAssignment{ID: "b", Date: "2024-07-16"},
		MeetingDuty{ID: "c", Date: "2024-07-17", Reminder: "2024-07-17T18:00"},
	}

	assert.Equal(t, "a", items[0].ItemID())
	assert.Equal(t, "2024-07-16", items[1].ItemDate())
	assert.Equal(t, "", items[1].ReminderAt())
	assert.Equal(t, "2024-07-17T18:00", items[2].ReminderAt())
}
