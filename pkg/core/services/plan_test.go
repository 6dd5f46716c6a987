package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"minassist/internal/config"
	"minassist/pkg/core/model"
	"minassist/pkg/db"
	"minassist/pkg/kvstore"
)

func saturdayArrangement() config.Arrangement {
	return config.Arrangement{
		Name:         "predicacion-sabado",
		RRule:        "FREQ=WEEKLY;BYDAY=SA",
		Territory:    "12-B",
		Leader:       "Carlos",
		Shift:        model.ShiftMorning,
		ReminderTime: "08:30",
	}
}

func TestPlanActivities_ExpandsWeeklyRule(t *testing.T) {
	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 31, 23, 59, 59, 0, time.UTC)

	proposals, err := PlanActivities(saturdayArrangement(), from, to)
	require.NoError(t, err)

	// Saturdays in July 2024: 6, 13, 20, 27.
	require.Len(t, proposals, 4)
	assert.Equal(t, "2024-07-06", proposals[0].Date)
	assert.Equal(t, "2024-07-27", proposals[3].Date)

	for _, p := range proposals {
		assert.Empty(t, p.ID, "proposals carry no id until added")
		assert.Equal(t, "12-B", p.Territory)
		assert.Equal(t, model.ShiftMorning, p.Shift)
		assert.Equal(t, p.Date+"T08:30", p.Reminder)
	}
}

func TestPlanActivities_NoReminderTimeMeansNoReminder(t *testing.T) {
	arrangement := saturdayArrangement()
	arrangement.ReminderTime = ""

	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC)

	proposals, err := PlanActivities(arrangement, from, to)
	require.NoError(t, err)
	require.NotEmpty(t, proposals)
	assert.Empty(t, proposals[0].Reminder)
}

func TestPlanActivities_InvalidRule(t *testing.T) {
	arrangement := saturdayArrangement()
	arrangement.RRule = "FREQ=SOMETIMES"

	_, err := PlanActivities(arrangement, time.Now(), time.Now().AddDate(0, 1, 0))
	assert.Error(t, err)
}

func TestImportProposals_AppendsThroughAddContract(t *testing.T) {
	database := db.NewDB(kvstore.NewMemory(), zap.NewNop())

	proposals := []model.MinistryActivity{
		{Date: "2099-07-06", Territory: "12-B", Leader: "Carlos", Shift: model.ShiftMorning},
		{Date: "2099-07-13", Territory: "14-A", Leader: "Miguel", Shift: model.ShiftAfternoon},
		{Date: "2099-07-20"}, // missing required fields
	}

	added, skipped := ImportProposals(database, proposals, zap.NewNop())
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, skipped)

	items, err := database.ListActivities()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.NotEmpty(t, items[0].ID)
	assert.NotEmpty(t, items[1].ID)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}
