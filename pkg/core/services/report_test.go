package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minassist/pkg/core/model"
)

func TestBuildMonthlyReport_TotalsOneMonthOnly(t *testing.T) {
	entries := []model.ServiceEntry{
		{ID: "2024-07-01", Date: "2024-07-01", Hours: 2, Placements: 1},
		{ID: "2024-07-15", Date: "2024-07-15", Hours: 3.5, Videos: 2, ReturnVisits: 1},
		{ID: "2024-06-30", Date: "2024-06-30", Hours: 4},
	}

	report, err := BuildMonthlyReport(entries, "2024-07", 50)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Days)
	assert.Equal(t, 5.5, report.Hours)
	assert.Equal(t, 1, report.Placements)
	assert.Equal(t, 2, report.Videos)
	assert.Equal(t, 1, report.ReturnVisits)
	assert.Equal(t, 44.5, report.Remaining)
	assert.False(t, report.GoalMet())
}

func TestBuildMonthlyReport_GoalMetClampsRemaining(t *testing.T) {
	entries := []model.ServiceEntry{
		{ID: "2024-07-01", Date: "2024-07-01", Hours: 6},
	}

	report, err := BuildMonthlyReport(entries, "2024-07", 5)
	require.NoError(t, err)

	assert.True(t, report.GoalMet())
	assert.Zero(t, report.Remaining)
}

func TestBuildMonthlyReport_RejectsBadMonth(t *testing.T) {
	_, err := BuildMonthlyReport(nil, "July 2024", 50)
	assert.Error(t, err)
}
