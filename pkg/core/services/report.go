package services

import (
	"fmt"
	"strings"
	"time"

	"minassist/pkg/core/model"
)

// MonthLayout identifies a report month, e.g. "2024-07".
const MonthLayout = "2006-01"

// MonthlyReport summarizes the service log for one month against the hours
// goal.
type MonthlyReport struct {
	Month        string
	Days         int
	Hours        float64
	Placements   int
	Videos       int
	ReturnVisits int
	Goal         int
	Remaining    float64
}

// GoalMet reports whether the logged hours reach the monthly goal.
func (r MonthlyReport) GoalMet() bool {
	return r.Hours >= float64(r.Goal)
}

// BuildMonthlyReport totals the entries belonging to the given month.
func BuildMonthlyReport(entries []model.ServiceEntry, month string, goal int) (MonthlyReport, error) {
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return MonthlyReport{}, fmt.Errorf("invalid month %q, want YYYY-MM: %w", month, err)
	}

	report := MonthlyReport{Month: month, Goal: goal}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Date, month+"-") {
			continue
		}
		report.Days++
		report.Hours += entry.Hours
		report.Placements += entry.Placements
		report.Videos += entry.Videos
		report.ReturnVisits += entry.ReturnVisits
	}

	report.Remaining = float64(report.Goal) - report.Hours
	if report.Remaining < 0 {
		report.Remaining = 0
	}

	return report, nil
}
