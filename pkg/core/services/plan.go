package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"minassist/internal/config"
	"minassist/pkg/core/model"
)

// PlanActivities expands a recurring arrangement into proposed ministry
// activities for every occurrence in [from, to]. The proposals carry no id;
// appending them through the normal add contract assigns one.
func PlanActivities(arrangement config.Arrangement, from, to time.Time) ([]model.MinistryActivity, error) {
	rule, err := rrule.StrToRRule(arrangement.RRule)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule for arrangement %q: %w", arrangement.Name, err)
	}
	rule.DTStart(from)

	occurrences := rule.Between(from, to, true)

	proposals := make([]model.MinistryActivity, 0, len(occurrences))
	for _, occurrence := range occurrences {
		activity := model.MinistryActivity{
			Date:        occurrence.Format(model.DateLayout),
			Territory:   arrangement.Territory,
			Leader:      arrangement.Leader,
			Shift:       arrangement.Shift,
			Description: arrangement.Description,
		}
		if arrangement.ReminderTime != "" {
			activity.Reminder = activity.Date + "T" + arrangement.ReminderTime
		}
		proposals = append(proposals, activity)
	}

	return proposals, nil
}

// ActivityAdder is the single-operation contract proposal import appends
// through.
type ActivityAdder interface {
	AddActivity(activity model.MinistryActivity) (model.MinistryActivity, error)
}

// ImportProposals appends externally produced activity proposals (from the
// planner or a proposals file) through the normal add contract. Invalid
// proposals are skipped and reported; the rest still land.
func ImportProposals(store ActivityAdder, proposals []model.MinistryActivity, logger *zap.Logger) (added int, skipped int) {
	for _, proposal := range proposals {
		proposal.ID = ""
		if _, err := store.AddActivity(proposal); err != nil {
			logger.Warn("Skipping invalid activity proposal",
				zap.String("date", proposal.Date),
				zap.String("territory", proposal.Territory),
				zap.Error(err))
			skipped++
			continue
		}
		added++
	}

	if added > 0 {
		logger.Info("Activity proposals imported",
			zap.Int("added", added),
			zap.Int("skipped", skipped))
	}
	return added, skipped
}
