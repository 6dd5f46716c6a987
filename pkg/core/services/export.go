package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"minassist/pkg/core/model"
)

// Bundle is the export document: every collection and setting under its slot
// name, plus the export timestamp. A full export carries every collection
// key, empty ones included, so a restore replaces them wholesale. On import,
// only the keys present in the document are replaced; nil fields are left
// untouched.
type Bundle struct {
	MinistryActivities []model.MinistryActivity `json:"ministryActivities"`
	SchoolAssignments  []model.SchoolAssignment `json:"schoolAssignments"`
	MeetingDuties      []model.MeetingDuty      `json:"meetingDuties"`
	ServiceEntries     []model.ServiceEntry     `json:"serviceEntries"`
	FiredReminders     []model.FiredMarker      `json:"firedReminders"`
	AppTitle           *string                  `json:"appTitle,omitempty"`
	MonthlyGoal        *int                     `json:"monthlyGoal,omitempty"`
	DarkMode           *bool                    `json:"isDarkMode,omitempty"`
	ExportDate         string                   `json:"exportDate"`
}

// BundleStore defines the database operations export and import need.
type BundleStore interface {
	SweepStore
	ListServiceEntries() ([]model.ServiceEntry, error)
	WriteActivities(items []model.MinistryActivity) error
	WriteAssignments(items []model.SchoolAssignment) error
	WriteDuties(items []model.MeetingDuty) error
	WriteServiceEntries(entries []model.ServiceEntry) error
	AppTitle() (string, error)
	SetAppTitle(title string) error
	MonthlyGoal() (int, error)
	SetMonthlyGoal(goal int) error
	DarkMode() (bool, error)
	SetDarkMode(dark bool) error
}

// Export gathers every collection and setting into a bundle.
func Export(store BundleStore, logger *zap.Logger) (Bundle, error) {
	var bundle Bundle
	var err error

	if bundle.MinistryActivities, err = store.ListActivities(); err != nil {
		return Bundle{}, err
	}
	if bundle.SchoolAssignments, err = store.ListAssignments(); err != nil {
		return Bundle{}, err
	}
	if bundle.MeetingDuties, err = store.ListDuties(); err != nil {
		return Bundle{}, err
	}
	if bundle.ServiceEntries, err = store.ListServiceEntries(); err != nil {
		return Bundle{}, err
	}
	if bundle.FiredReminders, err = store.FiredMarkers(); err != nil {
		return Bundle{}, err
	}

	title, err := store.AppTitle()
	if err != nil {
		return Bundle{}, err
	}
	bundle.AppTitle = &title

	goal, err := store.MonthlyGoal()
	if err != nil {
		return Bundle{}, err
	}
	bundle.MonthlyGoal = &goal

	dark, err := store.DarkMode()
	if err != nil {
		return Bundle{}, err
	}
	bundle.DarkMode = &dark

	bundle.ExportDate = time.Now().Format(time.RFC3339)

	logger.Debug("Export bundle built",
		zap.Int("activities", len(bundle.MinistryActivities)),
		zap.Int("assignments", len(bundle.SchoolAssignments)),
		zap.Int("duties", len(bundle.MeetingDuties)),
		zap.Int("service_entries", len(bundle.ServiceEntries)))

	return bundle, nil
}

// Import replaces each collection or setting for which the bundle carries a
// value. Partial documents are allowed; missing keys leave the stored data
// untouched. After the replacements, fired markers are reconciled against the
// new collections.
func Import(store BundleStore, bundle Bundle, logger *zap.Logger) error {
	if bundle.MinistryActivities != nil {
		if err := store.WriteActivities(bundle.MinistryActivities); err != nil {
			return fmt.Errorf("failed to import ministry activities: %w", err)
		}
	}
	if bundle.SchoolAssignments != nil {
		if err := store.WriteAssignments(bundle.SchoolAssignments); err != nil {
			return fmt.Errorf("failed to import school assignments: %w", err)
		}
	}
	if bundle.MeetingDuties != nil {
		if err := store.WriteDuties(bundle.MeetingDuties); err != nil {
			return fmt.Errorf("failed to import meeting duties: %w", err)
		}
	}
	if bundle.ServiceEntries != nil {
		if err := store.WriteServiceEntries(bundle.ServiceEntries); err != nil {
			return fmt.Errorf("failed to import service entries: %w", err)
		}
	}
	if bundle.FiredReminders != nil {
		if err := store.WriteFiredMarkers(bundle.FiredReminders); err != nil {
			return fmt.Errorf("failed to import fired reminders: %w", err)
		}
	}
	if bundle.AppTitle != nil {
		if err := store.SetAppTitle(*bundle.AppTitle); err != nil {
			return fmt.Errorf("failed to import app title: %w", err)
		}
	}
	if bundle.MonthlyGoal != nil {
		if err := store.SetMonthlyGoal(*bundle.MonthlyGoal); err != nil {
			return fmt.Errorf("failed to import monthly goal: %w", err)
		}
	}
	if bundle.DarkMode != nil {
		if err := store.SetDarkMode(*bundle.DarkMode); err != nil {
			return fmt.Errorf("failed to import dark mode flag: %w", err)
		}
	}

	// Imported fired markers may reference items the imported collections no
	// longer contain.
	if _, err := Reconcile(store, logger); err != nil {
		return fmt.Errorf("post-import reconciliation failed: %w", err)
	}

	logger.Info("Import completed", zap.String("export_date", bundle.ExportDate))
	return nil
}
