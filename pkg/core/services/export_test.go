package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"minassist/pkg/core/model"
	"minassist/pkg/db"
	"minassist/pkg/kvstore"
)

func seededDB(t *testing.T) *db.DB {
	t.Helper()
	database := db.NewDB(kvstore.NewMemory(), zap.NewNop())

	require.NoError(t, database.WriteActivities([]model.MinistryActivity{morningActivity()}))
	require.NoError(t, database.WriteAssignments([]model.SchoolAssignment{{
		ID: "asg-1", Date: "2024-07-18", Student: "Ana", Assignment: "Lectura de la Biblia",
	}}))
	require.NoError(t, database.WriteDuties([]model.MeetingDuty{{
		ID: "duty-1", Date: "2024-07-21", Person: "Pedro", Duty: "Acomodador", Completed: true,
	}}))
	require.NoError(t, database.WriteServiceEntries([]model.ServiceEntry{{
		ID: "2024-07-01", Date: "2024-07-01", Hours: 2.5, Placements: 3,
	}}))
	require.NoError(t, database.WriteFiredMarkers([]model.FiredMarker{
		{ID: "act-1", Reminder: "2024-07-15T09:00"},
	}))
	require.NoError(t, database.SetAppTitle("Mi Ministerio"))
	require.NoError(t, database.SetMonthlyGoal(70))
	require.NoError(t, database.SetDarkMode(true))

	return database
}

func TestExportImport_RoundTrip(t *testing.T) {
	logger := zap.NewNop()
	source := seededDB(t)

	bundle, err := Export(source, logger)
	require.NoError(t, err)
	assert.NotEmpty(t, bundle.ExportDate)

	// Through JSON, like a real backup file.
	raw, err := json.Marshal(bundle)
	require.NoError(t, err)
	var decoded Bundle
	require.NoError(t, json.Unmarshal(raw, &decoded))

	target := db.NewDB(kvstore.NewMemory(), logger)
	require.NoError(t, Import(target, decoded, logger))

	gotBundle, err := Export(target, logger)
	require.NoError(t, err)

	assert.Equal(t, bundle.MinistryActivities, gotBundle.MinistryActivities)
	assert.Equal(t, bundle.SchoolAssignments, gotBundle.SchoolAssignments)
	assert.Equal(t, bundle.MeetingDuties, gotBundle.MeetingDuties)
	assert.Equal(t, bundle.ServiceEntries, gotBundle.ServiceEntries)
	assert.Equal(t, bundle.FiredReminders, gotBundle.FiredReminders)
	assert.Equal(t, *bundle.AppTitle, *gotBundle.AppTitle)
	assert.Equal(t, *bundle.MonthlyGoal, *gotBundle.MonthlyGoal)
	assert.Equal(t, *bundle.DarkMode, *gotBundle.DarkMode)
}

func TestExportImport_EmptyCollectionsReplaceOnRestore(t *testing.T) {
	logger := zap.NewNop()

	// The source holds one activity and nothing else.
	source := db.NewDB(kvstore.NewMemory(), logger)
	require.NoError(t, source.WriteActivities([]model.MinistryActivity{morningActivity()}))

	bundle, err := Export(source, logger)
	require.NoError(t, err)

	raw, err := json.Marshal(bundle)
	require.NoError(t, err)
	for _, key := range []string{"ministryActivities", "schoolAssignments", "meetingDuties", "serviceEntries", "firedReminders"} {
		assert.Contains(t, string(raw), `"`+key+`"`, "a full export carries every collection key, empty ones included")
	}

	var decoded Bundle
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Restoring over a populated store must wipe what the backup holds empty.
	target := seededDB(t)
	require.NoError(t, Import(target, decoded, logger))

	duties, err := target.ListDuties()
	require.NoError(t, err)
	assert.Empty(t, duties)

	entries, err := target.ListServiceEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)

	activities, err := target.ListActivities()
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestImport_PartialDocumentLeavesOtherSlotsUntouched(t *testing.T) {
	logger := zap.NewNop()
	database := seededDB(t)

	goal := 90
	partial := Bundle{MonthlyGoal: &goal}
	require.NoError(t, Import(database, partial, logger))

	gotGoal, err := database.MonthlyGoal()
	require.NoError(t, err)
	assert.Equal(t, 90, gotGoal)

	activities, err := database.ListActivities()
	require.NoError(t, err)
	assert.Len(t, activities, 1, "collections absent from the document stay as they were")

	title, err := database.AppTitle()
	require.NoError(t, err)
	assert.Equal(t, "Mi Ministerio", title)
}

func TestImport_ReconcilesStaleFiredMarkers(t *testing.T) {
	logger := zap.NewNop()
	database := db.NewDB(kvstore.NewMemory(), logger)

	// The bundle claims a fired reminder for an item it does not contain.
	bundle := Bundle{
		MinistryActivities: []model.MinistryActivity{},
		FiredReminders:     []model.FiredMarker{{ID: "ghost", Reminder: "2024-07-15T09:00"}},
	}
	require.NoError(t, Import(database, bundle, logger))

	markers, err := database.FiredMarkers()
	require.NoError(t, err)
	assert.Empty(t, markers)
}

func TestImport_EmptyCollectionReplacesWholesale(t *testing.T) {
	logger := zap.NewNop()
	database := seededDB(t)

	// An explicitly empty array wipes the collection; a missing key would not.
	var bundle Bundle
	require.NoError(t, json.Unmarshal([]byte(`{"meetingDuties": []}`), &bundle))
	require.NoError(t, Import(database, bundle, logger))

	duties, err := database.ListDuties()
	require.NoError(t, err)
	assert.Empty(t, duties)

	activities, err := database.ListActivities()
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}
