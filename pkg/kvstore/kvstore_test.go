package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSQLite_CreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "minassist.db")

	s, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file should exist")
}

func TestSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minassist.db")

	s, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write("monthlyGoal", 50))

	var goal int
	ok, err := s.Read("monthlyGoal", &goal)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 50, goal)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minassist.db")

	s1, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s1.Write("appTitle", "Asistente del Ministerio"))
	require.NoError(t, s1.Close())

	s2, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer s2.Close()

	var title string
	ok, err := s2.Read("appTitle", &title)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Asistente del Ministerio", title)
}

func TestSQLite_AbsentKeyLeavesDefault(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "minassist.db"), zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	goal := 50
	ok, err := s.Read("monthlyGoal", &goal)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 50, goal, "caller default should be untouched")
}

func TestSQLite_MalformedValueTreatedAsAbsent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "minassist.db"), zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	// Corrupt the slot behind the store's back.
	_, err = s.db.Exec("INSERT INTO slots (key, value) VALUES (?, ?)", "monthlyGoal", "{not json")
	require.NoError(t, err)

	var goal int
	ok, err := s.Read("monthlyGoal", &goal)
	require.NoError(t, err, "corruption must not surface as an error")
	assert.False(t, ok)
}

func TestSQLite_LastWriteWins(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "minassist.db"), zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write("monthlyGoal", 50))
	require.NoError(t, s.Write("monthlyGoal", 70))

	var goal int
	ok, err := s.Read("monthlyGoal", &goal)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 70, goal)
}

func TestSQLite_SubscribersNotifiedOnWrite(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "minassist.db"), zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	var seen []string
	s.Subscribe(func(key string) {
		seen = append(seen, key)
	})

	require.NoError(t, s.Write("serviceEntries", []string{}))
	require.NoError(t, s.Write("monthlyGoal", 60))

	assert.Equal(t, []string{"serviceEntries", "monthlyGoal"}, seen)
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Write("appTitle", "title"))

	var title string
	ok, err := m.Read("appTitle", &title)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "title", title)
}

func TestMemory_ReadReturnsIndependentCopy(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Write("ids", []string{"a", "b"}))

	var first []string
	_, err := m.Read("ids", &first)
	require.NoError(t, err)
	first[0] = "mutated"

	var second []string
	_, err = m.Read("ids", &second)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, second)
}

func TestMemory_SubscribersNotified(t *testing.T) {
	m := NewMemory()

	count := 0
	m.Subscribe(func(key string) { count++ })

	require.NoError(t, m.Write("a", 1))
	require.NoError(t, m.Write("b", 2))

	assert.Equal(t, 2, count)
}
