package db

import "fmt"

const (
	// DefaultAppTitle mirrors the title shown before the user customizes it.
	DefaultAppTitle = "Asistente del Ministerio"
	// DefaultMonthlyGoal is the starting hours goal for the service log.
	DefaultMonthlyGoal = 50
)

// AppTitle returns the configured application title.
func (db *DB) AppTitle() (string, error) {
	title := DefaultAppTitle
	if _, err := db.kv.Read(KeyAppTitle, &title); err != nil {
		return "", err
	}
	return title, nil
}

// SetAppTitle stores the application title.
func (db *DB) SetAppTitle(title string) error {
	return db.kv.Write(KeyAppTitle, title)
}

// MonthlyGoal returns the monthly hours goal.
func (db *DB) MonthlyGoal() (int, error) {
	goal := DefaultMonthlyGoal
	if _, err := db.kv.Read(KeyMonthlyGoal, &goal); err != nil {
		return 0, err
	}
	return goal, nil
}

// SetMonthlyGoal stores the monthly hours goal. The goal must be at least 1.
func (db *DB) SetMonthlyGoal(goal int) error {
	if goal < 1 {
		return fmt.Errorf("monthly goal must be at least 1, got %d", goal)
	}
	return db.kv.Write(KeyMonthlyGoal, goal)
}

// DarkMode returns the persisted theme flag.
func (db *DB) DarkMode() (bool, error) {
	var dark bool
	if _, err := db.kv.Read(KeyDarkMode, &dark); err != nil {
		return false, err
	}
	return dark, nil
}

// SetDarkMode stores the theme flag.
func (db *DB) SetDarkMode(dark bool) error {
	return db.kv.Write(KeyDarkMode, dark)
}
