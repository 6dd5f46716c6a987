package kvstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS slots (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLite is a Store backed by a local SQLite database with one row per slot.
// Reads always hit the database so a second process writing the same file is
// observed on the next read.
type SQLite struct {
	db     *sql.DB
	logger *zap.Logger

	mu          sync.Mutex
	subscribers []func(key string)
}

// Open creates or opens the slot database at the given path, creating parent
// directories as needed. Safe to call multiple times on the same path.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
func Open(path string, logger *zap.Logger) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLite{db: db, logger: logger}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Read implements Store. A missing row or unparseable value yields
// (false, nil) so the caller falls back to its default.
func (s *SQLite) Read(key string, out any) (bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read slot %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Warn("Stored value is malformed, treating as absent",
			zap.String("key", key),
			zap.Error(err))
		return false, nil
	}

	return true, nil
}

// Write implements Store. The value is serialized to JSON and upserted;
// subscribers are notified after the row is durable.
func (s *SQLite) Write(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value for slot %q: %w", key, err)
	}

	s.mu.Lock()
	_, err = s.db.Exec(
		"INSERT INTO slots (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw))
	subs := make([]func(string), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}

	for _, fn := range subs {
		fn(key)
	}

	return nil
}

// Subscribe implements Store.
func (s *SQLite) Subscribe(fn func(key string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
