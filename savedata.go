package mintcrate

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SaveStore persists string key/value save data between sessions.
// Get returns ok=false when the key has never been set.
type SaveStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// SaveFile is a SaveStore backed by a SQLite database file.
type SaveFile struct {
	db *sql.DB
}

// OpenSaveFile creates or opens a save database at the given path,
// creating parent directories as needed.
func OpenSaveFile(path string) (*SaveFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mintcrate: save: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("mintcrate: save: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("mintcrate: save: cannot connect to database: %w", err)
	}

	s := &SaveFile{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("mintcrate: save: migration failed: %w", err)
	}
	return s, nil
}

func (s *SaveFile) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS save_data (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Get returns the stored value for key, with ok=false when absent.
func (s *SaveFile) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM save_data WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("mintcrate: save: get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SaveFile) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO save_data (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("mintcrate: save: set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *SaveFile) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM save_data WHERE key = ?`, key); err != nil {
		return fmt.Errorf("mintcrate: save: delete %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SaveFile) Close() error {
	return s.db.Close()
}
