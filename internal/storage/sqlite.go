// Package storage provides SQLite-based persistence for profiles, the
// leaderboard, and UI flags. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
//
// The schema is a single key-value table with JSON values. Corrupt or
// missing values are never surfaced as errors: the typed loaders fall
// back to defaults so a damaged database costs saved data, not a crash.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/typefall/internal/progression"
	"github.com/vovakirdan/typefall/internal/ranking"
)

// Well-known keys.
const (
	KeyProfiles      = "profiles"
	KeyActiveProfile = "active_profile"
	KeyTheme         = "theme"
	KeyRanking       = "ranking"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the raw value for a key. Missing keys return (nil, nil).
func (s *Store) Get(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read key %q: %w", key, err)
	}
	return []byte(value), nil
}

// Put writes the value for a key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write key %q: %w", key, err)
	}
	return nil
}

// putJSON marshals and stores a value under a key.
func (s *Store) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: cannot encode key %q: %w", key, err)
	}
	return s.Put(key, data)
}

// LoadProfiles returns the persisted profiles and active profile id.
// Missing or corrupt data yields (nil, ""), which the progression manager
// turns into a single default profile.
func (s *Store) LoadProfiles() ([]*progression.UserProfile, string) {
	var profiles []*progression.UserProfile
	if data, err := s.Get(KeyProfiles); err == nil && len(data) > 0 {
		if err := json.Unmarshal(data, &profiles); err != nil {
			profiles = nil
		}
	}

	activeID := ""
	if data, err := s.Get(KeyActiveProfile); err == nil && len(data) > 0 {
		var id string
		if err := json.Unmarshal(data, &id); err == nil {
			activeID = id
		}
	}

	return profiles, activeID
}

// SaveProfiles persists the profile list and active profile id.
func (s *Store) SaveProfiles(profiles []*progression.UserProfile, activeID string) error {
	if err := s.putJSON(KeyProfiles, profiles); err != nil {
		return err
	}
	return s.putJSON(KeyActiveProfile, activeID)
}

// LoadRanking returns the persisted leaderboard entries.
// Missing or corrupt data yields an empty list.
func (s *Store) LoadRanking() []ranking.Entry {
	var entries []ranking.Entry
	if data, err := s.Get(KeyRanking); err == nil && len(data) > 0 {
		if err := json.Unmarshal(data, &entries); err != nil {
			entries = nil
		}
	}
	return entries
}

// SaveRanking persists the leaderboard entries.
func (s *Store) SaveRanking(entries []ranking.Entry) error {
	return s.putJSON(KeyRanking, entries)
}

// LoadTheme returns the persisted theme name, defaulting to "dark".
func (s *Store) LoadTheme() string {
	if data, err := s.Get(KeyTheme); err == nil && len(data) > 0 {
		var theme string
		if err := json.Unmarshal(data, &theme); err == nil && theme == "light" {
			return "light"
		}
	}
	return "dark"
}

// SaveTheme persists the theme name.
func (s *Store) SaveTheme(theme string) error {
	return s.putJSON(KeyTheme, theme)
}
