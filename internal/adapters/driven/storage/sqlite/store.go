package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driven"
)

// Storage keys, one per persisted collection.
const (
	keyHistory      = "history"
	keyFavorites    = "favorites"
	keyShoppingList = "shopping-list"
	keyAllergies    = "allergies"
	keyTheme        = "theme"
)

// Ensure Store implements the interface.
var _ driven.StateStore = (*Store)(nil)

// Store is the SQLite-backed StateStore. Collections are stored as
// JSON documents keyed by collection name.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.reshipi/data/state.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".reshipi", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "state.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// getJSON loads one collection document into v. Returns false when the
// key has never been written.
func (s *Store) getJSON(ctx context.Context, key string, v any) (bool, error) {
	var raw string
	row := s.db.QueryRowContext(ctx, "SELECT value FROM app_state WHERE key = ?", key)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// setJSON writes one collection document.
func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// LoadHistory returns all stored history items in append order.
func (s *Store) LoadHistory(ctx context.Context) ([]*domain.HistoryItem, error) {
	var history []*domain.HistoryItem
	if _, err := s.getJSON(ctx, keyHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// SaveHistory replaces the stored history wholesale.
func (s *Store) SaveHistory(ctx context.Context, history []*domain.HistoryItem) error {
	return s.setJSON(ctx, keyHistory, history)
}

// LoadFavorites returns the stored favorite set, or nil if never saved.
func (s *Store) LoadFavorites(ctx context.Context) (domain.Favorites, error) {
	var favorites domain.Favorites
	found, err := s.getJSON(ctx, keyFavorites, &favorites)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return favorites, nil
}

// SaveFavorites replaces the stored favorite set.
func (s *Store) SaveFavorites(ctx context.Context, favorites domain.Favorites) error {
	return s.setJSON(ctx, keyFavorites, favorites)
}

// LoadShoppingList returns the stored shopping list, or nil if never saved.
func (s *Store) LoadShoppingList(ctx context.Context) (*domain.ShoppingList, error) {
	var entries []domain.ShoppingEntry
	found, err := s.getJSON(ctx, keyShoppingList, &entries)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return domain.NewShoppingList(entries), nil
}

// SaveShoppingList replaces the stored shopping list.
func (s *Store) SaveShoppingList(ctx context.Context, list *domain.ShoppingList) error {
	return s.setJSON(ctx, keyShoppingList, list.Entries())
}

// LoadAllergies returns the stored allergy preference text.
func (s *Store) LoadAllergies(ctx context.Context) (string, error) {
	var value string
	if _, err := s.getJSON(ctx, keyAllergies, &value); err != nil {
		return "", err
	}
	return value, nil
}

// SaveAllergies replaces the stored allergy preference text.
func (s *Store) SaveAllergies(ctx context.Context, value string) error {
	return s.setJSON(ctx, keyAllergies, value)
}

// LoadTheme returns the stored theme preference.
func (s *Store) LoadTheme(ctx context.Context) (domain.Theme, error) {
	var theme domain.Theme
	if _, err := s.getJSON(ctx, keyTheme, &theme); err != nil {
		return "", err
	}
	return theme, nil
}

// SaveTheme replaces the stored theme preference.
func (s *Store) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return s.setJSON(ctx, keyTheme, theme)
}
