package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

// SnapshotKey is the fixed key the whole aggregate is stored under.
const SnapshotKey = "lifeos_state"

// DefaultDBPath returns the default LifeOS DB location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".lifeos.db"), nil
}

// ResolveDBPath honors the LIFEOS_DB override, falling back to the default.
func ResolveDBPath() (string, error) {
	if p := os.Getenv("LIFEOS_DB"); p != "" {
		return p, nil
	}
	return DefaultDBPath()
}

// Open opens (and creates if missing) the SQLite database at the provided
// path and applies the schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshot (
			key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Store owns the persisted snapshot of the aggregate state.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

func New(db *sql.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{db: db, log: log}
}

// Load reads the persisted snapshot and merges it over the built-in defaults.
// An absent key is a valid first-run state. A snapshot that fails to decode
// is treated the same way: defaults win, nothing is fatal.
func (s *Store) Load(ctx context.Context) (domain.AppState, error) {
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshot WHERE key = ?`, SnapshotKey)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultState(), nil
		}
		return domain.AppState{}, fmt.Errorf("snapshot load: %w", err)
	}

	state, err := mergeSnapshot([]byte(payload))
	if err != nil {
		s.log.Warn("discarding unreadable snapshot", "err", err)
		return domain.DefaultState(), nil
	}
	return state, nil
}

// Save writes the full aggregate after a mutation. Persistence is
// best-effort: failures are logged and swallowed so a broken disk never
// blocks a domain operation.
func (s *Store) Save(ctx context.Context, state domain.AppState) {
	payload, err := json.Marshal(snapshotEnvelope{Version: snapshotVersion, AppState: state})
	if err != nil {
		s.log.Warn("snapshot encode failed", "err", err)
		return
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshot (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, SnapshotKey, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		s.log.Warn("snapshot save failed", "err", err)
	}
}
