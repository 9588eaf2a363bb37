package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handles and provides access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer, one connection: pragmas stick and in-memory databases
	// survive for the life of the store.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		drv.Close()
		return nil, err
	}

	return &Store{db: db, drv: drv, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{drv: s.drv, seq: s.seq}
}

// SnapshotRepo returns a SnapshotRepo backed by this store.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{drv: s.drv}
}

// Reset deletes every recorded journey and reward. Saved settings are
// deleted too when withSettings is set. It runs in one transaction.
func (s *Store) Reset(ctx context.Context, withSettings bool) error {
	names := []string{sessionEventsTable.Name, rewardEventsTable.Name}
	if withSettings {
		names = append(names, snapshotsTable.Name)
	}

	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	for _, name := range names {
		q, args := builder().Delete(name).Query()
		if err := tx.Exec(ctx, q, args, nil); err != nil {
			tx.Rollback()
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

// builder returns the SQL builder for the store's dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MEDHA_DB environment variable
// 2. $XDG_DATA_HOME/medha/medha.db
// 3. ~/.local/share/medha/medha.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MEDHA_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "medha", "medha.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
