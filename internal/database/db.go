package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite handle.
type Database struct {
	DB *sql.DB
}

// Open connects to the sqlite file at path and ensures the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	dsn := path + "?_busy_timeout=5000&_foreign_keys=on"
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite serializes writers; a single connection avoids SQLITE_BUSY churn.
	conn.SetMaxOpenConns(1)

	d := &Database{DB: conn}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, classifyOpenErr(err)
	}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, classifyOpenErr(err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			goal TEXT NOT NULL DEFAULT '',
			focus_seconds INTEGER NOT NULL DEFAULT 0,
			completed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

func (d *Database) migrate(ctx context.Context) error {
	migrations := []string{
		"ALTER TABLE sessions ADD COLUMN duration_seconds INTEGER NOT NULL DEFAULT 0",
		"CREATE INDEX IF NOT EXISTS idx_sessions_completed_at ON sessions(completed_at)",
	}
	for _, stmt := range migrations {
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil && !isIgnorableMigrationErr(err) {
			return fmt.Errorf("migrate %q: %w", stmt, err)
		}
	}
	return nil
}

func isIgnorableMigrationErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}

func classifyOpenErr(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "file is not a database") || strings.Contains(msg, "malformed") {
		return fmt.Errorf("%w: %v", ErrDatabaseCorrupted, err)
	}
	return err
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		log.Printf("rollback failed: %v", rbErr)
	}
	return err
}
