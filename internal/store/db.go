package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"go-context-registry/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// DB persists the registry state in SQLite: one immutable row per schema
// version, an append-only version log, and a single active pointer row.
// Every mutation commits in one transaction, so a crash leaves either the
// fully-old or the fully-new state.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the registry database and its tables
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	schemaTable := `
	CREATE TABLE IF NOT EXISTS schemas (
		version TEXT PRIMARY KEY,
		body TEXT NOT NULL,
		changelog TEXT,
		registered_at DATETIME NOT NULL
	);
	`
	logTable := `
	CREATE TABLE IF NOT EXISTS version_log (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		version TEXT NOT NULL,
		changelog TEXT,
		created_at DATETIME NOT NULL
	);
	`
	pointerTable := `
	CREATE TABLE IF NOT EXISTS active_pointer (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		version TEXT NOT NULL
	);
	`

	for _, stmt := range []string{schemaTable, logTable, pointerTable} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &DB{db: db}, nil
}

// Close closes the underlying database
func (s *DB) Close() error {
	return s.db.Close()
}

// SaveRegistration stores a new schema version, its log entry and the
// advanced active pointer in one transaction.
func (s *DB) SaveRegistration(sv model.SchemaVersion, entry model.VersionLogEntry) error {
	bodyJSON, err := json.Marshal(sv.Body)
	if err != nil {
		return fmt.Errorf("marshal schema body: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO schemas (version, body, changelog, registered_at) VALUES (?, ?, ?, ?)`,
		sv.Version, string(bodyJSON), sv.Changelog, sv.RegisteredAt,
	); err != nil {
		return err
	}
	if err := insertLogEntry(tx, entry); err != nil {
		return err
	}
	if err := setActive(tx, sv.Version); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveRollback stores a pointer-move log entry and the moved pointer in
// one transaction. Schema content is never touched.
func (s *DB) SaveRollback(entry model.VersionLogEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertLogEntry(tx, entry); err != nil {
		return err
	}
	if err := setActive(tx, entry.Version); err != nil {
		return err
	}

	return tx.Commit()
}

func insertLogEntry(tx *sql.Tx, entry model.VersionLogEntry) error {
	_, err := tx.Exec(
		`INSERT INTO version_log (id, kind, version, changelog, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, string(entry.Kind), entry.Version, entry.Changelog, entry.Timestamp,
	)
	return err
}

func setActive(tx *sql.Tx, version string) error {
	_, err := tx.Exec(
		`INSERT INTO active_pointer (id, version) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET version = excluded.version`,
		version,
	)
	return err
}

// LoadSchemas returns every stored schema version
func (s *DB) LoadSchemas() ([]model.SchemaVersion, error) {
	rows, err := s.db.Query(`SELECT version, body, changelog, registered_at FROM schemas`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schemas []model.SchemaVersion
	for rows.Next() {
		var sv model.SchemaVersion
		var bodyJSON string
		if err := rows.Scan(&sv.Version, &bodyJSON, &sv.Changelog, &sv.RegisteredAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(bodyJSON), &sv.Body); err != nil {
			return nil, fmt.Errorf("unmarshal schema body for %s: %w", sv.Version, err)
		}
		schemas = append(schemas, sv)
	}
	return schemas, rows.Err()
}

// LoadLog returns every version log entry in chronological order
func (s *DB) LoadLog() ([]model.VersionLogEntry, error) {
	rows, err := s.db.Query(`SELECT id, kind, version, changelog, created_at FROM version_log ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.VersionLogEntry
	for rows.Next() {
		var e model.VersionLogEntry
		var kind string
		if err := rows.Scan(&e.ID, &kind, &e.Version, &e.Changelog, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Kind = model.EventKind(kind)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LoadActive returns the persisted active pointer, or "" when unset
func (s *DB) LoadActive() (string, error) {
	var version string
	err := s.db.QueryRow(`SELECT version FROM active_pointer WHERE id = 1`).Scan(&version)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version, nil
}
