package store

import (
	"fmt"

	"go-context-registry/internal/registry"
)

// OpenManager opens the registry database and restores a manager from its
// persisted state. The returned DB must be closed by the caller.
func OpenManager(dbPath string) (*registry.Manager, *DB, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open registry db: %w", err)
	}

	schemas, err := db.LoadSchemas()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load schemas: %w", err)
	}
	entries, err := db.LoadLog()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load version log: %w", err)
	}
	active, err := db.LoadActive()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load active pointer: %w", err)
	}

	mgr := registry.NewManager(db)
	if err := mgr.Restore(schemas, entries, active); err != nil {
		db.Close()
		return nil, nil, err
	}
	return mgr, db, nil
}
