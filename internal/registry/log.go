package registry

import (
	"fmt"

	"go-context-registry/internal/model"
)

// VersionLog is the append-only ledger of schema registrations and
// rollback pointer moves. Insertion order is chronological order.
type VersionLog struct {
	store   *SchemaStore
	entries []model.VersionLogEntry
}

// NewVersionLog creates an empty log backed by the given schema store
func NewVersionLog(store *SchemaStore) *VersionLog {
	return &VersionLog{store: store}
}

// Append adds an entry to the ledger. The referenced version must already
// exist in the schema store.
func (l *VersionLog) Append(entry model.VersionLogEntry) error {
	if !l.store.Has(entry.Version) {
		return fmt.Errorf("%w: %s", ErrDanglingReference, entry.Version)
	}
	l.entries = append(l.entries, entry)
	return nil
}

// History returns all entries oldest first. The slice is a copy, so
// callers can iterate and restart freely.
func (l *VersionLog) History() []model.VersionLogEntry {
	return append([]model.VersionLogEntry(nil), l.entries...)
}

// Registrations returns only the schema registration entries, oldest first
func (l *VersionLog) Registrations() []model.VersionLogEntry {
	var regs []model.VersionLogEntry
	for _, e := range l.entries {
		if e.Kind == model.EventRegister {
			regs = append(regs, e)
		}
	}
	return regs
}

// Latest returns the registration entry with the highest semantic version
func (l *VersionLog) Latest() (model.VersionLogEntry, error) {
	var latest model.VersionLogEntry
	found := false
	for _, e := range l.entries {
		if e.Kind != model.EventRegister {
			continue
		}
		if !found || CompareVersions(e.Version, latest.Version) > 0 {
			latest = e
			found = true
		}
	}
	if !found {
		return model.VersionLogEntry{}, ErrEmptyLog
	}
	return latest, nil
}

// Len returns the number of log entries
func (l *VersionLog) Len() int {
	return len(l.entries)
}
