package registry

import (
	"fmt"
	"sync"
	"time"

	"go-context-registry/internal/model"

	"github.com/google/uuid"
)

// Persister commits a registry mutation to durable storage as one atomic
// unit. Implementations must guarantee fully-old or fully-new state across
// a crash; the SQLite store does this with a single transaction per call.
type Persister interface {
	// SaveRegistration stores a new schema version, its log entry and the
	// advanced active pointer.
	SaveRegistration(sv model.SchemaVersion, entry model.VersionLogEntry) error
	// SaveRollback stores a pointer-move log entry and the moved pointer.
	SaveRollback(entry model.VersionLogEntry) error
}

// Manager owns the schema store, the version log and the active pointer as
// one transactional unit. All mutations are serialized behind a single
// write lock; reads take a consistent snapshot under the read lock.
type Manager struct {
	mu      sync.RWMutex
	store   *SchemaStore
	log     *VersionLog
	active  string // empty until the first registration
	persist Persister
}

// NewManager creates a registry manager. persist may be nil for a purely
// in-memory registry (tests, embedded use).
func NewManager(persist Persister) *Manager {
	store := NewSchemaStore()
	return &Manager{
		store:   store,
		log:     NewVersionLog(store),
		persist: persist,
	}
}

// Restore rebuilds in-memory state from persisted records. Entries must be
// in chronological order. Monotonicity is not re-checked: storage is
// trusted, but dangling references still abort the restore.
func (m *Manager) Restore(schemas []model.SchemaVersion, entries []model.VersionLogEntry, active string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, sv := range schemas {
		if err := m.store.Put(sv); err != nil {
			return fmt.Errorf("restore schema %s: %w", sv.Version, err)
		}
	}
	for _, e := range entries {
		if err := m.log.Append(e); err != nil {
			return fmt.Errorf("restore log entry %s: %w", e.ID, err)
		}
	}
	if active != "" && !m.store.Has(active) {
		return fmt.Errorf("restore active pointer: %w: %s", ErrUnknownVersion, active)
	}
	m.active = active
	return nil
}

// RegisterVersion registers a new schema version. The version must be
// strictly greater than every version already in the log. On success the
// schema is stored, the registration is logged and the active pointer
// advances to the new version.
func (m *Manager) RegisterVersion(version string, body model.SchemaBody, changelog string) (model.SchemaVersion, error) {
	if !ValidVersion(version) {
		return model.SchemaVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store.Has(version) {
		return model.SchemaVersion{}, fmt.Errorf("%w: %s", ErrDuplicateVersion, version)
	}
	if latest, err := m.log.Latest(); err == nil {
		if CompareVersions(version, latest.Version) <= 0 {
			return model.SchemaVersion{}, fmt.Errorf("%w: %s is not greater than %s", ErrNonMonotonicVersion, version, latest.Version)
		}
	}

	now := time.Now().UTC()
	sv := model.SchemaVersion{
		Version:      version,
		Body:         body.Clone(),
		RegisteredAt: now,
		Changelog:    changelog,
	}
	entry := model.VersionLogEntry{
		ID:        uuid.New().String(),
		Kind:      model.EventRegister,
		Version:   version,
		Timestamp: now,
		Changelog: changelog,
	}

	// Persist first: a failed commit leaves in-memory state untouched.
	if m.persist != nil {
		if err := m.persist.SaveRegistration(sv, entry); err != nil {
			return model.SchemaVersion{}, fmt.Errorf("persist registration %s: %w", version, err)
		}
	}

	if err := m.store.Put(sv); err != nil {
		return model.SchemaVersion{}, err
	}
	if err := m.log.Append(entry); err != nil {
		return model.SchemaVersion{}, err
	}
	m.active = version
	return sv.Clone(), nil
}

// ResolveCurrent returns the schema version the active pointer references
func (m *Manager) ResolveCurrent() (model.SchemaVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.active == "" {
		return model.SchemaVersion{}, ErrNoActiveVersion
	}
	return m.store.Get(m.active)
}

// Resolve returns the schema for a specific version
func (m *Manager) Resolve(version string) (model.SchemaVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Get(version)
}

// ActiveVersion returns the current active version string, or "" when no
// schema has been registered yet.
func (m *Manager) ActiveVersion() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// History returns the full version log, oldest first
func (m *Manager) History() []model.VersionLogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.log.History()
}

// Registrations returns only the registration entries, oldest first
func (m *Manager) Registrations() []model.VersionLogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.log.Registrations()
}
