package registry

import (
	"fmt"
	"time"

	"go-context-registry/internal/model"

	"github.com/google/uuid"
)

// Rollback is a pointer move, never a deletion: schema content and log
// history stay untouched, and "future" versions remain registered so the
// pointer can be rolled forward again. Every move is itself logged for
// auditability, distinct from registration events.

// RollbackTo moves the active pointer to a previously registered version
func (m *Manager) RollbackTo(version string) (model.VersionLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.store.Has(version) {
		return model.VersionLogEntry{}, fmt.Errorf("%w: %s", ErrUnknownVersion, version)
	}
	return m.moveActive(version, fmt.Sprintf("rollback to %s", version))
}

// RollbackToPrevious moves the active pointer to the registration entry
// immediately preceding the current one in chronological log order.
func (m *Manager) RollbackToPrevious() (model.VersionLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == "" {
		return model.VersionLogEntry{}, ErrNoActiveVersion
	}

	regs := m.log.Registrations()
	for i, e := range regs {
		if e.Version == m.active {
			if i == 0 {
				return model.VersionLogEntry{}, fmt.Errorf("%w: %s is the first registered version", ErrNoPreviousVersion, m.active)
			}
			target := regs[i-1].Version
			return m.moveActive(target, fmt.Sprintf("rollback from %s to %s", m.active, target))
		}
	}
	// Active pointer always references a registration entry
	return model.VersionLogEntry{}, fmt.Errorf("%w: %s", ErrUnknownVersion, m.active)
}

// moveActive persists and applies a pointer move. Caller holds the write lock.
func (m *Manager) moveActive(version, changelog string) (model.VersionLogEntry, error) {
	entry := model.VersionLogEntry{
		ID:        uuid.New().String(),
		Kind:      model.EventRollback,
		Version:   version,
		Timestamp: time.Now().UTC(),
		Changelog: changelog,
	}

	if m.persist != nil {
		if err := m.persist.SaveRollback(entry); err != nil {
			return model.VersionLogEntry{}, fmt.Errorf("persist rollback to %s: %w", version, err)
		}
	}
	if err := m.log.Append(entry); err != nil {
		return model.VersionLogEntry{}, err
	}
	m.active = version
	return entry, nil
}
