package model

import "time"

// EventKind distinguishes schema registrations from pointer moves in the
// version log. Rollbacks are logged for auditability but never count as
// registrations.
type EventKind string

const (
	EventRegister EventKind = "register"
	EventRollback EventKind = "rollback"
)

// VersionLogEntry is one record in the append-only version ledger
type VersionLogEntry struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Changelog string    `json:"changelog,omitempty"`
}
