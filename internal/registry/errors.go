package registry

import "errors"

// Integrity and resolution errors surfaced by the registry core. Callers
// match them with errors.Is; messages carry the offending version string
// via fmt.Errorf("%w") wrapping at the call site.
var (
	// ErrInvalidVersion rejects version strings that are not a full
	// major.minor.patch semantic version.
	ErrInvalidVersion = errors.New("invalid semantic version")

	// ErrDuplicateVersion rejects overwrites of an already registered
	// schema version. Schemas are immutable once written.
	ErrDuplicateVersion = errors.New("schema version already registered")

	// ErrDanglingReference rejects log entries that reference a version
	// absent from the schema store.
	ErrDanglingReference = errors.New("log entry references unknown schema version")

	// ErrNonMonotonicVersion rejects registrations that are not strictly
	// greater than every version already in the log.
	ErrNonMonotonicVersion = errors.New("version does not increase monotonically")

	// ErrUnknownVersion is returned for lookups and rollbacks targeting a
	// version that was never registered.
	ErrUnknownVersion = errors.New("unknown schema version")

	// ErrNoPreviousVersion is returned when rolling back past the first
	// registered version.
	ErrNoPreviousVersion = errors.New("no previous version to roll back to")

	// ErrNoActiveVersion is returned when resolving the current schema
	// before any version has been registered.
	ErrNoActiveVersion = errors.New("no active schema version")

	// ErrEmptyLog is returned by Latest on an empty version log.
	ErrEmptyLog = errors.New("version log is empty")
)
