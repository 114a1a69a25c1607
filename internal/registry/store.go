package registry

import (
	"fmt"

	"go-context-registry/internal/model"
)

// SchemaStore holds immutable, version-tagged schema documents keyed by
// their version string. It is not safe for concurrent use on its own;
// the Manager serializes access.
type SchemaStore struct {
	schemas map[string]model.SchemaVersion
}

// NewSchemaStore creates an empty schema store
func NewSchemaStore() *SchemaStore {
	return &SchemaStore{schemas: make(map[string]model.SchemaVersion)}
}

// Put stores a new schema version. Overwrites are rejected, never merged.
func (s *SchemaStore) Put(sv model.SchemaVersion) error {
	if _, exists := s.schemas[sv.Version]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateVersion, sv.Version)
	}
	s.schemas[sv.Version] = sv.Clone()
	return nil
}

// Get fetches a schema version. The returned value is a deep copy so
// callers can never mutate stored content.
func (s *SchemaStore) Get(version string) (model.SchemaVersion, error) {
	sv, ok := s.schemas[version]
	if !ok {
		return model.SchemaVersion{}, fmt.Errorf("%w: %s", ErrUnknownVersion, version)
	}
	return sv.Clone(), nil
}

// Has reports whether a version is registered
func (s *SchemaStore) Has(version string) bool {
	_, ok := s.schemas[version]
	return ok
}

// Len returns the number of registered schema versions
func (s *SchemaStore) Len() int {
	return len(s.schemas)
}
