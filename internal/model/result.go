package model

// Violation is a single validation failure, pointing at a dotted field path
// like "data_sources[0].features_mapping.amount.type".
type Violation struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// ValidationResult is the outcome of validating one context document
// against one schema version. All violations are collected in a single
// pass; the result is never truncated.
type ValidationResult struct {
	Valid      bool        `json:"valid"`
	Version    string      `json:"version"`
	Violations []Violation `json:"violations,omitempty"`
}

// Add appends a violation and flips the result to invalid
func (r *ValidationResult) Add(path, reason string) {
	r.Valid = false
	r.Violations = append(r.Violations, Violation{Path: path, Reason: reason})
}
