package model

import "time"

// FeatureType is the declared semantic type of a feature mapping
type FeatureType string

const (
	FeatureCategorical FeatureType = "categorical"
	FeatureText        FeatureType = "text"
	FeatureNumerical   FeatureType = "numerical"
	FeatureDatetime    FeatureType = "datetime"
)

// Known reports whether t is one of the supported feature types
func (t FeatureType) Known() bool {
	switch t {
	case FeatureCategorical, FeatureText, FeatureNumerical, FeatureDatetime:
		return true
	}
	return false
}

// FeatureSpec describes how a raw data column maps into the pipeline's
// semantic model: expected type, optional alias, nullability and default.
type FeatureSpec struct {
	Type     FeatureType `json:"type"`
	Alias    string      `json:"alias,omitempty"`
	Nullable bool        `json:"nullable"`
	Default  interface{} `json:"default,omitempty"`
}

// SourceSchema declares the feature mappings a named data source must carry
type SourceSchema struct {
	Features map[string]FeatureSpec `json:"features"`
}

// SchemaBody is the structural definition of a valid context document.
// Field lists use dotted notation for nested rules, e.g.
// "data_sources[].features_mapping" marks a per-source repeatable field.
type SchemaBody struct {
	Required          []string                `json:"required"`                      // top-level fields that must be present
	Optional          []string                `json:"optional,omitempty"`            // recognized but not required
	Repeatable        []string                `json:"repeatable,omitempty"`          // fields that must be collections when present
	RequiredPerSource []string                `json:"required_per_source,omitempty"` // fields every data source must carry
	FileTypes         []string                `json:"file_types,omitempty"`          // allowed data source file types (empty = any)
	Sources           map[string]SourceSchema `json:"sources,omitempty"`             // per-source feature declarations, keyed by source name
}

// Clone returns a deep copy so registered bodies stay immutable.
func (b SchemaBody) Clone() SchemaBody {
	out := SchemaBody{
		Required:          append([]string(nil), b.Required...),
		Optional:          append([]string(nil), b.Optional...),
		Repeatable:        append([]string(nil), b.Repeatable...),
		RequiredPerSource: append([]string(nil), b.RequiredPerSource...),
		FileTypes:         append([]string(nil), b.FileTypes...),
	}
	if b.Sources != nil {
		out.Sources = make(map[string]SourceSchema, len(b.Sources))
		for name, src := range b.Sources {
			features := make(map[string]FeatureSpec, len(src.Features))
			for fname, spec := range src.Features {
				features[fname] = spec
			}
			out.Sources[name] = SourceSchema{Features: features}
		}
	}
	return out
}

// SchemaVersion is an immutable, version-tagged schema document.
// Once registered its body never changes; evolution happens by
// registering a new version.
type SchemaVersion struct {
	Version      string     `json:"version"`
	Body         SchemaBody `json:"body"`
	RegisteredAt time.Time  `json:"registered_at"`
	Changelog    string     `json:"changelog,omitempty"`
}

// Clone returns a deep copy of the schema version.
func (s SchemaVersion) Clone() SchemaVersion {
	out := s
	out.Body = s.Body.Clone()
	return out
}
