package registry

import "go-context-registry/internal/model"

// Seed is a ready-made schema generation for bootstrapping a fresh registry
type Seed struct {
	Version   string
	Body      model.SchemaBody
	Changelog string
}

// Seeds returns the built-in schema generations in registration order.
// 2.0.0-coc is a pre-release variant and therefore orders below 2.0.0.
func Seeds() []Seed {
	return []Seed{
		{
			Version:   "1.0.0",
			Changelog: "initial context schema",
			Body: model.SchemaBody{
				Required:   []string{"schema_version", "pipeline_id", "data_sources", "final_query"},
				Optional:   []string{"missing_value_check", "default_fill_value", "description"},
				Repeatable: []string{"data_sources", "data_sources[].features_mapping"},
				FileTypes:  []string{"csv", "json", "txt", "api"},
				Sources: map[string]model.SourceSchema{
					"txn_data": {
						Features: map[string]model.FeatureSpec{
							"amount_spent":     {Type: model.FeatureNumerical, Alias: "amount", Nullable: false, Default: 0.0},
							"transaction_date": {Type: model.FeatureDatetime, Nullable: false, Default: "1970-01-01"},
							"category":         {Type: model.FeatureCategorical, Nullable: true},
						},
					},
				},
			},
		},
		{
			Version:   "2.0.0-coc",
			Changelog: "chain-of-command variant: ordered source execution with dependencies",
			Body: model.SchemaBody{
				Required: []string{
					"schema_version", "pipeline_id", "data_sources", "final_query",
					"created_by", "created_at", "global_settings", "context_settings", "chain_of_command",
				},
				Optional: []string{"missing_value_check", "default_fill_value", "description"},
				Repeatable: []string{
					"data_sources", "data_sources[].features_mapping",
					"data_sources[].preprocessing_hooks", "data_sources[].postprocessing_hooks",
					"data_sources[].depends_on",
				},
				RequiredPerSource: []string{"execution_order"},
				FileTypes:         []string{"csv", "json", "txt", "api"},
				Sources: map[string]model.SourceSchema{
					"txn_data": {
						Features: map[string]model.FeatureSpec{
							"amount_spent":     {Type: model.FeatureNumerical, Alias: "amount", Nullable: false, Default: 0.0},
							"transaction_date": {Type: model.FeatureDatetime, Nullable: false, Default: "1970-01-01"},
							"category":         {Type: model.FeatureCategorical, Nullable: true},
						},
					},
				},
			},
		},
		{
			Version:   "2.0.0",
			Changelog: "multi-source customer insight context with global settings and hooks",
			Body: model.SchemaBody{
				Required: []string{
					"schema_version", "pipeline_id", "data_sources", "final_query",
					"created_by", "created_at", "global_settings",
				},
				Optional: []string{"context_settings", "missing_value_check", "default_fill_value", "description"},
				Repeatable: []string{
					"data_sources", "data_sources[].features_mapping",
					"data_sources[].preprocessing_hooks", "data_sources[].postprocessing_hooks",
				},
				FileTypes: []string{"csv", "json", "txt", "api"},
				Sources: map[string]model.SourceSchema{
					"txn_data": {
						Features: map[string]model.FeatureSpec{
							"amount_spent":     {Type: model.FeatureNumerical, Alias: "amount", Nullable: false, Default: 0.0},
							"transaction_date": {Type: model.FeatureDatetime, Nullable: false, Default: "1970-01-01"},
							"category":         {Type: model.FeatureCategorical, Nullable: true},
						},
					},
					"customer_notes": {
						Features: map[string]model.FeatureSpec{
							"note_text":  {Type: model.FeatureText, Nullable: true},
							"created_at": {Type: model.FeatureDatetime, Nullable: false, Default: "1970-01-01"},
						},
					},
				},
			},
		},
	}
}

// SeedManager registers every built-in schema generation on a manager
func SeedManager(m *Manager) error {
	for _, s := range Seeds() {
		if _, err := m.RegisterVersion(s.Version, s.Body, s.Changelog); err != nil {
			return err
		}
	}
	return nil
}
