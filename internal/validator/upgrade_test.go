package validator

import (
	"testing"

	"go-context-registry/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestUpgrade(t *testing.T) {
	v1 := model.SchemaVersion{
		Version: "1.0.0",
		Body:    model.SchemaBody{Required: []string{"schema_version", "pipeline_id", "data_sources", "final_query"}},
	}
	v2 := model.SchemaVersion{
		Version: "2.0.0",
		Body: model.SchemaBody{Required: []string{
			"schema_version", "pipeline_id", "data_sources", "final_query",
			"created_by", "created_at", "global_settings",
		}},
	}

	t.Run("lists new required fields sorted", func(t *testing.T) {
		assert.Equal(t, []string{"created_at", "created_by", "global_settings"}, SuggestUpgrade(v1, v2))
	})

	t.Run("no additions downgrading", func(t *testing.T) {
		assert.Empty(t, SuggestUpgrade(v2, v1))
	})

	t.Run("same version", func(t *testing.T) {
		assert.Empty(t, SuggestUpgrade(v1, v1))
	})
}

func TestRuleSummary(t *testing.T) {
	v1 := model.SchemaVersion{
		Version: "1.0.0",
		Body: model.SchemaBody{
			Required: []string{"pipeline_id"},
			Optional: []string{"description"},
		},
	}
	v2 := model.SchemaVersion{
		Version: "2.0.0",
		Body: model.SchemaBody{
			Required: []string{"pipeline_id", "created_by"},
		},
	}

	out := RuleSummary([]model.SchemaVersion{v1, v2})
	require.Contains(t, out, "| Field | 1.0.0 | 2.0.0 |")
	assert.Contains(t, out, "| created_by | - | required |")
	assert.Contains(t, out, "| description | optional | - |")
	assert.Contains(t, out, "| pipeline_id | required | required |")
}
