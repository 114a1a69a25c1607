package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc, err := Decode(strings.NewReader(`{"schema_version": "1.0.0", "pipeline_id": "p"}`))
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", doc.SchemaVersionField())
		assert.Equal(t, "p", doc["pipeline_id"])
	})

	t.Run("malformed input is a decode error, not a validation result", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"schema_version": `))
		require.Error(t, err)
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads a document file", func(t *testing.T) {
		path := filepath.Join(dir, "doc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"pipeline_id": "p", "data_sources": []}`), 0o644))

		doc, err := LoadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, "p", doc["pipeline_id"])
		assert.Empty(t, doc.DataSources())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDocument(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestLoadBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "body.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"required": ["pipeline_id"],
		"file_types": ["csv"],
		"sources": {"txn_data": {"features": {"amount": {"type": "numerical", "nullable": false, "default": 0}}}}
	}`), 0o644))

	body, err := LoadBody(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pipeline_id"}, body.Required)
	require.Contains(t, body.Sources, "txn_data")
	assert.Equal(t, "numerical", string(body.Sources["txn_data"].Features["amount"].Type))
}
