package model

// ContextDocument is a schema-agnostic map holding a candidate context
// document as decoded from JSON. The registry only reads it; it is never
// persisted beyond the validation call.
type ContextDocument map[string]interface{}

// SchemaVersionField returns the document's declared schema_version, if any
func (d ContextDocument) SchemaVersionField() string {
	v, _ := d["schema_version"].(string)
	return v
}

// DataSources returns the document's data source descriptors. Entries that
// are not objects are returned as nil maps so validation can report them
// at the right index.
func (d ContextDocument) DataSources() []map[string]interface{} {
	raw, ok := d["data_sources"].([]interface{})
	if !ok {
		return nil
	}
	sources := make([]map[string]interface{}, len(raw))
	for i, item := range raw {
		m, _ := item.(map[string]interface{})
		sources[i] = m
	}
	return sources
}

// SourceName returns the name of a data source descriptor, falling back to
// file_id for documents written against older schema generations.
func SourceName(src map[string]interface{}) string {
	if name, ok := src["name"].(string); ok && name != "" {
		return name
	}
	name, _ := src["file_id"].(string)
	return name
}
