package validator

import (
	"fmt"
	"sort"
	"strings"

	"go-context-registry/internal/model"
)

// Policy carries the strictness knobs the schema format leaves open.
// The zero value is the permissive default: unknown fields are ignored
// and hook names are opaque strings.
type Policy struct {
	// Strict rejects unknown top-level fields instead of ignoring them
	Strict bool
	// AllowedHooks, when non-empty, is the allowlist every referenced
	// pre/post-processing hook name must appear on.
	AllowedHooks []string
}

func (p Policy) hookAllowed(name string) bool {
	if len(p.AllowedHooks) == 0 {
		return true
	}
	for _, h := range p.AllowedHooks {
		if h == name {
			return true
		}
	}
	return false
}

// Validate checks a context document against one schema version. It is
// fail-soft: every violation is collected in a single pass so the caller
// sees all problems at once. Violation order is deterministic, so
// validating the same document twice yields identical results.
func Validate(doc model.ContextDocument, schema model.SchemaVersion, policy Policy) model.ValidationResult {
	res := model.ValidationResult{Valid: true, Version: schema.Version}
	body := schema.Body

	checkRequired(doc, body, &res)
	if policy.Strict {
		checkUnknown(doc, body, &res)
	}
	checkRepeatable(doc, body, &res)
	checkSources(doc, body, policy, &res)

	return res
}

// checkRequired flags missing required top-level fields
func checkRequired(doc model.ContextDocument, body model.SchemaBody, res *model.ValidationResult) {
	for _, field := range body.Required {
		if _, ok := doc[field]; !ok {
			res.Add(field, "missing required field")
		}
	}
}

// checkUnknown flags top-level fields the schema does not declare.
// Only runs under the strict policy; the default is schema evolution
// tolerance, where unknown fields are ignored.
func checkUnknown(doc model.ContextDocument, body model.SchemaBody, res *model.ValidationResult) {
	known := make(map[string]bool, len(body.Required)+len(body.Optional))
	for _, f := range body.Required {
		known[f] = true
	}
	for _, f := range body.Optional {
		known[f] = true
	}

	var unknown []string
	for field := range doc {
		if !known[field] {
			unknown = append(unknown, field)
		}
	}
	sort.Strings(unknown)
	for _, field := range unknown {
		res.Add(field, "unknown field not allowed in strict mode")
	}
}

// checkRepeatable enforces that declared repeatable fields hold
// collections. Rules use dotted notation: "data_sources[].depends_on"
// applies inside every data source descriptor.
func checkRepeatable(doc model.ContextDocument, body model.SchemaBody, res *model.ValidationResult) {
	for _, rule := range body.Repeatable {
		if prefix, sub, ok := strings.Cut(rule, "[]."); ok {
			if prefix != "data_sources" {
				continue
			}
			for i, src := range doc.DataSources() {
				if src == nil {
					continue
				}
				if v, present := src[sub]; present && !isCollection(v) {
					res.Add(fmt.Sprintf("data_sources[%d].%s", i, sub), "must be a collection")
				}
			}
			continue
		}
		if v, present := doc[rule]; present && !isCollection(v) {
			res.Add(rule, "must be a collection")
		}
	}
}

func isCollection(v interface{}) bool {
	switch v.(type) {
	case []interface{}, map[string]interface{}:
		return true
	}
	return false
}

// checkSources validates every data source descriptor: per-source required
// fields, file type, api headers, dependency lists, hook names and the
// feature mappings declared by the schema.
func checkSources(doc model.ContextDocument, body model.SchemaBody, policy Policy, res *model.ValidationResult) {
	if _, present := doc["data_sources"]; !present {
		// Absence is already reported by the required-field check
		return
	}

	sources := doc.DataSources()
	seen := make(map[string]bool, len(sources))

	for i, src := range sources {
		path := fmt.Sprintf("data_sources[%d]", i)
		if src == nil {
			res.Add(path, "data source must be an object")
			continue
		}
		name := model.SourceName(src)
		if name != "" {
			seen[name] = true
		}

		for _, field := range body.RequiredPerSource {
			if _, ok := src[field]; !ok {
				res.Add(path+"."+field, "missing required field")
			}
		}

		checkFileType(src, body, path, res)
		checkDependsOn(src, path, res)
		checkHooks(src, path, "preprocessing_hooks", policy, res)
		checkHooks(src, path, "postprocessing_hooks", policy, res)
		checkFeatureMappings(src, body.Sources[name], path, res)
	}

	// Declared sources the document does not supply at all
	declared := make([]string, 0, len(body.Sources))
	for name := range body.Sources {
		declared = append(declared, name)
	}
	sort.Strings(declared)
	for _, name := range declared {
		if !seen[name] {
			res.Add("data_sources", fmt.Sprintf("missing declared data source %q", name))
		}
	}
}

func checkFileType(src map[string]interface{}, body model.SchemaBody, path string, res *model.ValidationResult) {
	raw, present := src["file_type"]
	if !present {
		res.Add(path+".file_type", "missing file type")
		return
	}
	ft, ok := raw.(string)
	if !ok {
		res.Add(path+".file_type", fmt.Sprintf("must be a string, got %T", raw))
		return
	}

	if len(body.FileTypes) > 0 {
		known := false
		for _, allowed := range body.FileTypes {
			if strings.EqualFold(ft, allowed) {
				known = true
				break
			}
		}
		if !known {
			res.Add(path+".file_type", fmt.Sprintf("unknown file type %q", ft))
		}
	}

	// API-backed sources carry request headers
	if strings.EqualFold(ft, "api") {
		if _, ok := src["headers"]; !ok {
			res.Add(path+".headers", "headers required for api source")
		}
	}
}

func checkDependsOn(src map[string]interface{}, path string, res *model.ValidationResult) {
	raw, present := src["depends_on"]
	if !present {
		return
	}
	if _, ok := raw.([]interface{}); !ok {
		res.Add(path+".depends_on", "must be a list")
	}
}

// checkHooks validates hook name lists. Hook names are opaque strings;
// the registry records them but never executes them. An allowlist is
// only enforced when the policy configures one.
func checkHooks(src map[string]interface{}, path, field string, policy Policy, res *model.ValidationResult) {
	raw, present := src[field]
	if !present {
		return
	}
	list, ok := raw.([]interface{})
	if !ok {
		res.Add(path+"."+field, "must be a list")
		return
	}
	for j, item := range list {
		name, ok := item.(string)
		if !ok {
			res.Add(fmt.Sprintf("%s.%s[%d]", path, field, j), fmt.Sprintf("hook name must be a string, got %T", item))
			continue
		}
		if !policy.hookAllowed(name) {
			res.Add(fmt.Sprintf("%s.%s[%d]", path, field, j), fmt.Sprintf("hook %q is not on the allowlist", name))
		}
	}
}

// checkFeatureMappings compares a source's features_mapping block against
// the schema's declared features, then structurally checks any extra
// entries the document carries.
func checkFeatureMappings(src map[string]interface{}, declared model.SourceSchema, path string, res *model.ValidationResult) {
	raw, present := src["features_mapping"]
	if !present {
		if len(declared.Features) > 0 {
			res.Add(path+".features_mapping", "missing required feature mappings")
		}
		return
	}
	mapping, ok := raw.(map[string]interface{})
	if !ok {
		res.Add(path+".features_mapping", fmt.Sprintf("must be an object, got %T", raw))
		return
	}

	declaredNames := make([]string, 0, len(declared.Features))
	for name := range declared.Features {
		declaredNames = append(declaredNames, name)
	}
	sort.Strings(declaredNames)

	for _, name := range declaredNames {
		entry, ok := mapping[name]
		if !ok {
			res.Add(path+".features_mapping."+name, "missing required feature mapping")
			continue
		}
		checkFeature(entry, declared.Features[name], path+".features_mapping."+name, res)
	}

	// Extra mappings are tolerated but must still be well-formed
	extra := make([]string, 0)
	for name := range mapping {
		if _, ok := declared.Features[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		checkFeature(mapping[name], model.FeatureSpec{Nullable: true}, path+".features_mapping."+name, res)
	}
}

// checkFeature validates a single feature mapping entry: declared type
// match, alias/nullable shape, and the default value through the type
// handler for the declared feature type.
func checkFeature(raw interface{}, spec model.FeatureSpec, path string, res *model.ValidationResult) {
	entry, ok := raw.(map[string]interface{})
	if !ok {
		res.Add(path, fmt.Sprintf("feature mapping must be an object, got %T", raw))
		return
	}

	ftype := spec.Type
	if t, present := entry["type"]; present {
		s, isStr := t.(string)
		switch {
		case !isStr || !model.FeatureType(s).Known():
			res.Add(path+".type", fmt.Sprintf("unknown feature type %v", t))
		case spec.Type != "" && model.FeatureType(s) != spec.Type:
			res.Add(path+".type", fmt.Sprintf("schema declares %s, document says %s", spec.Type, s))
		default:
			ftype = model.FeatureType(s)
		}
	} else {
		res.Add(path+".type", "missing feature type")
	}

	if a, present := entry["alias"]; present {
		if _, isStr := a.(string); !isStr {
			res.Add(path+".alias", fmt.Sprintf("must be a string, got %T", a))
		}
	}

	nullable := spec.Nullable
	if n, present := entry["nullable"]; present {
		b, isBool := n.(bool)
		if !isBool {
			res.Add(path+".nullable", fmt.Sprintf("must be a boolean, got %T", n))
		} else {
			nullable = b
		}
	}

	handler := handlerFor(ftype)
	def, hasDefault := entry["default"]
	if hasDefault {
		if _, err := handler(def, nullable, spec.Default); err != nil {
			res.Add(path+".default", err.Error())
		}
	} else if !nullable && spec.Default == nil && ftype == model.FeatureNumerical {
		res.Add(path+".default", "non-nullable numerical feature needs a default")
	}
}
