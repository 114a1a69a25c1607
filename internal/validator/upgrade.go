package validator

import (
	"fmt"
	"sort"
	"strings"

	"go-context-registry/internal/model"
)

// SuggestUpgrade lists the required top-level fields a document author must
// add when moving from one schema version to another. An empty result means
// the upgrade adds no new required fields.
func SuggestUpgrade(from, to model.SchemaVersion) []string {
	current := make(map[string]bool, len(from.Body.Required))
	for _, f := range from.Body.Required {
		current[f] = true
	}

	var added []string
	for _, f := range to.Body.Required {
		if !current[f] {
			added = append(added, f)
		}
	}
	sort.Strings(added)
	return added
}

// RuleSummary renders a markdown table of required/optional field coverage
// across schema versions, one row per field, one column per version.
func RuleSummary(versions []model.SchemaVersion) string {
	fieldSet := make(map[string]bool)
	for _, v := range versions {
		for _, f := range v.Body.Required {
			fieldSet[f] = true
		}
		for _, f := range v.Body.Optional {
			fieldSet[f] = true
		}
	}
	fields := make([]string, 0, len(fieldSet))
	for f := range fieldSet {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("| Field |")
	for _, v := range versions {
		fmt.Fprintf(&b, " %s |", v.Version)
	}
	b.WriteString("\n|-------|")
	for range versions {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for _, field := range fields {
		fmt.Fprintf(&b, "| %s |", field)
		for _, v := range versions {
			b.WriteString(" " + fieldStatus(v.Body, field) + " |")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func fieldStatus(body model.SchemaBody, field string) string {
	for _, f := range body.Required {
		if f == field {
			return "required"
		}
	}
	for _, f := range body.Optional {
		if f == field {
			return "optional"
		}
	}
	return "-"
}
