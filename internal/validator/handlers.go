package validator

import (
	"fmt"

	"go-context-registry/internal/model"
	"go-context-registry/pkg/utils"
)

// TypeHandler normalizes a raw value under a feature's nullability and
// configured fallback default, or reports a type violation. Handlers are
// the pluggable half of validation: the walk decides WHICH handler runs
// for a feature, the handler decides whether the value is acceptable.
type TypeHandler func(value interface{}, nullable bool, fallback interface{}) (interface{}, error)

// Handlers returns the built-in handler per feature type. Categorical
// values are character sequences, so they share the text handler.
func Handlers() map[model.FeatureType]TypeHandler {
	return map[model.FeatureType]TypeHandler{
		model.FeatureCategorical: HandleText,
		model.FeatureText:        HandleText,
		model.FeatureNumerical:   HandleNumerical,
		model.FeatureDatetime:    HandleDatetime,
	}
}

func handlerFor(t model.FeatureType) TypeHandler {
	if h, ok := Handlers()[t]; ok {
		return h
	}
	return HandleText
}

// handleNull applies the shared null policy: null passes when the feature
// is nullable, otherwise a configured default fills in, otherwise it is a
// violation.
func handleNull(nullable bool, fallback interface{}) (interface{}, error) {
	if nullable {
		return fallback, nil
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, fmt.Errorf("null value for non-nullable feature without a default")
}

// HandleText accepts character sequences, or null subject to nullability
func HandleText(value interface{}, nullable bool, fallback interface{}) (interface{}, error) {
	if value == nil {
		return handleNull(nullable, fallback)
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("must be a character sequence, got %T", value)
	}
	return s, nil
}

// HandleNumerical accepts numeric values, or null subject to nullability
func HandleNumerical(value interface{}, nullable bool, fallback interface{}) (interface{}, error) {
	if value == nil {
		return handleNull(nullable, fallback)
	}
	if !utils.IsNumeric(value) {
		return nil, fmt.Errorf("must be numeric, got %T", value)
	}
	return utils.Numeric(value), nil
}

// HandleDatetime accepts ISO-8601 timestamps or dates, or null subject to
// nullability.
func HandleDatetime(value interface{}, nullable bool, fallback interface{}) (interface{}, error) {
	if value == nil {
		return handleNull(nullable, fallback)
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("must be an ISO-8601 string, got %T", value)
	}
	t, err := utils.ParseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return t, nil
}
