package domain

import "fmt"

// ValidationError reports a value that violates a domain constraint
// (empty name, out-of-range score input, unknown discriminator, missing
// required field). Matchable with errors.As.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// CoercionError reports a value that cannot be converted to its required
// type (non-integer age, non-finite series element).
type CoercionError struct {
	Field  string
	Value  any
	Target string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: cannot coerce %v to %s", e.Field, e.Value, e.Target)
}

// NewCoercionError creates a CoercionError for the given field and target type.
func NewCoercionError(field string, value any, target string) *CoercionError {
	return &CoercionError{Field: field, Value: value, Target: target}
}
