package participants

import (
	"strconv"
	"strings"

	"github.com/consumerlab/markettrends/internal/domain"
	"github.com/consumerlab/markettrends/internal/utils"
)

// retirementTrueValues is the exact allow-list for boolean-like
// retirement_status values. Anything else, including "y" or values with
// surrounding whitespace, is false.
var retirementTrueValues = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
}

var typeCleaner = utils.NewCleaner(utils.LowercaseNormalizer{})

// ParseRecord builds a typed participant from a decoded record. Required
// keys are type, name, age and email; the discriminator is matched
// case-insensitively. An unknown type fails with ValidationError, an age
// that cannot be coerced to an integer fails with CoercionError.
func ParseRecord(data map[string]any) (Participant, error) {
	for _, key := range []string{"type", "name", "age", "email"} {
		if _, ok := data[key]; !ok {
			return nil, domain.NewValidationError(key, "missing required field")
		}
	}

	typeTag, err := domain.StringField(data, "type")
	if err != nil {
		return nil, err
	}
	name, err := domain.StringField(data, "name")
	if err != nil {
		return nil, err
	}
	email, err := domain.StringField(data, "email")
	if err != nil {
		return nil, err
	}
	age, err := coerceAge(data["age"])
	if err != nil {
		return nil, err
	}

	switch typeCleaner.Clean(typeTag) {
	case TypeStudent:
		return NewStudent(name, age, email, optionalString(data, "school")), nil
	case TypeAdult:
		return NewAdult(name, age, email, optionalString(data, "occupation")), nil
	case TypeSenior:
		return NewSenior(name, age, email, retirementStatus(data["retirement_status"])), nil
	default:
		return nil, domain.NewValidationError("type", "unknown participant type: "+typeTag)
	}
}

// coerceAge converts a decoded age value to an integer. JSON numbers arrive
// as float64; CSV cells arrive as strings. Fractional or non-numeric values
// fail with CoercionError rather than being truncated or defaulted.
func coerceAge(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, domain.NewCoercionError("age", raw, "int")
		}
		return int(v), nil
	case string:
		age, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, domain.NewCoercionError("age", raw, "int")
		}
		return age, nil
	default:
		return 0, domain.NewCoercionError("age", raw, "int")
	}
}

// retirementStatus interprets a boolean-like value. Strings are matched
// against the exact allow-list; native booleans pass through; anything else
// is false.
func retirementStatus(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return retirementTrueValues[strings.ToLower(v)]
	default:
		return false
	}
}

// optionalString reads a variant-specific field that may be absent or blank.
func optionalString(data map[string]any, field string) string {
	if raw, ok := data[field]; ok {
		if s, ok := raw.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
