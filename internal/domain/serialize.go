package domain

import (
	"math"
	"strings"
)

// ToMap converts the product into a serializable tagged map. Only raw
// attributes are stored; the trend score is derived and computed on demand.
func (p *PhysicalProduct) ToMap() map[string]any {
	return map[string]any{
		"type":         TypePhysical,
		"name":         p.name,
		"sales":        p.sales,
		"returns":      p.returns,
		"satisfaction": p.satisfaction,
		"weight":       p.weight,
	}
}

// ToMap converts the product into a serializable tagged map.
func (p *DigitalProduct) ToMap() map[string]any {
	return map[string]any{
		"type":         TypeDigital,
		"name":         p.name,
		"sales":        p.sales,
		"returns":      p.returns,
		"satisfaction": p.satisfaction,
		"downloads":    p.downloads,
	}
}

// ProductFromMap rebuilds a product from a tagged map, dispatching on the
// "type" discriminator. Missing or malformed required keys fail with
// ValidationError or CoercionError; required numeric fields are never
// silently defaulted.
func ProductFromMap(data map[string]any) (TrendScorable, error) {
	typeTag, err := StringField(data, "type")
	if err != nil {
		return nil, err
	}

	name, err := StringField(data, "name")
	if err != nil {
		return nil, err
	}
	sales, err := IntField(data, "sales")
	if err != nil {
		return nil, err
	}
	returns, err := IntField(data, "returns")
	if err != nil {
		return nil, err
	}
	satisfaction, err := FloatField(data, "satisfaction")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(typeTag)) {
	case TypePhysical:
		weight, err := FloatField(data, "weight")
		if err != nil {
			return nil, err
		}
		return NewPhysicalProduct(name, sales, returns, satisfaction, weight)
	case TypeDigital:
		downloads, err := IntField(data, "downloads")
		if err != nil {
			return nil, err
		}
		return NewDigitalProduct(name, sales, returns, satisfaction, downloads)
	default:
		return nil, NewValidationError("type", "unknown product type: "+typeTag)
	}
}

// StringField extracts a required string value from a decoded record.
func StringField(data map[string]any, field string) (string, error) {
	raw, ok := data[field]
	if !ok {
		return "", NewValidationError(field, "missing required field")
	}
	s, ok := raw.(string)
	if !ok {
		return "", NewCoercionError(field, raw, "string")
	}
	return s, nil
}

// IntField extracts a required integer value from a decoded record.
// JSON decoding yields float64 for all numbers, so integral floats are
// accepted; fractional values are rejected rather than truncated.
func IntField(data map[string]any, field string) (int, error) {
	raw, ok := data[field]
	if !ok {
		return 0, NewValidationError(field, "missing required field")
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, NewCoercionError(field, raw, "int")
		}
		return int(v), nil
	default:
		return 0, NewCoercionError(field, raw, "int")
	}
}

// FloatField extracts a required numeric value from a decoded record.
func FloatField(data map[string]any, field string) (float64, error) {
	raw, ok := data[field]
	if !ok {
		return 0, NewValidationError(field, "missing required field")
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, NewCoercionError(field, raw, "float64")
	}
}
