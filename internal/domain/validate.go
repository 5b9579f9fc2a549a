package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Rule tags applied to individual fields.
const (
	descriptionRule = "min=20"
	strengthRule    = "oneof=Strong Weak Average"
	priceRule       = "gte=0"
)

// Strength values accepted for HeroPower.strength.
const (
	StrengthStrong  = "Strong"
	StrengthWeak    = "Weak"
	StrengthAverage = "Average"
)

var (
	errNotText    = errors.New("value must be a string")
	errNotInteger = errors.New("value must be an integer")
	errMissing    = errors.New("value is required")
)

// FieldValidator checks a raw input value for a single field. It returns the
// value to store, which for valid input is the input itself (numeric inputs are
// normalized to int64).
type FieldValidator func(value any) (any, error)

type fieldKey struct {
	kind  Kind
	field string
}

var validate = validator.New()

// fieldValidators holds every field rule of the data model, keyed by
// (entity kind, field name). Fields without an entry accept any value.
var fieldValidators = map[fieldKey]FieldValidator{
	{KindPower, FieldDescription}:  validateDescription,
	{KindHeroPower, FieldStrength}: validateStrength,
	{KindVendorSweet, FieldPrice}:  validatePrice,
}

// ValidateField runs the rule registered for (kind, field) against value.
// Failures are returned as *ValidationError wrapping ErrValidation.
func ValidateField(kind Kind, field string, value any) (any, error) {
	fn, ok := fieldValidators[fieldKey{kind: kind, field: field}]
	if !ok {
		return value, nil
	}
	out, err := fn(value)
	if err != nil {
		return nil, NewValidationError(kind, field, err)
	}
	return out, nil
}

func validateDescription(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errNotText
	}
	if err := validate.Var(s, descriptionRule); err != nil {
		return nil, err
	}
	return s, nil
}

func validateStrength(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errNotText
	}
	if err := validate.Var(s, strengthRule); err != nil {
		return nil, err
	}
	return s, nil
}

func validatePrice(value any) (any, error) {
	n, err := toInt64(value)
	if err != nil {
		return nil, err
	}
	if err := validate.Var(n, priceRule); err != nil {
		return nil, err
	}
	return n, nil
}

// toInt64 accepts the numeric shapes produced by JSON decoding (json.Number
// with UseNumber, float64 without) as well as plain Go integers.
func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, errMissing
	case *int64:
		if v == nil {
			return 0, errMissing
		}
		return *v, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return floatToInt64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		// "3.0" and "1e2" are integral but not in integer literal form.
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errNotInteger, err)
		}
		return floatToInt64(f)
	default:
		return 0, errNotInteger
	}
}

// floatToInt64 accepts only integral values inside the int64 range.
func floatToInt64(v float64) (int64, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errNotInteger
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, errNotInteger
	}
	return int64(v), nil
}
