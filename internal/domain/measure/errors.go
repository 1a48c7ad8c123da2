package measure

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel error kinds for engine input validation. Callers match them with
// errors.Is; the concrete error is always a *FieldError.
var (
	ErrInvalidMeasurement   = errors.New("invalid measurement")
	ErrMissingRequiredInput = errors.New("missing required input")
)

// FieldError names the input that was rejected and why.
type FieldError struct {
	Kind   error
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return e.Kind }

// Invalid builds an ErrInvalidMeasurement error for field.
func Invalid(field, reason string) error {
	return &FieldError{Kind: ErrInvalidMeasurement, Field: field, Reason: reason}
}

// Missing builds an ErrMissingRequiredInput error for field.
func Missing(field string) error {
	return &FieldError{Kind: ErrMissingRequiredInput, Field: field, Reason: "value is required"}
}

// Named relabels a FieldError with the caller's field name. Errors of any
// other type are returned untouched.
func Named(field string, err error) error {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return err
	}
	out := *fe
	out.Field = field
	return &out
}

// FieldOf extracts the offending field name, or "" when err carries none.
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
