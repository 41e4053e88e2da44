package calculator

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrNotFound is returned when an identifier is not registered.
var ErrNotFound = errors.New("calculator not found")

// MissingVariableError reports a declared variable that was neither supplied
// nor defaulted.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("missing value for %q", e.Name)
}

// InvalidNumberError reports a supplied value that could not be coerced to a
// finite number.
type InvalidNumberError struct {
	Name string
	Raw  any
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number for %q: %v", e.Name, e.Raw)
}

// CalculationError reports a calculation that produced a non-finite result,
// or one that panicked during batch evaluation.
type CalculationError struct {
	Identifier string
	Cause      any
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation %s failed: %v", e.Identifier, e.Cause)
}

// FieldError is the per-field view of an evaluation error.
type FieldError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// FieldErrors flattens an evaluation error into per-field messages. It
// returns nil when err carries no field errors.
func FieldErrors(err error) []FieldError {
	var fields []FieldError
	for _, e := range multierr.Errors(err) {
		var missing *MissingVariableError
		var invalid *InvalidNumberError
		switch {
		case errors.As(e, &missing):
			fields = append(fields, FieldError{Name: missing.Name, Message: "a value is required"})
		case errors.As(e, &invalid):
			fields = append(fields, FieldError{Name: invalid.Name, Message: "must be a number", Value: invalid.Raw})
		}
	}
	return fields
}

// IsValidationError reports whether err only carries field errors.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	return len(FieldErrors(err)) == len(multierr.Errors(err))
}
