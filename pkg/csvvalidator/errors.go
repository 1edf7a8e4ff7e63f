package csvvalidator

import (
	"errors"
	"fmt"
)

var (
	ErrNilSchema       = errors.New("schema is required")
	ErrInvalidOption   = errors.New("invalid validator option")
	ErrCustomValidator = errors.New("custom validator failed")
	ErrNilInput        = errors.New("input table is nil")
)

// CustomValidatorError reports a column's custom validator that returned an
// error or panicked. It points at a broken schema, not at bad data.
type CustomValidatorError struct {
	Row    int
	Column string
	Err    error
}

func (e *CustomValidatorError) Error() string {
	return fmt.Sprintf("%s: row %d, column %q: %v", ErrCustomValidator, e.Row, e.Column, e.Err)
}

func (e *CustomValidatorError) Unwrap() []error {
	return []error{ErrCustomValidator, e.Err}
}
