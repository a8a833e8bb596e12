package forms

import (
	"errors"
	"fmt"
)

// ErrValidation is the base sentinel wrapped by every form rejection.
// Feature code matches it with [errors.Is]; the concrete error carries the
// offending field for the user-facing message.
var ErrValidation = errors.New("validation failed")

// FieldError reports a required field whose trimmed value is blank. The
// whole submission is rejected on the first blank field; there is no
// partial save.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("required field %q is blank", e.Field)
}

func (e *FieldError) Unwrap() error { return ErrValidation }

// EnumError reports a categorical field whose value is not a member of its
// closed set. The form mapper is the sole enforcement point for enum
// membership.
type EnumError struct {
	Field string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("field %q has invalid value %q", e.Field, e.Value)
}

func (e *EnumError) Unwrap() error { return ErrValidation }

// NumberError reports a currency or price field that could not be parsed
// as a number.
type NumberError struct {
	Field string
	Value string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("field %q is not a number: %q", e.Field, e.Value)
}

func (e *NumberError) Unwrap() error { return ErrValidation }

// DateError reports a date field that could not be parsed.
type DateError struct {
	Field string
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("field %q is not a date: %q", e.Field, e.Value)
}

func (e *DateError) Unwrap() error { return ErrValidation }
