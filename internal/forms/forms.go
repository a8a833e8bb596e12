// Package forms gates raw user input before it reaches a record store.
//
// Every feature defines a form type whose Validate method enforces that
// feature's fixed required-field list, trims all string inputs, checks
// categorical fields against their closed enums, and converts currency
// fields from string to number. On success Validate produces a well-formed
// record payload; on failure it returns a single error wrapping
// ErrValidation and the store is never called.
package forms

import (
	"strconv"
	"strings"
	"time"
)

// field is one named raw input, kept in submission order so the first
// blank required field wins deterministically.
type field struct {
	name  string
	value string
}

// firstBlank returns a FieldError for the first field whose trimmed value
// is empty, or nil when all are present.
func firstBlank(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &FieldError{Field: f.name}
		}
	}
	return nil
}

// parseAmount converts a currency/price input to float64. The only type
// coercion the form layer performs.
func parseAmount(name, raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &NumberError{Field: name, Value: raw}
	}
	return amount, nil
}

// dateLayouts are the accepted date input shapes: the date picker's plain
// day format and full RFC 3339 timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate converts a date input to a time value. Raw date strings must
// never travel past the form layer.
func parseDate(name, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &DateError{Field: name, Value: raw}
}
