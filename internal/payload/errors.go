// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package payload

import "fmt"

// MissingFieldError reports a required field absent from the input.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// InvalidFieldError reports a field value that failed shape validation.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Missing returns a MissingFieldError for field.
func Missing(field string) error {
	return &MissingFieldError{Field: field}
}

// Invalid returns an InvalidFieldError for field with a reason.
func Invalid(field, reason string) error {
	return &InvalidFieldError{Field: field, Reason: reason}
}
