// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package phone encodes a tel: URI.
package phone

import (
	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/validate"
)

// KeyNumber is the single field accepted by the phone encoder.
const KeyNumber = "number"

// Encoder builds tel: URIs.
type Encoder struct{}

// New creates a new phone encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "phone" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Phone Call" }

// Fields returns the phone field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeyNumber, Label: "Phone Number", Placeholder: "+264 81 000 0000", Required: true},
	}
}

// Encode produces tel:<number>, preserving the literal digits and symbols
// the user supplied. Validation rejects malformed numbers; it never
// reformats them.
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}
	number := f.Get(KeyNumber)
	if !validate.Phone(number) {
		return "", payload.Invalid(KeyNumber, "not a dialable phone number")
	}
	return "tel:" + number, nil
}
