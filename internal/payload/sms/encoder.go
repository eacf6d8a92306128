// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package sms encodes an sms: URI with an optional prefilled message.
package sms

import (
	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/validate"
)

// Field keys accepted by the SMS encoder.
const (
	KeyNumber  = "number"
	KeyMessage = "message"
)

// Encoder builds sms: URIs.
type Encoder struct{}

// New creates a new SMS encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "sms" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "SMS" }

// Fields returns the SMS field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeyNumber, Label: "Phone Number", Placeholder: "+264 81 000 0000", Required: true},
		{Key: KeyMessage, Label: "Message", Multiline: true},
	}
}

// Encode produces sms:<number>[?body=<message>] with the message
// percent-encoded.
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}
	number := f.Get(KeyNumber)
	if !validate.Phone(number) {
		return "", payload.Invalid(KeyNumber, "not a dialable phone number")
	}
	out := "sms:" + number
	if f.Has(KeyMessage) {
		out += "?body=" + payload.PercentEncode(f.Get(KeyMessage))
	}
	return out, nil
}
