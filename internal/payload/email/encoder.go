// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package email encodes a mailto: URI with optional subject and body.
package email

import (
	"strings"

	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/validate"
)

// Field keys accepted by the email encoder.
const (
	KeyTo      = "to"
	KeySubject = "subject"
	KeyBody    = "body"
)

// Encoder builds mailto: URIs.
type Encoder struct{}

// New creates a new email encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "email" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Email" }

// Fields returns the email field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeyTo, Label: "To", Placeholder: "user@example.com", Required: true},
		{Key: KeySubject, Label: "Subject"},
		{Key: KeyBody, Label: "Body", Multiline: true},
	}
}

// Encode produces mailto:<address>[?subject=<s>&body=<b>]. Subject comes
// before body when both are present; values are percent-encoded with %20
// for spaces.
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}
	to := f.Get(KeyTo)
	if !validate.Email(to) {
		return "", payload.Invalid(KeyTo, "not a valid email address")
	}

	var params []string
	if f.Has(KeySubject) {
		params = append(params, "subject="+payload.PercentEncode(f.Get(KeySubject)))
	}
	if f.Has(KeyBody) {
		params = append(params, "body="+payload.PercentEncode(f.Get(KeyBody)))
	}

	out := "mailto:" + to
	if len(params) > 0 {
		out += "?" + strings.Join(params, "&")
	}
	return out, nil
}
