// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package mecard encodes a reduced contact record in MECARD format.
package mecard

import (
	"strings"

	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/validate"
)

// Field keys accepted by the meCard encoder.
const (
	KeyName  = "name"
	KeyPhone = "phone"
	KeyEmail = "email"
	KeyOrg   = "org"
	KeyNote  = "note"
)

// Encoder builds MECARD records.
type Encoder struct{}

// New creates a new meCard encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "mecard" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Contact Card (meCard)" }

// Fields returns the meCard field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeyName, Label: "Name", Placeholder: "Appleseed,Johnny", Required: true},
		{Key: KeyPhone, Label: "Phone", Placeholder: "+264810000000"},
		{Key: KeyEmail, Label: "Email"},
		{Key: KeyOrg, Label: "Organization"},
		{Key: KeyNote, Label: "Note"},
	}
}

// Encode produces a MECARD:...;; record. Properties carry no TYPE
// parameters; only populated fields are emitted, in N/TEL/EMAIL/ORG/NOTE
// order. Reserved characters in values are backslash-escaped.
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}
	if f.Has(KeyPhone) && !validate.Phone(f.Get(KeyPhone)) {
		return "", payload.Invalid(KeyPhone, "not a dialable phone number")
	}
	if f.Has(KeyEmail) && !validate.Email(f.Get(KeyEmail)) {
		return "", payload.Invalid(KeyEmail, "not a valid email address")
	}

	parts := []string{"MECARD:N:" + escape(f.Get(KeyName))}
	for _, p := range []struct{ key, prop string }{
		{KeyPhone, "TEL"},
		{KeyEmail, "EMAIL"},
		{KeyOrg, "ORG"},
		{KeyNote, "NOTE"},
	} {
		if f.Has(p.key) {
			parts = append(parts, p.prop+":"+escape(f.Get(p.key)))
		}
	}
	return strings.Join(parts, ";") + ";;", nil
}

// escape backslash-escapes the MECARD-reserved characters. The comma is
// left alone: it separates surname and given name inside N.
func escape(s string) string {
	return payload.Escape(s, `\;:`)
}
