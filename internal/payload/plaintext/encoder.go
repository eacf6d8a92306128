// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package plaintext passes free text through untransformed. Length is
// bounded only by QR symbol capacity, which the renderer enforces.
package plaintext

import "github.com/m-spangenberg/qrgen/internal/payload"

// KeyText is the single field accepted by the plain text encoder.
const KeyText = "text"

// Encoder is the passthrough encoder for free text.
type Encoder struct{}

// New creates a new plain text encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "text" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Plain Text" }

// Fields returns the plain text field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeyText, Label: "Text", Required: true, Multiline: true},
	}
}

// Encode returns the trimmed text unchanged.
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}
	return f.Get(KeyText), nil
}
