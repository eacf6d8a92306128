// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package imagelink encodes a link to an externally hosted image. No
// binary embedding takes place; the payload rules are identical to the
// url format.
package imagelink

import (
	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/payload/weburl"
)

// Encoder delegates to the URL encoder.
type Encoder struct {
	weburl.Encoder
}

// New creates a new image link encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "image" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Image Link" }

// Fields returns the image link field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: weburl.KeyURL, Label: "Image URL", Placeholder: "https://example.com/logo.png", Required: true},
	}
}
