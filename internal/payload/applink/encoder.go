// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package applink encodes an app store or deep link. The payload rules are
// identical to the url format; only the identity and labels differ.
package applink

import (
	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/payload/weburl"
)

// Encoder delegates to the URL encoder.
type Encoder struct {
	weburl.Encoder
}

// New creates a new app link encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "applink" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "App Link" }

// Fields returns the app link field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: weburl.KeyURL, Label: "App URL", Placeholder: "https://play.google.com/store/apps/details?id=...", Required: true},
	}
}
