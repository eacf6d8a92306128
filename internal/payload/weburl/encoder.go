// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package weburl encodes a web address as a bare URI payload.
package weburl

import (
	"net/url"
	"strings"

	"github.com/m-spangenberg/qrgen/internal/payload"
)

// KeyURL is the single field accepted by the URL encoder.
const KeyURL = "url"

// Encoder passes validated absolute URIs through unchanged.
type Encoder struct{}

// New creates a new URL encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "url" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Website URL" }

// Fields returns the URL field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeyURL, Label: "URL", Placeholder: "https://example.com", Required: true},
	}
}

// Encode returns the URI unchanged, except that an address without a
// scheme gets https:// prepended. Anything that still does not parse as
// an absolute URI with a host is rejected.
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}
	return Normalize(f.Get(KeyURL))
}

// Normalize applies the scheme default and absolute-URI check used by the
// url, applink and image formats.
func Normalize(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", payload.Invalid(KeyURL, "not an absolute URI")
	}
	return raw, nil
}
