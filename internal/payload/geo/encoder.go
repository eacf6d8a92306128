// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package geo encodes a geographic coordinate as a geo: URI.
package geo

import (
	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/validate"
)

// Field keys accepted by the geolocation encoder.
const (
	KeyLatitude  = "lat"
	KeyLongitude = "lon"
	KeyAltitude  = "alt"
	KeyLabel     = "label"
)

// Encoder builds geo: URIs.
type Encoder struct{}

// New creates a new geolocation encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "geo" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Geolocation" }

// Fields returns the geolocation field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeyLatitude, Label: "Latitude", Placeholder: "-22.5609", Required: true},
		{Key: KeyLongitude, Label: "Longitude", Placeholder: "17.0658", Required: true},
		{Key: KeyAltitude, Label: "Altitude (m)"},
		{Key: KeyLabel, Label: "Label"},
	}
}

// Encode produces geo:<lat>,<lon>[,<alt>][?q=<label>]. Coordinates are
// validated numerically but emitted as the literal strings supplied, so
// "45.0" never becomes "45".
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}

	lat, lon := f.Get(KeyLatitude), f.Get(KeyLongitude)
	if !validate.Latitude(lat) {
		return "", payload.Invalid(KeyLatitude, "must be a number in [-90, 90]")
	}
	if !validate.Longitude(lon) {
		return "", payload.Invalid(KeyLongitude, "must be a number in [-180, 180]")
	}

	out := "geo:" + lat + "," + lon
	if f.Has(KeyAltitude) {
		if !validate.Numeric(f.Get(KeyAltitude)) {
			return "", payload.Invalid(KeyAltitude, "must be a number")
		}
		out += "," + f.Get(KeyAltitude)
	}
	if f.Has(KeyLabel) {
		out += "?q=" + payload.PercentEncode(f.Get(KeyLabel))
	}
	return out, nil
}
