// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package wifi encodes Wi-Fi join credentials in the WIFI: config format.
package wifi

import (
	"strings"

	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/validate"
)

// Field keys accepted by the Wi-Fi encoder.
const (
	KeySSID     = "ssid"
	KeyAuth     = "auth"
	KeyPassword = "password"
	KeyHidden   = "hidden"
)

// AuthNone is the auth value for open networks.
const AuthNone = "nopass"

// Encoder builds WIFI: config strings.
type Encoder struct{}

// New creates a new Wi-Fi encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "wifi" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Wi-Fi Network" }

// Fields returns the Wi-Fi field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeySSID, Label: "Network Name (SSID)", Required: true},
		{Key: KeyAuth, Label: "Authentication", Options: []string{"WPA", "WEP", AuthNone}},
		{Key: KeyPassword, Label: "Password"},
		{Key: KeyHidden, Label: "Hidden Network", Options: []string{"false", "true"}},
	}
}

// Encode produces WIFI:S:<ssid>;T:<WPA|WEP|nopass>;P:<password>;H:true;;.
// The P field is omitted for open networks and H is emitted only when the
// network is hidden. Reserved characters in the SSID and password are
// backslash-escaped.
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}

	auth := f.Get(KeyAuth)
	if auth == "" {
		auth = "WPA"
	}
	if !validate.WiFiAuth(auth) {
		return "", payload.Invalid(KeyAuth, "must be WPA, WEP or nopass")
	}
	if strings.EqualFold(auth, AuthNone) {
		auth = AuthNone
	} else {
		auth = strings.ToUpper(auth)
	}

	if auth != AuthNone && !f.Has(KeyPassword) {
		return "", payload.Missing(KeyPassword)
	}

	parts := []string{
		"WIFI:S:" + payload.EscapeWiFi(f.Get(KeySSID)),
		"T:" + auth,
	}
	if auth != AuthNone {
		parts = append(parts, "P:"+payload.EscapeWiFi(f.Get(KeyPassword)))
	}
	if f.Get(KeyHidden) == "true" {
		parts = append(parts, "H:true")
	}
	return strings.Join(parts, ";") + ";;", nil
}
