// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-spangenberg/qrgen/internal/payload"
)

func TestEncode_WPANetwork(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{
		KeySSID:     "HomeNet",
		KeyAuth:     "WPA",
		KeyPassword: "hunter2!",
	})
	require.NoError(t, err)
	assert.Equal(t, "WIFI:S:HomeNet;T:WPA;P:hunter2!;;", out)
}

func TestEncode_AuthDefaultsToWPA(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{KeySSID: "HomeNet", KeyPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "WIFI:S:HomeNet;T:WPA;P:pw;;", out)
}

func TestEncode_EscapesReservedCharacters(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{
		KeySSID:     `My;Net\Work`,
		KeyPassword: "a:b,c",
	})
	require.NoError(t, err)
	assert.Equal(t, `WIFI:S:My\;Net\\Work;T:WPA;P:a\:b\,c;;`, out)
}

func TestEncode_OpenNetworkOmitsPassword(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{KeySSID: "CoffeeShop", KeyAuth: "nopass"})
	require.NoError(t, err)
	assert.Equal(t, "WIFI:S:CoffeeShop;T:nopass;;", out)
}

func TestEncode_HiddenNetwork(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{
		KeySSID:     "Secret",
		KeyPassword: "pw",
		KeyHidden:   "true",
	})
	require.NoError(t, err)
	assert.Equal(t, "WIFI:S:Secret;T:WPA;P:pw;H:true;;", out)
}

func TestEncode_SecuredNetworkRequiresPassword(t *testing.T) {
	enc := New()
	_, err := enc.Encode(payload.Fields{KeySSID: "HomeNet", KeyAuth: "WEP"})

	var missing *payload.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, KeyPassword, missing.Field)
}

func TestEncode_RejectsUnknownAuth(t *testing.T) {
	enc := New()
	_, err := enc.Encode(payload.Fields{KeySSID: "HomeNet", KeyAuth: "PSK"})

	var invalid *payload.InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, KeyAuth, invalid.Field)
}

func TestEncode_AuthCaseInsensitive(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{
		KeySSID:     "HomeNet",
		KeyAuth:     "wpa",
		KeyPassword: "pw",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "T:WPA;")

	out, err = enc.Encode(payload.Fields{KeySSID: "Open", KeyAuth: "NOPASS"})
	require.NoError(t, err)
	assert.Contains(t, out, "T:nopass;")
}
