// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package mecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-spangenberg/qrgen/internal/payload"
)

func TestEncode_FullRecord(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{
		KeyName:  "Appleseed,Johnny",
		KeyPhone: "+264810000000",
		KeyEmail: "j@example.com",
		KeyOrg:   "Orchard Inc",
		KeyNote:  "gardener",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"MECARD:N:Appleseed,Johnny;TEL:+264810000000;EMAIL:j@example.com;ORG:Orchard Inc;NOTE:gardener;;",
		out)
}

func TestEncode_NameOnly(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{KeyName: "Appleseed,Johnny"})
	require.NoError(t, err)
	assert.Equal(t, "MECARD:N:Appleseed,Johnny;;", out)
}

func TestEncode_EscapesReservedCharacters(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{
		KeyName: "Apple;seed",
		KeyNote: "desk: 3rd floor",
	})
	require.NoError(t, err)
	assert.Contains(t, out, `N:Apple\;seed`)
	assert.Contains(t, out, `NOTE:desk\: 3rd floor`)
}

func TestEncode_MissingName(t *testing.T) {
	enc := New()
	_, err := enc.Encode(payload.Fields{KeyPhone: "+264810000000"})

	var missing *payload.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, KeyName, missing.Field)
}

func TestEncode_RejectsBadShapes(t *testing.T) {
	enc := New()

	_, err := enc.Encode(payload.Fields{KeyName: "A", KeyEmail: "nope"})
	var invalid *payload.InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, KeyEmail, invalid.Field)

	_, err = enc.Encode(payload.Fields{KeyName: "A", KeyPhone: "12"})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, KeyPhone, invalid.Field)
}
