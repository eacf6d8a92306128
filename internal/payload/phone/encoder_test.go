// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-spangenberg/qrgen/internal/payload"
)

func TestEncode_PreservesLiteralNumber(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{KeyNumber: "+264 81 000 0000"})
	require.NoError(t, err)
	assert.Equal(t, "tel:+264 81 000 0000", out)
}

func TestEncode_RejectsMalformedNumber(t *testing.T) {
	enc := New()
	_, err := enc.Encode(payload.Fields{KeyNumber: "call me"})

	var invalid *payload.InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, KeyNumber, invalid.Field)
}

func TestEncode_MissingNumber(t *testing.T) {
	enc := New()
	_, err := enc.Encode(payload.Fields{})

	var missing *payload.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, KeyNumber, missing.Field)
}
