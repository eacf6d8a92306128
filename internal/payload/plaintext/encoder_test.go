// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package plaintext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-spangenberg/qrgen/internal/payload"
)

func TestEncode_Passthrough(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{KeyText: "hello; world: 100%"})
	require.NoError(t, err)
	assert.Equal(t, "hello; world: 100%", out)
}

func TestEncode_TrimsSurroundingWhitespace(t *testing.T) {
	enc := New()
	out, err := enc.Encode(payload.Fields{KeyText: "  padded  "})
	require.NoError(t, err)
	assert.Equal(t, "padded", out)
}

func TestEncode_MissingText(t *testing.T) {
	enc := New()
	_, err := enc.Encode(payload.Fields{})

	var missing *payload.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, KeyText, missing.Field)
}
