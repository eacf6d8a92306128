// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package applink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/payload/weburl"
)

func TestEncode_SharesURLRules(t *testing.T) {
	enc := New()
	assert.Equal(t, "applink", enc.Name())

	out, err := enc.Encode(payload.Fields{
		weburl.KeyURL: "play.google.com/store/apps/details?id=com.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://play.google.com/store/apps/details?id=com.example", out)
}
