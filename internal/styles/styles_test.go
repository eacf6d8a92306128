// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package styles

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	assert.Len(t, names, 10)
	assert.Equal(t, "Brand Blue", names[0])
	assert.Contains(t, names, "Classic")
	assert.Contains(t, names, "Ocean")
	assert.IsIncreasing(t, names)
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("Classic")
	require.True(t, ok)
	assert.Equal(t, "#000000", p.Foreground)
	assert.Equal(t, "#FFFFFF", p.Background)

	_, ok = Lookup("Neon Dreams")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	fg, bg := Resolve("Ocean", "", "")
	assert.Equal(t, "#1CB5E0", fg)
	assert.Equal(t, "#000046", bg)

	fg, bg = Resolve(Custom, "ff0000", "00ff00")
	assert.Equal(t, "#ff0000", fg)
	assert.Equal(t, "#00ff00", bg)

	fg, bg = Resolve("", "", "")
	assert.Equal(t, "#000000", fg)
	assert.Equal(t, "#FFFFFF", bg)
}

func TestNormalizeHex(t *testing.T) {
	assert.Equal(t, "#abc123", NormalizeHex("abc123"))
	assert.Equal(t, "#f0f", NormalizeHex("f0f"))
	assert.Equal(t, "#already", NormalizeHex("#already"))
	assert.Equal(t, "notahex", NormalizeHex("notahex"))
	assert.Equal(t, "", NormalizeHex("  "))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#FF6B6B")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 255}, c)

	c, err = ParseHex("#f0f")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 255}, c)

	c, err = ParseHex("0B8457")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x0B, G: 0x84, B: 0x57, A: 255}, c)

	_, err = ParseHex("#xyz")
	require.Error(t, err)

	_, err = ParseHex("#12345")
	require.Error(t, err)
}
