// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesSquareImage(t *testing.T) {
	img, err := Render("https://example.com", Options{Size: 256})
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestRender_DefaultsSize(t *testing.T) {
	img, err := Render("hello", Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestRender_RejectsEmptyPayload(t *testing.T) {
	_, err := Render("", Options{})
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestRender_RejectsOversizedImage(t *testing.T) {
	_, err := Render("hello", Options{Size: MaxSize + 1})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestRender_RejectsUnknownLevel(t *testing.T) {
	_, err := Render("hello", Options{Level: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error correction level")
}

func TestRender_LevelCaseInsensitive(t *testing.T) {
	_, err := Render("hello", Options{Level: "q"})
	assert.NoError(t, err)
}

func TestRender_CapacityExceeded(t *testing.T) {
	// Far beyond the ~1273 byte limit of a version 40 symbol at level H.
	payload := strings.Repeat("x", 5000)
	_, err := Render(payload, Options{Level: "H"})

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "H", capErr.Level)
	assert.Contains(t, capErr.Error(), "exceeds QR capacity")
}

func TestRender_CapacityDependsOnLevel(t *testing.T) {
	// Fits at level L (capacity ~2953 bytes) but not at level H.
	payload := strings.Repeat("x", 2000)

	_, err := Render(payload, Options{Level: "L"})
	require.NoError(t, err)

	_, err = Render(payload, Options{Level: "H"})
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
}

func TestRender_RejectsBadColors(t *testing.T) {
	_, err := Render("hello", Options{Foreground: "#zzz"})
	require.Error(t, err)

	_, err = Render("hello", Options{Background: "#12345"})
	require.Error(t, err)
}

func TestPNG_Deterministic(t *testing.T) {
	opts := Options{Size: 128, Level: "M", Foreground: "#0B8457", Background: "#E8F6EF"}

	first, err := PNG("geo:45.0,-122.5", opts)
	require.NoError(t, err)
	second, err := PNG("geo:45.0,-122.5", opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	img, err := png.Decode(bytes.NewReader(first))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}
