// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package scan

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-spangenberg/qrgen/internal/render"
)

func TestDecode_RoundTrip(t *testing.T) {
	payloads := []string{
		"https://example.com",
		"WIFI:S:HomeNet;T:WPA;P:hunter2;;",
		"geo:45.0,-122.5",
		"tel:+264810000000",
	}
	for _, payload := range payloads {
		img, err := render.Render(payload, render.Options{Size: 256})
		require.NoError(t, err)

		got, err := Decode(img)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	}
}

func TestDecode_ShapedModulesRoundTrip(t *testing.T) {
	for _, shape := range []string{"rounded", "circle", "gapped"} {
		img, err := render.Render("https://example.com", render.Options{
			Size:  256,
			Shape: shape,
		})
		require.NoError(t, err, shape)

		got, err := Decode(img)
		require.NoError(t, err, shape)
		assert.Equal(t, "https://example.com", got, shape)
	}
}

func TestDecode_GradientForegroundRoundTrip(t *testing.T) {
	img, err := render.Render("tel:+264810000000", render.Options{
		Size:     256,
		Gradient: &render.Gradient{Start: "#000000", End: "#16325A", Angle: 90},
	})
	require.NoError(t, err)

	got, err := Decode(img)
	require.NoError(t, err)
	assert.Equal(t, "tel:+264810000000", got)
}

func TestDecode_NilImage(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestDecode_BlankImage(t *testing.T) {
	_, err := Decode(image.NewRGBA(image.Rect(0, 0, 64, 64)))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestDecodeFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qr.png")
	data, err := render.PNG("mailto:user@example.com", render.Options{Size: 256})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mailto:user@example.com", got)
}

func TestDecodeFile_MissingFile(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestDecodeFile_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	_, err := DecodeFile(path)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestIsVCard(t *testing.T) {
	assert.True(t, IsVCard("BEGIN:VCARD\nVERSION:4.0\nEND:VCARD"))
	assert.False(t, IsVCard("https://example.com"))
}

func TestParseVCard(t *testing.T) {
	payload := "BEGIN:VCARD\nVERSION:4.0\nFN:Johnny Appleseed\nTEL;TYPE=CELL:+264810000000\nEND:VCARD"

	fields, err := ParseVCard(payload)
	require.NoError(t, err)
	require.Len(t, fields, 2)

	assert.Equal(t, "FN", fields[0].Name)
	assert.Equal(t, "Johnny Appleseed", fields[0].Value)
	assert.Equal(t, "TEL (CELL)", fields[1].Name)
	assert.Equal(t, "+264810000000", fields[1].Value)
}

func TestParseVCard_Malformed(t *testing.T) {
	_, err := ParseVCard("not a vcard")
	require.Error(t, err)
}
