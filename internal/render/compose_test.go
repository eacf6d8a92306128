// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_ZeroOptionsKeepsDimensions(t *testing.T) {
	qr, err := Render("hello", Options{Size: 128})
	require.NoError(t, err)

	out := Compose(qr, ComposeOptions{})
	assert.Equal(t, 128, out.Bounds().Dx())
	assert.Equal(t, 128, out.Bounds().Dy())
}

func TestCompose_BorderGrowsCanvas(t *testing.T) {
	qr, err := Render("hello", Options{Size: 128})
	require.NoError(t, err)

	out := Compose(qr, ComposeOptions{Border: 16})
	assert.Equal(t, 160, out.Bounds().Dx())
	assert.Equal(t, 160, out.Bounds().Dy())
}

func TestCompose_HeaderAddsBand(t *testing.T) {
	qr, err := Render("hello", Options{Size: 128})
	require.NoError(t, err)

	plain := Compose(qr, ComposeOptions{Border: 16})
	titled := Compose(qr, ComposeOptions{Border: 16, Header: "Scan me"})
	assert.Equal(t, plain.Bounds().Dx(), titled.Bounds().Dx())
	assert.Greater(t, titled.Bounds().Dy(), plain.Bounds().Dy())
}

func TestCompose_FooterAddsBand(t *testing.T) {
	qr, err := Render("hello", Options{Size: 128})
	require.NoError(t, err)

	plain := Compose(qr, ComposeOptions{Border: 16})
	footed := Compose(qr, ComposeOptions{Border: 16, Footer: "example.com"})
	assert.Greater(t, footed.Bounds().Dy(), plain.Bounds().Dy())
}

func TestCompose_BorderColorFills(t *testing.T) {
	qr, err := Render("hello", Options{Size: 128})
	require.NoError(t, err)

	out := Compose(qr, ComposeOptions{Border: 16, BorderColor: "#FF0000"})
	r, g, b, _ := out.At(2, 2).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
}

func TestCompose_LogoOverlay(t *testing.T) {
	qr, err := Render("https://example.com", Options{Size: 256, Level: "H"})
	require.NoError(t, err)

	logo := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			logo.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	out := Compose(qr, ComposeOptions{Logo: logo, LogoScale: 0.2, LogoClip: "circle"})
	assert.Equal(t, 256, out.Bounds().Dx())

	// Center pixel sits under the logo.
	r, _, _, _ := out.At(128, 128).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
}

func TestCompose_TransparentKeepsBorderUnfilled(t *testing.T) {
	qr, err := Render("hello", Options{Size: 128, Transparent: true})
	require.NoError(t, err)

	out := Compose(qr, ComposeOptions{Border: 16, Transparent: true})
	require.Equal(t, 160, out.Bounds().Dx())

	_, _, _, a := out.At(2, 2).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestCompose_RoundedCornersClipOuterEdge(t *testing.T) {
	qr, err := Render("hello", Options{Size: 128})
	require.NoError(t, err)

	out := Compose(qr, ComposeOptions{Border: 16, CornerRadius: 24})
	_, _, _, a := out.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), a)
}
