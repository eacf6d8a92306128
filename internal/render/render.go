// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package render turns canonical payload strings into QR symbol images.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	qrgen "github.com/skip2/go-qrcode"

	"github.com/m-spangenberg/qrgen/internal/styles"
)

// Rendering errors.
var (
	ErrEmptyPayload = errors.New("payload is empty")
	ErrInvalidSize  = errors.New("invalid image size")
)

// DefaultSize is the default output image size in pixels.
const DefaultSize = 512

// MaxSize is the largest supported output image size.
const MaxSize = 4096

// DefaultLevel is the error correction level used when none is requested.
const DefaultLevel = "H"

// CapacityError reports a payload too long for the QR symbol at the
// requested error correction level.
type CapacityError struct {
	Level string
	cause error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("payload exceeds QR capacity at error correction level %s", e.Level)
}

func (e *CapacityError) Unwrap() error { return e.cause }

// Options control QR symbol rendering.
type Options struct {
	Size       int    // output pixels per side; DefaultSize when zero
	Level      string // error correction level: L, M, Q or H
	Foreground string // hex module color
	Background string // hex background color

	// Shape selects the module drawer: square (default), gapped, circle,
	// rounded, vertical or horizontal. Unknown names fall back to square.
	Shape string

	// Transparent renders the background fully transparent instead of
	// filling it with the background color.
	Transparent bool

	// Gradient replaces one of the solid colors with a linear gradient.
	Gradient *Gradient

	// DisableQuietZone drops the four-module quiet zone border. Scanners
	// need the quiet zone; disable it only when the compositor adds its
	// own border.
	DisableQuietZone bool
}

// Gradient describes a two-stop linear color gradient.
type Gradient struct {
	Start  string  // hex color at the gradient origin
	End    string  // hex color at the gradient terminus
	Angle  float64 // degrees; 0 runs left to right, 90 top to bottom
	Target string  // "foreground" (default) or "background"
}

var levels = map[string]qrgen.RecoveryLevel{
	"L": qrgen.Low,
	"M": qrgen.Medium,
	"Q": qrgen.High,
	"H": qrgen.Highest,
}

// Render encodes payload into a QR symbol image.
func Render(payload string, opts Options) (image.Image, error) {
	qr, size, err := build(payload, opts)
	if err != nil {
		return nil, err
	}
	if styled(opts) {
		return drawStyled(qr, size, opts)
	}
	return qr.Image(size), nil
}

// styled reports whether opts need the module-drawing path. Plain square
// modules on a solid background take the library's direct pixel path.
func styled(opts Options) bool {
	shape := strings.ToLower(opts.Shape)
	return (shape != "" && shape != "square") || opts.Transparent || opts.Gradient != nil
}

// PNG encodes payload into a PNG-encoded QR symbol.
func PNG(payload string, opts Options) ([]byte, error) {
	img, err := Render(payload, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func build(payload string, opts Options) (*qrgen.QRCode, int, error) {
	if payload == "" {
		return nil, 0, ErrEmptyPayload
	}

	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		return nil, 0, ErrInvalidSize
	}

	level := opts.Level
	if level == "" {
		level = DefaultLevel
	}
	recovery, ok := levels[strings.ToUpper(level)]
	if !ok {
		return nil, 0, fmt.Errorf("unknown error correction level %q", opts.Level)
	}

	qr, err := qrgen.New(payload, recovery)
	if err != nil {
		// skip2/go-qrcode exposes no sentinel for oversized content;
		// its error text is the only capacity signal available.
		if strings.Contains(err.Error(), "too long") {
			return nil, 0, &CapacityError{Level: strings.ToUpper(level), cause: err}
		}
		return nil, 0, fmt.Errorf("failed to encode QR code: %w", err)
	}

	if opts.Foreground != "" {
		c, err := styles.ParseHex(opts.Foreground)
		if err != nil {
			return nil, 0, err
		}
		qr.ForegroundColor = c
	}
	if opts.Background != "" {
		c, err := styles.ParseHex(opts.Background)
		if err != nil {
			return nil, 0, err
		}
		qr.BackgroundColor = c
	}
	qr.DisableBorder = opts.DisableQuietZone

	return qr, size, nil
}
