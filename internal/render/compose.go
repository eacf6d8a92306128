// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"

	"github.com/m-spangenberg/qrgen/internal/styles"
)

// ComposeOptions control branding applied around a rendered QR symbol.
type ComposeOptions struct {
	Border       int    // border width in pixels
	BorderColor  string // hex; falls back to the background color
	CornerRadius int    // rounds both the QR tile and the outer edge

	Header      string
	Footer      string
	HeaderAlign string // left, center or right; center when empty
	FooterAlign string
	TextColor   string // hex; falls back to the foreground color

	Logo        image.Image
	LogoScale   float64 // fraction of the QR side, default 0.2
	LogoOpacity float64 // 0..1, default 1
	LogoClip    string  // none, circle or box cutout behind the logo

	// Transparent leaves the canvas unfilled so a transparent render
	// stays transparent through compositing.
	Transparent bool

	Foreground string // hex, used for text fallback
	Background string // hex, used for border fallback
}

const textBandPad = 8

// Compose draws the QR symbol onto a branded canvas: border, rounded
// corners, header and footer text, and a centered logo overlay. A zero
// options value returns an image visually identical to the input.
func Compose(qr image.Image, opts ComposeOptions) image.Image {
	w := qr.Bounds().Dx()
	h := qr.Bounds().Dy()
	border := max(0, opts.Border)

	canvasW := w + border*2

	headerLines, lineH := wrapText(opts.Header, canvasW-border*2-2*textBandPad)
	footerLines, _ := wrapText(opts.Footer, canvasW-border*2-2*textBandPad)
	headerH := bandHeight(headerLines, lineH)
	footerH := bandHeight(footerLines, lineH)

	canvasH := h + border*2 + headerH + footerH

	dc := gg.NewContext(canvasW, canvasH)
	if !opts.Transparent {
		dc.SetColor(resolveColor(opts.BorderColor, opts.Background, color.White))
		dc.Clear()
	}

	// QR tile, optionally with rounded corners
	x, y := float64(border), float64(border+headerH)
	if opts.CornerRadius > 0 {
		dc.Push()
		dc.DrawRoundedRectangle(x, y, float64(w), float64(h), float64(opts.CornerRadius))
		dc.Clip()
		dc.DrawImage(qr, int(x), int(y))
		dc.Pop()
	} else {
		dc.DrawImage(qr, int(x), int(y))
	}

	textColor := resolveColor(opts.TextColor, opts.Foreground, color.Black)
	drawBand(dc, headerLines, lineH, textBandPad/2, canvasW, opts.HeaderAlign, textColor)
	drawBand(dc, footerLines, lineH, canvasH-footerH+textBandPad/2, canvasW, opts.FooterAlign, textColor)

	if opts.Logo != nil {
		overlayLogo(dc, opts, int(x), int(y), w, h)
	}

	out := dc.Image()
	if opts.CornerRadius > 0 {
		out = roundOuter(out, opts.CornerRadius)
	}
	return out
}

// wrapText splits s into lines that fit maxWidth, using the context's
// default face for measurement. Returns nil for empty text.
func wrapText(s string, maxWidth int) ([]string, int) {
	if s == "" {
		return nil, 0
	}
	if maxWidth < 20 {
		maxWidth = 20
	}
	m := gg.NewContext(1, 1)
	lines := m.WordWrap(s, float64(maxWidth))
	_, lh := m.MeasureString("M")
	return lines, int(lh) + 4
}

func bandHeight(lines []string, lineH int) int {
	if len(lines) == 0 {
		return 0
	}
	return len(lines)*lineH + textBandPad
}

func drawBand(dc *gg.Context, lines []string, lineH, top, canvasW int, align string, c color.Color) {
	if len(lines) == 0 {
		return
	}
	dc.SetColor(c)
	for i, line := range lines {
		lw, _ := dc.MeasureString(line)
		var x float64
		switch align {
		case "left":
			x = textBandPad
		case "right":
			x = float64(canvasW) - textBandPad - lw
		default:
			x = (float64(canvasW) - lw) / 2
		}
		dc.DrawString(line, x, float64(top+(i+1)*lineH-4))
	}
}

// overlayLogo scales the logo to a fraction of the QR side, optionally
// punches a cutout behind it, and draws it centered with the requested
// opacity.
func overlayLogo(dc *gg.Context, opts ComposeOptions, qrX, qrY, qrW, qrH int) {
	scale := opts.LogoScale
	if scale <= 0 || scale > 1 {
		scale = 0.2
	}
	side := max(1, int(float64(qrW)*scale))

	cx := qrX + qrW/2
	cy := qrY + qrH/2

	if !opts.Transparent && (opts.LogoClip == "circle" || opts.LogoClip == "box") {
		pad := max(2, side/10)
		dc.SetColor(resolveColor(opts.Background, "", color.White))
		if opts.LogoClip == "circle" {
			dc.DrawCircle(float64(cx), float64(cy), float64(side+pad*2)/2)
		} else {
			half := float64(side+pad*2) / 2
			dc.DrawRoundedRectangle(float64(cx)-half, float64(cy)-half, half*2, half*2, float64(pad))
		}
		dc.Fill()
	}

	logo := scaleImage(opts.Logo, side)
	opacity := opts.LogoOpacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	if opacity < 1 {
		logo = fade(logo, opacity)
	}
	dc.DrawImage(logo, cx-side/2, cy-side/2)
}

// scaleImage resizes img to side x side.
func scaleImage(img image.Image, side int) image.Image {
	dst := gg.NewContext(side, side)
	sw := float64(img.Bounds().Dx())
	sh := float64(img.Bounds().Dy())
	dst.Scale(float64(side)/sw, float64(side)/sh)
	dst.DrawImage(img, 0, 0)
	return dst.Image()
}

// fade multiplies the image's alpha channel by opacity.
func fade(img image.Image, opacity float64) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(b)
	mask := image.NewUniform(color.Alpha{A: uint8(opacity * 255)})
	draw.DrawMask(out, b, img, b.Min, mask, image.Point{}, draw.Over)
	return out
}

// roundOuter applies a rounded-rectangle alpha mask to the whole canvas.
func roundOuter(img image.Image, radius int) image.Image {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.Clip()
	dc.DrawImage(img, 0, 0)
	return dc.Image()
}

// resolveColor parses the first non-empty hex color, falling back to def.
func resolveColor(primary, secondary string, def color.Color) color.Color {
	for _, s := range []string{primary, secondary} {
		if s == "" {
			continue
		}
		if c, err := styles.ParseHex(s); err == nil {
			return c
		}
	}
	return def
}
