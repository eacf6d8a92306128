// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package render

import (
	"image"
	"math"
	"strings"

	"github.com/fogleman/gg"
	qrgen "github.com/skip2/go-qrcode"

	"github.com/m-spangenberg/qrgen/internal/styles"
)

// drawStyled renders the symbol module by module instead of taking the
// library's pixel path, so shapes other than squares, gradient fills and
// transparent backgrounds become possible. The module grid comes from
// Bitmap and includes the quiet zone unless it was disabled.
func drawStyled(qr *qrgen.QRCode, size int, opts Options) (image.Image, error) {
	grid := qr.Bitmap()
	n := len(grid)
	cell := float64(size) / float64(n)

	dc := gg.NewContext(size, size)

	fgGradient := opts.Gradient != nil && opts.Gradient.Target != "background"
	bgGradient := opts.Gradient != nil && opts.Gradient.Target == "background"

	// The canvas starts fully transparent; a transparent render just
	// skips the background fill. A background gradient has no single
	// color to show through, so transparency wins when both are set.
	if !opts.Transparent {
		if bgGradient {
			grad, err := linearGradient(opts.Gradient, float64(size))
			if err != nil {
				return nil, err
			}
			dc.SetFillStyle(grad)
			dc.DrawRectangle(0, 0, float64(size), float64(size))
			dc.Fill()
		} else {
			dc.SetColor(qr.BackgroundColor)
			dc.Clear()
		}
	}

	if fgGradient {
		grad, err := linearGradient(opts.Gradient, float64(size))
		if err != nil {
			return nil, err
		}
		dc.SetFillStyle(grad)
	} else {
		dc.SetColor(qr.ForegroundColor)
	}

	shape := strings.ToLower(opts.Shape)
	for y := range grid {
		for x := range grid[y] {
			if !grid[y][x] {
				continue
			}
			drawModule(dc, shape, grid, x, y, cell)
		}
	}
	dc.Fill()

	return dc.Image(), nil
}

// drawModule adds one dark module's outline to the current path. Shapes
// that read as continuous runs (rounded, vertical, horizontal) bridge to
// the dark neighbor right of or below the module, so only run endpoints
// keep their caps.
func drawModule(dc *gg.Context, shape string, grid [][]bool, x, y int, cell float64) {
	px := float64(x) * cell
	py := float64(y) * cell

	switch shape {
	case "gapped":
		inset := cell * 0.1
		dc.DrawRectangle(px+inset, py+inset, cell-2*inset, cell-2*inset)
	case "circle", "dot":
		dc.DrawCircle(px+cell/2, py+cell/2, cell/2)
	case "rounded":
		dc.DrawRoundedRectangle(px, py, cell, cell, cell*0.35)
		if darkAt(grid, x+1, y) {
			dc.DrawRectangle(px+cell/2, py, cell, cell)
		}
		if darkAt(grid, x, y+1) {
			dc.DrawRectangle(px, py+cell/2, cell, cell)
		}
	case "vertical":
		w := cell * 0.8
		dc.DrawCircle(px+cell/2, py+cell/2, w/2)
		if darkAt(grid, x, y+1) {
			dc.DrawRectangle(px+(cell-w)/2, py+cell/2, w, cell)
		}
	case "horizontal":
		h := cell * 0.8
		dc.DrawCircle(px+cell/2, py+cell/2, h/2)
		if darkAt(grid, x+1, y) {
			dc.DrawRectangle(px, py+(cell-h)/2, cell, h)
		}
	default:
		dc.DrawRectangle(px, py, cell, cell)
	}
}

func darkAt(grid [][]bool, x, y int) bool {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return false
	}
	return grid[y][x]
}

// linearGradient builds the two-stop gradient across a size x size
// canvas. The axis runs through the center at the requested angle, long
// enough to cover the whole canvas in any orientation.
func linearGradient(g *Gradient, size float64) (gg.Gradient, error) {
	start := g.Start
	if start == "" {
		start = "#000000"
	}
	end := g.End
	if end == "" {
		end = "#FFFFFF"
	}
	c1, err := styles.ParseHex(start)
	if err != nil {
		return nil, err
	}
	c2, err := styles.ParseHex(end)
	if err != nil {
		return nil, err
	}

	theta := g.Angle * math.Pi / 180
	vx, vy := math.Cos(theta), math.Sin(theta)
	half := (math.Abs(vx) + math.Abs(vy)) * size / 2
	cx := size / 2

	grad := gg.NewLinearGradient(cx-vx*half, cx-vy*half, cx+vx*half, cx+vy*half)
	grad.AddColorStop(0, c1)
	grad.AddColorStop(1, c2)
	return grad, nil
}
