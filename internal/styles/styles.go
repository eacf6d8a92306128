// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package styles provides the predefined color palettes and hex color
// helpers used when rendering QR symbols.
package styles

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Palette is a foreground/background color pair.
type Palette struct {
	Foreground string
	Background string
}

// Custom is the palette name that defers to user-supplied colors.
const Custom = "Custom"

var palettes = map[string]Palette{
	"Classic":     {"#000000", "#FFFFFF"},
	"Brand Blue":  {"#1FA2D5", "#FFFFFF"},
	"Warm Sunset": {"#FF6B6B", "#FFF1E6"},
	"Forest":      {"#0B8457", "#E8F6EF"},
	"Violet":      {"#6A0DAD", "#F5E9FF"},
	"Slate":       {"#0F172A", "#E6EEF6"},
	"Nord":        {"#2E3440", "#D8DEE9"},
	"Retro":       {"#FF1493", "#00BFFF"},
	"Sunset":      {"#FF4E50", "#F9D423"},
	"Ocean":       {"#1CB5E0", "#000046"},
}

// Names returns all palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named palette.
func Lookup(name string) (Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// Resolve returns the foreground and background hex colors for a palette
// name. An unknown or Custom name falls back to the supplied colors, then
// to black on white.
func Resolve(name, customFg, customBg string) (fg, bg string) {
	if name != "" && name != Custom {
		if p, ok := palettes[name]; ok {
			return p.Foreground, p.Background
		}
	}
	fg = NormalizeHex(customFg)
	bg = NormalizeHex(customBg)
	if fg == "" {
		fg = "#000000"
	}
	if bg == "" {
		bg = "#FFFFFF"
	}
	return fg, bg
}

// NormalizeHex prefixes bare 3 or 6 digit hex colors with "#". Anything
// else is returned unchanged.
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		return s
	}
	if len(s) == 3 || len(s) == 6 {
		for _, r := range s {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return s
			}
		}
		return "#" + s
	}
	return s
}

// ParseHex converts a #RGB or #RRGGBB color to a color.RGBA.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(NormalizeHex(s), "#")
	var r, g, b uint8
	switch len(s) {
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
