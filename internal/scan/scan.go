// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package scan decodes QR symbol images back into payload strings.
package scan

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrDecode indicates the image did not contain a readable QR symbol.
var ErrDecode = errors.New("failed to decode QR code")

// Decode scans a QR symbol image and returns its payload string.
func Decode(img image.Image) (string, error) {
	if img == nil {
		return "", ErrDecode
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", errors.Join(ErrDecode, err)
	}

	reader := qrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		return "", errors.Join(ErrDecode, err)
	}

	return result.GetText(), nil
}

// DecodeFile scans a QR symbol from a PNG or JPEG file.
func DecodeFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck

	img, _, err := image.Decode(f)
	if err != nil {
		return "", errors.Join(ErrDecode, err)
	}
	return Decode(img)
}

// IsVCard reports whether payload looks like a vCard block.
func IsVCard(payload string) bool {
	return strings.HasPrefix(payload, "BEGIN:VCARD")
}

// ContactField is one decoded vCard property.
type ContactField struct {
	Name  string
	Value string
}

// ParseVCard decodes a vCard payload into its property fields, skipping
// the envelope lines. Fields are sorted by property name so the output
// is stable.
func ParseVCard(payload string) ([]ContactField, error) {
	dec := vcard.NewDecoder(strings.NewReader(crlf(payload)))
	card, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(card))
	for name := range card {
		if name == "VERSION" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var fields []ContactField
	for _, name := range names {
		entries := card[name]
		for _, f := range entries {
			if f.Value == "" {
				continue
			}
			label := name
			if t := f.Params.Get(vcard.ParamType); t != "" {
				label = name + " (" + t + ")"
			}
			fields = append(fields, ContactField{Name: label, Value: f.Value})
		}
	}
	return fields, nil
}

// crlf rewrites bare newlines to the CRLF line endings the vCard decoder
// expects.
func crlf(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
