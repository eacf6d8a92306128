// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package payload

import (
	"net/url"
	"strings"
)

// Escape backslash-escapes every occurrence of a reserved rune in s.
// A single pass over the input guarantees escapes introduced for one rune
// are never re-escaped for another.
func Escape(s, reserved string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(reserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EscapeVCard escapes the vCard-reserved characters backslash, semicolon
// and comma, and folds literal newlines into the \n escape sequence.
func EscapeVCard(s string) string {
	s = Escape(s, `\;,`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}

// EscapeWiFi escapes the characters reserved in WIFI: config strings and
// MECARD records: backslash, semicolon, comma and colon.
func EscapeWiFi(s string) string {
	return Escape(s, `\;,:`)
}

// PercentEncode percent-encodes s for embedding in a URI query value,
// using %20 for spaces rather than "+".
func PercentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
