// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package validate provides input shape checks for payload fields.
// Checks only reject malformed input; they never reformat it, so the
// encoder stage always sees the literal value the user supplied.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRE = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.\w+$`)
	phoneRE = regexp.MustCompile(`^[+\d][\d\s\-()]{7,}$`)
	stampRE = regexp.MustCompile(`^\d{8}(T\d{4}(\d{2})?)?Z?$`)
)

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailRE.MatchString(s)
}

// Phone reports whether s is a dialable number: an optional leading "+",
// then digits, spaces, hyphens and parentheses, at least 8 characters.
func Phone(s string) bool {
	return phoneRE.MatchString(s)
}

// Birthday reports whether s is a valid YYYYMMDD calendar date.
// Empty input is accepted; the field is optional everywhere it appears.
func Birthday(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	if len(s) != 8 {
		return false
	}
	_, err := time.Parse("20060102", s)
	return err == nil
}

// EventStamp reports whether s is an event timestamp of the form
// YYYYMMDD, YYYYMMDDTHHMM or YYYYMMDDTHHMMSS, with an optional trailing Z.
// Both the date and the time of day must be in range.
func EventStamp(s string) bool {
	if !stampRE.MatchString(s) {
		return false
	}
	s = strings.TrimSuffix(s, "Z")
	var layout string
	switch len(s) {
	case 8:
		layout = "20060102"
	case 13:
		layout = "20060102T1504"
	case 15:
		layout = "20060102T150405"
	default:
		return false
	}
	_, err := time.Parse(layout, s)
	return err == nil
}

// Address reports whether s has enough semicolon-separated components to
// be a structured postal address (pobox;ext;street;...).
// Empty input is accepted.
func Address(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	return strings.Count(s, ";") >= 2
}

// Note reports whether s fits in a QR-friendly note.
func Note(s string) bool {
	return len(s) <= 200
}

// Latitude reports whether s parses as a number in [-90, 90].
func Latitude(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v >= -90 && v <= 90
}

// Longitude reports whether s parses as a number in [-180, 180].
func Longitude(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v >= -180 && v <= 180
}

// Numeric reports whether s parses as a decimal number.
func Numeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Amount reports whether s parses as a non-negative decimal.
func Amount(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v >= 0
}

// PaymentAddress reports whether s is plausibly a payment address.
// Anything shorter than 12 characters is rejected outright.
func PaymentAddress(s string) bool {
	return len(strings.TrimSpace(s)) >= 12
}

// WiFiAuth reports whether s names a supported authentication type
// (WPA, WEP or nopass, case-insensitive).
func WiFiAuth(s string) bool {
	switch strings.ToLower(s) {
	case "wpa", "wep", "nopass":
		return true
	}
	return false
}
