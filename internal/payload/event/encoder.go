// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package event encodes a calendar event as a minimal iCalendar block.
package event

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/validate"
)

// Field keys accepted by the event encoder.
const (
	KeySummary     = "summary"
	KeyStart       = "start"
	KeyEnd         = "end"
	KeyLocation    = "location"
	KeyDescription = "description"
)

// Encoder builds VCALENDAR/VEVENT blocks.
type Encoder struct{}

// New creates a new calendar event encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "event" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Calendar Event" }

// Fields returns the event field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeySummary, Label: "Summary", Placeholder: "Team offsite", Required: true},
		{Key: KeyStart, Label: "Start (YYYYMMDD or YYYYMMDDTHHMMSS)", Placeholder: "20260914T090000", Required: true},
		{Key: KeyEnd, Label: "End"},
		{Key: KeyLocation, Label: "Location"},
		{Key: KeyDescription, Label: "Description", Multiline: true},
	}
}

// Encode produces a VCALENDAR block containing one VEVENT with SUMMARY,
// DTSTART, then DTEND, LOCATION and DESCRIPTION when populated. Timestamps
// are normalized to YYYYMMDDTHHMMSSZ; a date without a time component
// defaults to 000000Z.
//
// The UID is a v5 UUID derived from the summary and start time, so the
// whole block is a pure function of its inputs.
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}

	start, err := normalizeStamp(KeyStart, f.Get(KeyStart))
	if err != nil {
		return "", err
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"SUMMARY:" + payload.EscapeVCard(f.Get(KeySummary)),
		"DTSTART:" + start,
	}
	if f.Has(KeyEnd) {
		end, err := normalizeStamp(KeyEnd, f.Get(KeyEnd))
		if err != nil {
			return "", err
		}
		lines = append(lines, "DTEND:"+end)
	}
	if f.Has(KeyLocation) {
		lines = append(lines, "LOCATION:"+payload.EscapeVCard(f.Get(KeyLocation)))
	}
	if f.Has(KeyDescription) {
		lines = append(lines, "DESCRIPTION:"+payload.EscapeVCard(f.Get(KeyDescription)))
	}
	lines = append(lines,
		"UID:"+eventUID(f.Get(KeySummary), start),
		"END:VEVENT",
		"END:VCALENDAR",
	)
	return strings.Join(lines, "\n"), nil
}

// normalizeStamp expands YYYYMMDD and YYYYMMDDTHHMM inputs to the full
// YYYYMMDDTHHMMSSZ form.
func normalizeStamp(key, s string) (string, error) {
	if !validate.EventStamp(s) {
		return "", payload.Invalid(key, "expected YYYYMMDD, YYYYMMDDTHHMM or YYYYMMDDTHHMMSS")
	}
	s = strings.TrimSuffix(s, "Z")
	switch len(s) {
	case 8:
		s += "T000000"
	case 13:
		s += "00"
	}
	return s + "Z", nil
}

// eventUID derives a stable UID from the event identity. Same event, same
// UID, every time.
func eventUID(summary, start string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("qrgen://event/"+summary+"/"+start))
	return id.String() + "@qrgen"
}
