// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package vcard encodes contact fields as a vCard 4.0 text block.
package vcard

import (
	"strings"

	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/validate"
)

// Field keys accepted by the vCard encoder.
const (
	KeyFullName    = "full_name"
	KeyOrg         = "org"
	KeyTitle       = "title"
	KeyRole        = "role"
	KeyEmailWork   = "email_work"
	KeyEmailHome   = "email_home"
	KeyTelCell     = "tel_cell"
	KeyTelWork     = "tel_work"
	KeyTelHome     = "tel_home"
	KeyTelFax      = "tel_fax"
	KeyBirthday    = "birthday"
	KeyAddressHome = "address_home"
	KeyNote        = "note"
	KeyURL         = "url"
	KeyTimezone    = "timezone"
)

// property maps a field key to the vCard property line it emits.
// Emission follows this order exactly; the canonical output is part of
// the CLI's stable contract.
//
// TEL type parameters are uppercase and EMAIL type parameters lowercase,
// matching what the common contact importers expect for each property.
type property struct {
	key  string
	prop string
}

var properties = []property{
	{KeyEmailWork, "EMAIL;TYPE=work"},
	{KeyEmailHome, "EMAIL;TYPE=home"},
	{KeyTitle, "TITLE"},
	{KeyRole, "ROLE"},
	{KeyFullName, "FN"},
	{KeyBirthday, "BDAY"},
	{KeyAddressHome, "ADR;TYPE=HOME"},
	{KeyNote, "NOTE"},
	{KeyTelCell, "TEL;TYPE=CELL"},
	{KeyTelWork, "TEL;TYPE=WORK"},
	{KeyTelHome, "TEL;TYPE=HOME"},
	{KeyTelFax, "TEL;TYPE=FAX"},
	{KeyURL, "URL"},
	{KeyTimezone, "TZ"},
	{KeyOrg, "ORG"},
}

// Encoder builds vCard 4.0 blocks.
type Encoder struct{}

// New creates a new vCard encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "vcard" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Contact Card (vCard 4.0)" }

// Fields returns the vCard field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeyFullName, Label: "Full Name", Placeholder: "Johnny Appleseed", Required: true},
		{Key: KeyOrg, Label: "Organization"},
		{Key: KeyTitle, Label: "Title"},
		{Key: KeyRole, Label: "Role"},
		{Key: KeyEmailWork, Label: "Work Email", Placeholder: "j.appleseed@work.example"},
		{Key: KeyEmailHome, Label: "Home Email"},
		{Key: KeyTelCell, Label: "Cell Phone", Placeholder: "+264 81 000 0000"},
		{Key: KeyTelWork, Label: "Work Phone"},
		{Key: KeyTelHome, Label: "Home Phone"},
		{Key: KeyTelFax, Label: "Fax"},
		{Key: KeyBirthday, Label: "Birthday (YYYYMMDD)", Placeholder: "19700101"},
		{Key: KeyAddressHome, Label: "Home Address (pobox;ext;street;locality;region;code;country)"},
		{Key: KeyNote, Label: "Note (keep it short)"},
		{Key: KeyURL, Label: "URL", Placeholder: "https://example.com"},
		{Key: KeyTimezone, Label: "Timezone", Placeholder: "Africa/Windhoek"},
	}
}

// Encode produces the vCard block. BEGIN, VERSION and END lines are always
// present; every other line is emitted only for populated fields, in fixed
// template order. ORG, when present, takes precedence over FN in most
// consuming applications; both lines are emitted regardless.
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}
	if err := checkShapes(f); err != nil {
		return "", err
	}

	lines := []string{"BEGIN:VCARD", "VERSION:4.0"}
	for _, p := range properties {
		if !f.Has(p.key) {
			continue
		}
		lines = append(lines, p.prop+":"+escapeValue(p.key, f.Get(p.key)))
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n"), nil
}

func checkShapes(f payload.Fields) error {
	for _, key := range []string{KeyEmailWork, KeyEmailHome} {
		if f.Has(key) && !validate.Email(f.Get(key)) {
			return payload.Invalid(key, "not a valid email address")
		}
	}
	for _, key := range []string{KeyTelCell, KeyTelWork, KeyTelHome, KeyTelFax} {
		if f.Has(key) && !validate.Phone(f.Get(key)) {
			return payload.Invalid(key, "not a dialable phone number")
		}
	}
	if !validate.Birthday(f.Get(KeyBirthday)) {
		return payload.Invalid(KeyBirthday, "must be a YYYYMMDD date")
	}
	if !validate.Address(f.Get(KeyAddressHome)) {
		return payload.Invalid(KeyAddressHome, "expected semicolon-separated address components")
	}
	if !validate.Note(f.Get(KeyNote)) {
		return payload.Invalid(KeyNote, "longer than 200 characters")
	}
	return nil
}

// escapeValue escapes vCard-reserved characters. The home address is
// structured: its semicolons separate ADR components and must survive
// unescaped, so only backslash and comma are escaped there.
func escapeValue(key, v string) string {
	if key == KeyAddressHome {
		return payload.Escape(v, `\,`)
	}
	return payload.EscapeVCard(v)
}
