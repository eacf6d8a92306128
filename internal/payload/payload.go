// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package payload defines the format encoder family: each supported QR
// payload format implements Encoder and deterministically turns a set of
// validated field values into the exact string embedded in the QR symbol.
package payload

import (
	"fmt"
	"sort"
	"strings"
)

// Encoder defines the interface all payload format encoders must implement.
type Encoder interface {
	// Name returns the format's identifier (e.g., "vcard", "wifi")
	Name() string

	// Title returns the human-readable format name shown in listings and forms
	Title() string

	// Fields returns the closed set of fields this format accepts, in
	// presentation order
	Fields() []FieldSpec

	// Encode produces the canonical payload string for the given fields.
	// Identical inputs always yield byte-identical output.
	Encode(f Fields) (string, error)
}

// FieldSpec describes a single input field of a payload format.
type FieldSpec struct {
	Key         string   // field key in the Fields map, e.g. "full_name"
	Label       string   // prompt/flag description, e.g. "Full Name"
	Placeholder string   // example value shown in interactive forms
	Required    bool     // Encode fails with MissingFieldError when absent
	Multiline   bool     // collected with a text area instead of an input
	Options     []string // closed value set; first entry is the default
}

// Fields holds raw field values keyed by FieldSpec.Key.
// Keys not defined by the target format are ignored.
type Fields map[string]string

// Get returns the trimmed value for key, or "" if unset.
func (f Fields) Get(key string) string {
	return strings.TrimSpace(f[key])
}

// Has reports whether key has a non-blank value.
func (f Fields) Has(key string) bool {
	return f.Get(key) != ""
}

// Require checks every required spec and returns a MissingFieldError
// naming the first one absent from f, in spec order.
func Require(f Fields, specs []FieldSpec) error {
	for _, s := range specs {
		if s.Required && !f.Has(s.Key) {
			return &MissingFieldError{Field: s.Key}
		}
	}
	return nil
}

// Register maps format names to their encoders. It is constructed
// explicitly at startup and never mutated afterwards.
type Register map[string]Encoder

// Add registers an encoder under its own name.
func (r Register) Add(e Encoder) {
	r[e.Name()] = e
}

// Get retrieves an encoder by format name.
func (r Register) Get(name string) (Encoder, error) {
	e, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return e, nil
}

// Available returns all registered format names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
