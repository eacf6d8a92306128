// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package payment encodes a cryptocurrency payment request URI.
package payment

import (
	"strings"

	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/validate"
)

// Field keys accepted by the payment encoder.
const (
	KeyScheme  = "scheme"
	KeyAddress = "address"
	KeyAmount  = "amount"
	KeyLabel   = "label"
)

// Encoder builds bitcoin:-style payment URIs.
type Encoder struct{}

// New creates a new payment encoder.
func New() *Encoder {
	return &Encoder{}
}

// Name returns the format's identifier.
func (e *Encoder) Name() string { return "payment" }

// Title returns the human-readable format name.
func (e *Encoder) Title() string { return "Crypto Payment" }

// Fields returns the payment field set.
func (e *Encoder) Fields() []payload.FieldSpec {
	return []payload.FieldSpec{
		{Key: KeyAddress, Label: "Address", Placeholder: "bc1q...", Required: true},
		{Key: KeyScheme, Label: "Currency", Options: []string{"bitcoin", "ethereum", "litecoin"}},
		{Key: KeyAmount, Label: "Amount"},
		{Key: KeyLabel, Label: "Label"},
	}
}

// Encode produces <scheme>:<address>[?amount=<amt>][&label=<l>]. The
// amount must be a non-negative decimal and is emitted verbatim.
func (e *Encoder) Encode(f payload.Fields) (string, error) {
	if err := payload.Require(f, e.Fields()); err != nil {
		return "", err
	}

	address := f.Get(KeyAddress)
	if !validate.PaymentAddress(address) {
		return "", payload.Invalid(KeyAddress, "too short to be a payment address")
	}

	scheme := f.Get(KeyScheme)
	if scheme == "" {
		scheme = "bitcoin"
	}

	var params []string
	if f.Has(KeyAmount) {
		if !validate.Amount(f.Get(KeyAmount)) {
			return "", payload.Invalid(KeyAmount, "must be a non-negative decimal")
		}
		params = append(params, "amount="+f.Get(KeyAmount))
	}
	if f.Has(KeyLabel) {
		params = append(params, "label="+payload.PercentEncode(f.Get(KeyLabel)))
	}

	out := scheme + ":" + address
	if len(params) > 0 {
		out += "?" + strings.Join(params, "&")
	}
	return out, nil
}
