// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/m-spangenberg/qrgen/internal/payload"
)

// RunPayloadForm collects any format fields not already supplied. Values
// set via flags are shown as prefilled and left untouched when the user
// accepts them; blank optional fields stay absent from the field set.
func RunPayloadForm(enc payload.Encoder, fields payload.Fields) error {
	specs := enc.Fields()

	values := make([]string, len(specs))
	var groups []*huh.Group
	for i, spec := range specs {
		values[i] = fields.Get(spec.Key)
		groups = append(groups, huh.NewGroup(newField(spec, &values[i])))
	}

	if err := huh.NewForm(groups...).WithTheme(Theme()).Run(); err != nil {
		return err
	}

	for i, spec := range specs {
		if values[i] != "" {
			fields[spec.Key] = values[i]
		}
	}
	return nil
}

// RunFormatSelect prompts for a payload format.
func RunFormatSelect(value *string, encoders payload.Register) error {
	options := make([]huh.Option[string], 0, len(encoders))
	for _, name := range encoders.Available() {
		options = append(options, huh.NewOption(encoders[name].Title(), name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Payload format").
				Options(options...).
				Filtering(true).
				Value(value).
				Height(10),
		),
	).WithTheme(Theme()).Run()
}

func newField(spec payload.FieldSpec, value *string) huh.Field {
	if len(spec.Options) > 0 {
		options := make([]huh.Option[string], len(spec.Options))
		for i, o := range spec.Options {
			options[i] = huh.NewOption(o, o)
		}
		if *value == "" {
			*value = spec.Options[0]
		}
		return huh.NewSelect[string]().
			Title(spec.Label).
			Options(options...).
			Value(value)
	}

	if spec.Multiline {
		text := huh.NewText().
			Title(spec.Label).
			Placeholder(spec.Placeholder).
			Value(value)
		if spec.Required {
			text = text.Validate(requiredValidator(spec.Label))
		}
		return text
	}

	input := huh.NewInput().
		Title(spec.Label).
		Placeholder(spec.Placeholder).
		Value(value)
	if spec.Required {
		input = input.Validate(requiredValidator(spec.Label))
	}
	return input
}
