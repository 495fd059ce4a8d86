// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/shayne/dialogkit/internal/dialog"
	"github.com/shayne/dialogkit/internal/dialogfile"
)

// parseButtonFlag parses Label[:semantics][:default][:cancel][=result]. An
// empty label selects the stock button for the semantics; a label alone is
// an "other" button.
func parseButtonFlag(value string) (dialogfile.Button, error) {
	spec, result, _ := strings.Cut(value, "=")
	parts := strings.Split(spec, ":")
	b := dialogfile.Button{
		Label:  strings.TrimSpace(parts[0]),
		Result: strings.TrimSpace(result),
	}
	for i, part := range parts[1:] {
		part = strings.ToLower(strings.TrimSpace(part))
		switch {
		case part == "default":
			b.Default = true
		case part == "cancel" && i > 0:
			b.Cancel = true
		case i == 0:
			s, err := dialog.ParseSemantics(part)
			if err != nil {
				return dialogfile.Button{}, fmt.Errorf("invalid button %q: %w", value, err)
			}
			b.Semantics = s
		default:
			return dialogfile.Button{}, fmt.Errorf("invalid button %q: unknown flag %q", value, part)
		}
	}
	if b.Semantics == dialog.None {
		if b.Label == "" {
			return dialogfile.Button{}, fmt.Errorf("invalid button %q: needs a label or semantics", value)
		}
		b.Semantics = dialog.Other
	}
	return b, nil
}

// parseLabelMapping parses semantics=Label.
func parseLabelMapping(entry string) (string, string, error) {
	name, label, ok := strings.Cut(entry, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid label mapping %q (expected semantics=Label)", entry)
	}
	s, err := dialog.ParseSemantics(strings.TrimSpace(name))
	if err != nil || s == dialog.None {
		return "", "", fmt.Errorf("invalid label mapping %q (unknown semantics)", entry)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return "", "", fmt.Errorf("invalid label mapping %q (empty label)", entry)
	}
	return s.String(), label, nil
}
