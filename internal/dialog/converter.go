// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// ResultConverter maps the activated button to a result. btn is nil when the
// dialog closed without a button. Converters must not panic.
type ResultConverter[R any] func(btn *ButtonSpec) R

// ButtonConverter returns the activated button itself.
func ButtonConverter() ResultConverter[*ButtonSpec] {
	return func(btn *ButtonSpec) *ButtonSpec {
		return btn
	}
}

// SemanticsConverter looks the activated button's semantics up in table.
// Buttons missing from the table, and closing without a button, yield
// fallback.
func SemanticsConverter[R any](table map[Semantics]R, fallback R) ResultConverter[R] {
	copied := make(map[Semantics]R, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return func(btn *ButtonSpec) R {
		if btn == nil {
			return fallback
		}
		if v, ok := copied[btn.Semantics]; ok {
			return v
		}
		return fallback
	}
}

// LabelConverter maps by button label, falling back like SemanticsConverter.
func LabelConverter[R any](table map[string]R, fallback R) ResultConverter[R] {
	copied := make(map[string]R, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return func(btn *ButtonSpec) R {
		if btn == nil {
			return fallback
		}
		if v, ok := copied[btn.Label]; ok {
			return v
		}
		return fallback
	}
}
