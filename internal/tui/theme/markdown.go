// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders content with the glamour style matching mode. A width of
// zero disables wrapping.
func Markdown(content string, mode Mode, enabled bool, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(GlamourStyle(mode, enabled))}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	out, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
