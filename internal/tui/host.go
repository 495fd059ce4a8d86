// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui picks the dialog host that fits the attached terminal.
package tui

import (
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/shayne/dialogkit/internal/config"
	"github.com/shayne/dialogkit/internal/dialog"
	"github.com/shayne/dialogkit/internal/host/inlinehost"
	"github.com/shayne/dialogkit/internal/host/linehost"
	"github.com/shayne/dialogkit/internal/host/termhost"
)

// NewHost returns a host for style and the style actually chosen. Styles
// that need a terminal fall back to line when in or out is not one.
func NewHost(style string, in io.Reader, out io.Writer) (dialog.Host, string, error) {
	interactive := isTerminal(in) && isTerminal(out)
	switch style {
	case "", config.StyleAuto:
		if interactive {
			return termhost.New(in, out), config.StyleFull, nil
		}
		return linehost.New(in, out), config.StyleLine, nil
	case config.StyleFull, config.StyleInline:
		if !interactive {
			log.Printf("tui: %s style needs a terminal, using line", style)
			return linehost.New(in, out), config.StyleLine, nil
		}
		if style == config.StyleInline {
			return inlinehost.New(in, out), style, nil
		}
		return termhost.New(in, out), style, nil
	case config.StyleLine:
		return linehost.New(in, out), style, nil
	}
	return nil, "", fmt.Errorf("unknown style %q", style)
}

// TerminalSize reports the size of out, or false when it is not a
// terminal.
func TerminalSize(out io.Writer) (dialog.OwnerSize, bool) {
	file, ok := out.(*os.File)
	if !ok {
		return dialog.OwnerSize{}, false
	}
	w, h, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return dialog.OwnerSize{}, false
	}
	return dialog.OwnerSize{Width: w, Height: h}, true
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
