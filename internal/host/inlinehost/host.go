// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inlinehost displays dialogs as an inline huh form below the
// current cursor position.
package inlinehost

import (
	"context"
	"errors"
	"io"
	"log"
	"sync/atomic"

	"github.com/charmbracelet/huh"

	"github.com/shayne/dialogkit/internal/dialog"
	"github.com/shayne/dialogkit/internal/tui/theme"
)

var errBusy = errors.New("inlinehost: already displaying a dialog")

type Host struct {
	in  io.Reader
	out io.Writer

	cancel    context.CancelFunc
	dismissed *atomic.Bool
}

func New(in io.Reader, out io.Writer) *Host {
	return &Host{in: in, out: out}
}

func (h *Host) Display(p dialog.Pane, in dialog.Input) error {
	if h.cancel != nil {
		return errBusy
	}
	desc := p.Content
	if p.Markdown && desc != "" {
		rendered, err := theme.Markdown(desc, theme.ModeFor(h.out), theme.EnabledForOutput(h.out), 72)
		if err != nil {
			return err
		}
		desc = rendered
	}
	ctx, cancel := context.WithCancel(context.Background())
	dismissed := &atomic.Bool{}
	h.cancel, h.dismissed = cancel, dismissed
	go h.run(ctx, p, desc, in, dismissed)
	return nil
}

// Dismiss cancels the running form without waiting for it; the form
// goroutine may be blocked on the dialog.
func (h *Host) Dismiss() {
	if h.cancel == nil {
		return
	}
	h.dismissed.Store(true)
	h.cancel()
	h.cancel = nil
}

// BringToFront is a no-op; the form is always in front.
func (h *Host) BringToFront() {}

// PositionRelativeTo is a no-op; the form renders at the cursor.
func (h *Host) PositionRelativeTo(dialog.Owner) {}

func (h *Host) run(ctx context.Context, p dialog.Pane, desc string, in dialog.Input, dismissed *atomic.Bool) {
	for {
		choice := max(p.DefaultIndex, 0)
		err := h.form(p, desc, &choice).RunWithContext(ctx)
		if dismissed.Load() {
			return
		}
		var open <-chan bool
		switch {
		case errors.Is(err, huh.ErrUserAborted):
			open = in.RequestClose()
		case err != nil:
			log.Printf("inlinehost: form: %v", err)
			in.Lost()
			return
		case len(p.Buttons) == 0:
			open = in.RequestClose()
		default:
			open = in.Press(choice)
		}
		if !<-open {
			return
		}
	}
}

func (h *Host) form(p dialog.Pane, desc string, choice *int) *huh.Form {
	title := p.Header
	if title == "" {
		title = p.Title
	}
	var field huh.Field
	if len(p.Buttons) == 0 {
		field = huh.NewNote().Title(title).Description(desc).Next(true)
	} else {
		field = huh.NewSelect[int]().
			Title(title).
			Description(desc).
			Options(options(p)...).
			Inline(true).
			Value(choice)
	}
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(theme.Huh(h.out)).
		WithInput(h.in).
		WithOutput(h.out).
		WithShowHelp(true)
}

func options(p dialog.Pane) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(p.Buttons))
	for i, b := range p.Buttons {
		label := b.Label
		if p.AccessibleRole == dialog.RoleAlert && i == p.CancelIndex {
			label += " (ctrl+c)"
		}
		opts = append(opts, huh.NewOption(label, i).Selected(i == p.DefaultIndex))
	}
	return opts
}
