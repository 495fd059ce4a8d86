// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termhost displays dialogs as a boxed bubbletea program centered in
// the terminal.
package termhost

import (
	"errors"
	"io"
	"log"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"

	"github.com/shayne/dialogkit/internal/dialog"
	"github.com/shayne/dialogkit/internal/tui/theme"
)

var errBusy = errors.New("termhost: already displaying a dialog")

type Host struct {
	in     io.Reader
	out    io.Writer
	theme  theme.Theme
	mode   theme.Mode
	wrap   int
	owner  dialog.Owner
	extras []tea.ProgramOption

	program   *tea.Program
	done      chan struct{}
	dismissed *atomic.Bool
}

func New(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *Host {
	mode := theme.ModeFor(out)
	return &Host{
		in:     in,
		out:    out,
		theme:  theme.ForOutput(out),
		mode:   mode,
		wrap:   72,
		extras: opts,
	}
}

func (h *Host) Display(p dialog.Pane, in dialog.Input) error {
	if h.program != nil {
		return errBusy
	}
	content, err := h.renderContent(p)
	if err != nil {
		return err
	}
	m := newModel(p, content, in, h.theme.Dialog)
	if h.owner != nil {
		m.ownerW, m.ownerH = h.owner.Size()
	}
	opts := append([]tea.ProgramOption{tea.WithInput(h.in), tea.WithOutput(h.out)}, h.extras...)
	prog := tea.NewProgram(m, opts...)
	done := make(chan struct{})
	dismissed := &atomic.Bool{}
	h.program, h.done, h.dismissed = prog, done, dismissed
	go func() {
		defer close(done)
		_, err := prog.Run()
		if dismissed.Load() {
			return
		}
		if err != nil {
			log.Printf("termhost: program exited: %v", err)
		}
		in.Lost()
	}()
	return nil
}

// Dismiss stops the program and waits for the terminal to be restored.
func (h *Host) Dismiss() {
	if h.program == nil {
		return
	}
	h.dismissed.Store(true)
	h.program.Quit()
	<-h.done
	h.program = nil
	h.done = nil
	h.owner = nil
}

func (h *Host) BringToFront() {
	if h.program != nil {
		h.program.Send(raiseMsg{})
	}
}

func (h *Host) PositionRelativeTo(owner dialog.Owner) {
	h.owner = owner
}

func (h *Host) renderContent(p dialog.Pane) (string, error) {
	if !p.Markdown || p.Content == "" {
		return p.Content, nil
	}
	return theme.Markdown(p.Content, h.mode, h.theme.Enabled, h.wrap)
}
