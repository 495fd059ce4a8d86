// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linehost displays dialogs as numbered prompts on a plain line
// oriented terminal or pipe.
package linehost

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/cancelreader"

	"github.com/shayne/dialogkit/internal/dialog"
	"github.com/shayne/dialogkit/internal/tui/theme"
)

var errBusy = errors.New("linehost: already displaying a dialog")

type Host struct {
	in  io.Reader
	out io.Writer

	mu        sync.Mutex
	pane      dialog.Pane
	content   string
	reader    cancelreader.CancelReader
	dismissed *atomic.Bool
}

func New(in io.Reader, out io.Writer) *Host {
	return &Host{in: in, out: out}
}

func (h *Host) Display(p dialog.Pane, in dialog.Input) error {
	if h.reader != nil {
		return errBusy
	}
	content := p.Content
	if p.Markdown && content != "" {
		rendered, err := theme.Markdown(content, theme.ModeUnknown, false, 72)
		if err != nil {
			return err
		}
		content = rendered
	}
	r, err := cancelreader.NewReader(h.in)
	if err != nil {
		return err
	}
	dismissed := &atomic.Bool{}
	h.mu.Lock()
	h.pane, h.content = p, content
	h.mu.Unlock()
	h.reader, h.dismissed = r, dismissed
	h.printPane()
	go h.read(p, in, r, dismissed)
	return nil
}

// Dismiss cancels the pending read. It does not wait for the reader
// goroutine, which may itself be waiting on the dialog.
func (h *Host) Dismiss() {
	if h.reader == nil {
		return
	}
	h.dismissed.Store(true)
	h.reader.Cancel()
	h.reader = nil
}

func (h *Host) BringToFront() {
	if h.reader != nil {
		h.printPane()
		h.prompt()
	}
}

// PositionRelativeTo is a no-op; lines have no position.
func (h *Host) PositionRelativeTo(dialog.Owner) {}

func (h *Host) read(p dialog.Pane, in dialog.Input, r cancelreader.CancelReader, dismissed *atomic.Bool) {
	defer r.Close()
	reader := bufio.NewReader(r)
	for {
		h.prompt()
		line, err := reader.ReadString('\n')
		if dismissed.Load() {
			return
		}
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			if !errors.Is(err, io.EOF) {
				log.Printf("linehost: read: %v", err)
			}
			if <-in.RequestClose() {
				in.Lost()
			}
			return
		}
		open, ok := h.handle(p, in, strings.TrimRight(line, "\r\n"))
		if !ok {
			continue
		}
		if !open {
			return
		}
		if err != nil {
			in.Lost()
			return
		}
	}
}

// handle applies one line of input. ok is false when the line was not
// understood; open reports whether the dialog is still showing.
func (h *Host) handle(p dialog.Pane, in dialog.Input, line string) (open bool, ok bool) {
	idx, action := parseChoice(line, p)
	switch action {
	case choiceDefault:
		if p.DefaultIndex < 0 {
			h.println("No default button; choose one by number.")
			return true, false
		}
		return <-in.PressDefault(), true
	case choiceClose:
		return <-in.RequestClose(), true
	case choiceButton:
		return <-in.Press(idx), true
	}
	h.println("Please choose a button by number.")
	return true, false
}

func (h *Host) printPane() {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.pane
	if strings.TrimSpace(p.Title) != "" {
		fmt.Fprintln(h.out, p.Title)
	}
	if header := strings.TrimSpace(p.Header); header != "" {
		if p.AccessibleRole == dialog.RoleAlert {
			header = "! " + header
		}
		fmt.Fprintln(h.out, header)
		fmt.Fprintln(h.out, strings.Repeat("-", runewidth.StringWidth(header)))
	}
	if strings.TrimSpace(h.content) != "" {
		fmt.Fprintln(h.out, h.content)
	}
	if len(p.Buttons) == 0 {
		return
	}
	fmt.Fprintln(h.out)
	for i, b := range p.Buttons {
		marker := " "
		if i == p.DefaultIndex {
			marker = "*"
		}
		fmt.Fprintf(h.out, "%s %d) %s\n", marker, i+1, b.Label)
	}
}

func (h *Host) prompt() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n := len(h.pane.Buttons); n > 0 {
		fmt.Fprintf(h.out, "Choose [1-%d, q to close]: ", n)
		return
	}
	fmt.Fprint(h.out, "Press enter to continue, q to close: ")
}

func (h *Host) println(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintln(h.out, msg)
}
