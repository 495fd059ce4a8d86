// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termhost

import (
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/shayne/dialogkit/internal/dialog"
	"github.com/shayne/dialogkit/internal/tui/theme"
)

type fakeInput struct {
	calls []string
}

func (f *fakeInput) record(name string) <-chan bool {
	f.calls = append(f.calls, name)
	ch := make(chan bool, 1)
	ch <- true
	return ch
}

func (f *fakeInput) Press(i int) <-chan bool {
	return f.record("press:" + strconv.Itoa(i))
}
func (f *fakeInput) PressDefault() <-chan bool { return f.record("default") }
func (f *fakeInput) RequestClose() <-chan bool { return f.record("close") }
func (f *fakeInput) Lost()                     { f.calls = append(f.calls, "lost") }

func confirmPane() dialog.Pane {
	buttons := []dialog.ButtonSpec{dialog.OKBtn, dialog.ApplyBtn, dialog.CancelBtn}
	return dialog.Pane{
		ID:           "01TEST",
		Title:        "Delete",
		Header:       "Delete file?",
		Content:      "report.txt will be removed.",
		Buttons:      buttons,
		DefaultIndex: dialog.ResolveDefault(buttons),
		CancelIndex:  dialog.ResolveCancel(buttons),
		Modality:     dialog.ModalityApplication,
	}
}

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(model)
}

func TestModelFocusStartsOnDefault(t *testing.T) {
	p := confirmPane()
	p.Buttons[0].Default = false
	p.Buttons[1].Default = true
	p.DefaultIndex = 1
	m := newModel(p, p.Content, &fakeInput{}, theme.Plain().Dialog)
	if m.focus != 1 {
		t.Fatalf("expected focus on default button, got %d", m.focus)
	}
}

func TestModelSpaceChoosesFocused(t *testing.T) {
	in := &fakeInput{}
	m := newModel(confirmPane(), "", in, theme.Plain().Dialog)
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if len(in.calls) != 1 || in.calls[0] != "press:2" {
		t.Fatalf("expected press of third button, got %v", in.calls)
	}
}

func TestModelFocusWraps(t *testing.T) {
	m := newModel(confirmPane(), "", &fakeInput{}, theme.Plain().Dialog)
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.focus != 2 {
		t.Fatalf("expected focus to wrap to last button, got %d", m.focus)
	}
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
	if m.focus != 0 {
		t.Fatalf("expected focus to wrap to first button, got %d", m.focus)
	}
}

func TestModelEnterAndEscape(t *testing.T) {
	in := &fakeInput{}
	m := newModel(confirmPane(), "", in, theme.Plain().Dialog)
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	_ = send(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	want := []string{"default", "close", "close"}
	if strings.Join(in.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, in.calls)
	}
}

func TestModelNoButtonsIgnoresChoose(t *testing.T) {
	in := &fakeInput{}
	p := dialog.Pane{Header: "Working", DefaultIndex: -1, CancelIndex: -1}
	m := newModel(p, "", in, theme.Plain().Dialog)
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	_ = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	if len(in.calls) != 0 {
		t.Fatalf("expected no input for empty button set, got %v", in.calls)
	}
}

func TestModelRenderIncludesPaneText(t *testing.T) {
	p := confirmPane()
	m := newModel(p, p.Content, &fakeInput{}, theme.Plain().Dialog)
	view := m.render()
	for _, want := range []string{"Delete file?", "report.txt will be removed.", "OK", "Apply", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got %q", want, view)
		}
	}
}

func TestModelRenderCentersInOwner(t *testing.T) {
	p := confirmPane()
	m := newModel(p, p.Content, &fakeInput{}, theme.Plain().Dialog)
	m.ownerW, m.ownerH = 120, 30
	lines := strings.Split(m.render(), "\n")
	if len(lines) != 30 {
		t.Fatalf("expected view to fill owner height, got %d lines", len(lines))
	}
}

func TestModelNonModalRendersInPlace(t *testing.T) {
	p := confirmPane()
	p.Modality = dialog.ModalityNone
	m := newModel(p, p.Content, &fakeInput{}, theme.Plain().Dialog)
	m.ownerW, m.ownerH = 120, 30
	if lines := strings.Split(m.render(), "\n"); len(lines) >= 30 {
		t.Fatalf("expected boxed view without placement, got %d lines", len(lines))
	}
	if v := m.View(); v.AltScreen {
		t.Fatalf("expected non-modal dialog to stay out of the alt screen")
	}
	p.Modality = dialog.ModalityWindow
	m = newModel(p, p.Content, &fakeInput{}, theme.Plain().Dialog)
	if v := m.View(); !v.AltScreen || v.WindowTitle != "Delete" {
		t.Fatalf("expected modal view in alt screen with title, got %+v", v)
	}
}

func TestRenderContentMarkdownFallsBackToRaw(t *testing.T) {
	h := &Host{theme: theme.Plain(), wrap: 40}
	got, err := h.renderContent(dialog.Pane{Content: "# Title", Markdown: false})
	if err != nil || got != "# Title" {
		t.Fatalf("expected raw content, got %q (%v)", got, err)
	}
	got, err = h.renderContent(dialog.Pane{Content: "**bold** text", Markdown: true})
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	if !strings.Contains(got, "bold") || strings.Contains(got, "**") {
		t.Fatalf("expected rendered markdown, got %q", got)
	}
}
