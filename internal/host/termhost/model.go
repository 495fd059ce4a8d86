// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termhost

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shayne/dialogkit/internal/dialog"
	"github.com/shayne/dialogkit/internal/tui/theme"
)

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Choose  key.Binding
	Default key.Binding
	Close   key.Binding
}

var keys = keyMap{
	Next:    key.NewBinding(key.WithKeys("right", "tab", "l"), key.WithHelp("→", "next")),
	Prev:    key.NewBinding(key.WithKeys("left", "shift+tab", "h"), key.WithHelp("←", "prev")),
	Choose:  key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "choose")),
	Default: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "default")),
	Close:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "close")),
}

// raiseMsg forces a redraw.
type raiseMsg struct{}

type model struct {
	pane    dialog.Pane
	content string
	input   dialog.Input
	styles  theme.DialogStyles
	help    help.Model

	focus  int
	width  int
	height int
	ownerW int
	ownerH int
}

func newModel(p dialog.Pane, content string, in dialog.Input, styles theme.DialogStyles) model {
	focus := 0
	if p.DefaultIndex >= 0 {
		focus = p.DefaultIndex
	}
	return model{
		pane:    p,
		content: content,
		input:   in,
		styles:  styles,
		help:    help.New(),
		focus:   focus,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyPressMsg:
		n := len(m.pane.Buttons)
		switch {
		case key.Matches(msg, keys.Next):
			if n > 0 {
				m.focus = (m.focus + 1) % n
			}
		case key.Matches(msg, keys.Prev):
			if n > 0 {
				m.focus = (m.focus - 1 + n) % n
			}
		case key.Matches(msg, keys.Choose):
			if n > 0 {
				m.input.Press(m.focus)
			}
		case key.Matches(msg, keys.Default):
			m.input.PressDefault()
		case key.Matches(msg, keys.Close):
			m.input.RequestClose()
		}
	}
	return m, nil
}

// View takes over the screen for modal dialogs and renders in place
// otherwise.
func (m model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = m.pane.Modality != dialog.ModalityNone
	v.WindowTitle = m.pane.Title
	return v
}

func (m model) render() string {
	s := m.styles
	var parts []string
	if m.pane.Title != "" {
		parts = append(parts, s.Title.Render(m.pane.Title))
	}
	if m.pane.Header != "" {
		header := s.Header
		if m.pane.AccessibleRole == dialog.RoleAlert {
			header = s.Error.Bold(true)
		}
		parts = append(parts, header.Render(m.pane.Header))
	}
	if body := strings.TrimRight(m.content, "\n"); body != "" {
		parts = append(parts, s.Content.Render(body))
	}
	if row := m.buttonRow(); row != "" {
		parts = append(parts, "", row)
	}
	parts = append(parts, s.Muted.Render(m.help.ShortHelpView([]key.Binding{
		keys.Prev, keys.Next, keys.Choose, keys.Default, keys.Close,
	})))
	box := s.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if m.pane.Modality == dialog.ModalityNone {
		return box
	}
	w, h := m.width, m.height
	if m.ownerW > 0 && m.ownerH > 0 {
		w, h = m.ownerW, m.ownerH
	}
	if w <= 0 || h <= 0 {
		return box
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}

func (m model) buttonRow() string {
	if len(m.pane.Buttons) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(m.pane.Buttons)*2)
	for i, b := range m.pane.Buttons {
		style := m.styles.Button
		if i == m.pane.DefaultIndex {
			style = m.styles.ButtonDefault
		}
		if i == m.focus {
			style = m.styles.ButtonFocused
		}
		if i > 0 {
			rendered = append(rendered, " ")
		}
		rendered = append(rendered, style.Render(b.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}
