// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"io"
	"os"
	"sync"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

type Mode int

const (
	ModeUnknown Mode = iota
	ModeLight
	ModeDark
)

type RGB struct {
	R uint8
	G uint8
	B uint8
}

type Palette struct {
	FG    RGB
	BG    RGB
	HasFG bool
	HasBG bool
}

type Theme struct {
	Enabled bool
	Mode    Mode
	Dialog  DialogStyles
}

type DialogStyles struct {
	Frame         lipgloss.Style
	Title         lipgloss.Style
	Header        lipgloss.Style
	Content       lipgloss.Style
	Muted         lipgloss.Style
	Error         lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonDefault lipgloss.Style
}

type manager struct {
	mu       sync.Mutex
	detected bool
	mode     Mode
	cached   map[Mode]Theme
}

var global = &manager{cached: map[Mode]Theme{}}

// ForOutput returns the theme for out. Colors are disabled when out is not a
// terminal or NO_COLOR is set.
func ForOutput(out io.Writer) Theme {
	if !EnabledForOutput(out) {
		return Plain()
	}
	return global.themeFor(out)
}

// Plain is the colorless theme. Focus and default are shown with reverse
// video and underline.
func Plain() Theme {
	return Theme{Dialog: buildStyles(tokens{}, false)}
}

// Refresh forgets the detected background mode.
func Refresh() {
	global.mu.Lock()
	global.detected = false
	global.mu.Unlock()
}

func EnabledForOutput(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termValue := os.Getenv("TERM")
	if termValue == "" || termValue == "dumb" {
		return false
	}
	if ttyAware, ok := out.(interface{ IsTTY() bool }); ok {
		return ttyAware.IsTTY()
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// ModeFor reports the detected background mode for out, defaulting to dark.
func ModeFor(out io.Writer) Mode {
	if !EnabledForOutput(out) {
		return ModeUnknown
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.detectLocked(out)
}

func (m *manager) themeFor(out io.Writer) Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	mode := m.detectLocked(out)
	if cached, ok := m.cached[mode]; ok {
		return cached
	}
	pal := darkTokens
	if mode == ModeLight {
		pal = lightTokens
	}
	t := Theme{Enabled: true, Mode: mode, Dialog: buildStyles(pal, true)}
	m.cached[mode] = t
	return t
}

func (m *manager) detectLocked(out io.Writer) Mode {
	if m.detected {
		return m.mode
	}
	m.detected = true
	m.mode = modeFromPalette(paletteFromEnv())
	if m.mode != ModeUnknown {
		return m.mode
	}
	m.mode = ModeDark
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(os.Stdin.Fd())) {
		if !lipgloss.HasDarkBackground(os.Stdin, file) {
			m.mode = ModeLight
		}
	}
	return m.mode
}

type tokens struct {
	accent  string
	muted   string
	label   string
	value   string
	header  string
	error   string
	border  string
	focusFG string
}

var darkTokens = tokens{
	accent:  "213",
	muted:   "243",
	label:   "244",
	value:   "252",
	header:  "81",
	error:   "203",
	border:  "240",
	focusFG: "0",
}

var lightTokens = tokens{
	accent:  "163",
	muted:   "240",
	label:   "238",
	value:   "234",
	header:  "23",
	error:   "160",
	border:  "245",
	focusFG: "255",
}

func buildStyles(pal tokens, color bool) DialogStyles {
	button := lipgloss.NewStyle().Padding(0, 1)
	if !color {
		return DialogStyles{
			Frame:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
			Title:         lipgloss.NewStyle().Bold(true),
			Header:        lipgloss.NewStyle().Bold(true),
			Content:       lipgloss.NewStyle(),
			Muted:         lipgloss.NewStyle(),
			Error:         lipgloss.NewStyle(),
			Button:        button,
			ButtonFocused: button.Reverse(true),
			ButtonDefault: button.Underline(true),
		}
	}
	return DialogStyles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(pal.border)).
			Padding(0, 1),
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.label)),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.header)),
		Content:       lipgloss.NewStyle().Foreground(lipgloss.Color(pal.value)),
		Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color(pal.muted)),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color(pal.error)),
		Button:        button.Foreground(lipgloss.Color(pal.value)),
		ButtonFocused: button.Bold(true).Foreground(lipgloss.Color(pal.focusFG)).Background(lipgloss.Color(pal.accent)),
		ButtonDefault: button.Bold(true).Foreground(lipgloss.Color(pal.accent)),
	}
}

// GlamourStyle names the glamour style matching mode.
func GlamourStyle(mode Mode, enabled bool) string {
	if !enabled {
		return "notty"
	}
	if mode == ModeLight {
		return "light"
	}
	return "dark"
}
