// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Huh returns the form theme used by the inline host.
func Huh(out io.Writer) *huh.Theme {
	if !EnabledForOutput(out) {
		return huh.ThemeBase()
	}
	pal := darkTokens
	if ModeFor(out) == ModeLight {
		pal = lightTokens
	}
	return buildHuhTheme(pal)
}

func buildHuhTheme(pal tokens) *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.Color(pal.accent)
	muted := lipgloss.Color(pal.muted)
	label := lipgloss.Color(pal.label)
	value := lipgloss.Color(pal.value)
	header := lipgloss.Color(pal.header)
	errColor := lipgloss.Color(pal.error)

	t.Group.Title = t.Group.Title.Foreground(header).Bold(true)
	t.Group.Description = t.Group.Description.Foreground(muted)

	t.Focused.Title = t.Focused.Title.Foreground(header).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(value)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errColor)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errColor)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent).Bold(true)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(label)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	return t
}
