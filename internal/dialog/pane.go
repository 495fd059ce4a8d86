// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"fmt"
	"strings"
)

// Role is the accessible role a pane advertises to assistive technology.
type Role int

const (
	RoleNode Role = iota
	RoleDialog
	RoleAlert
)

func (r Role) String() string {
	switch r {
	case RoleDialog:
		return "dialog"
	case RoleAlert:
		return "alert"
	}
	return "node"
}

// ParseRole parses a role name. The empty string is RoleDialog.
func ParseRole(value string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "dialog":
		return RoleDialog, nil
	case "alert":
		return RoleAlert, nil
	case "node":
		return RoleNode, nil
	}
	return RoleNode, fmt.Errorf("unknown role %q", value)
}

// Modality controls what a shown dialog blocks.
type Modality int

const (
	ModalityNone Modality = iota
	ModalityWindow
	ModalityApplication
)

func (m Modality) String() string {
	switch m {
	case ModalityWindow:
		return "window"
	case ModalityApplication:
		return "application"
	}
	return "none"
}

// ParseModality parses a modality name. The empty string is
// ModalityApplication.
func ParseModality(value string) (Modality, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "application", "app":
		return ModalityApplication, nil
	case "window":
		return ModalityWindow, nil
	case "none":
		return ModalityNone, nil
	}
	return ModalityNone, fmt.Errorf("unknown modality %q", value)
}

// Pane is the snapshot of a dialog's content handed to a host window when it
// is displayed. Buttons are in display order.
type Pane struct {
	ID       string
	Title    string
	Header   string
	Content  string
	Markdown bool
	Buttons  []ButtonSpec
	// DefaultIndex and CancelIndex are -1 when unresolved.
	DefaultIndex   int
	CancelIndex    int
	Modality       Modality
	AccessibleRole Role
}

// DefaultButton returns the resolved default button.
func (p Pane) DefaultButton() (ButtonSpec, bool) {
	if p.DefaultIndex < 0 || p.DefaultIndex >= len(p.Buttons) {
		return ButtonSpec{}, false
	}
	return p.Buttons[p.DefaultIndex], true
}

// CancelButton returns the resolved cancel button.
func (p Pane) CancelButton() (ButtonSpec, bool) {
	if p.CancelIndex < 0 || p.CancelIndex >= len(p.Buttons) {
		return ButtonSpec{}, false
	}
	return p.Buttons[p.CancelIndex], true
}
