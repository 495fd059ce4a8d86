// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// Phase is a step in a dialog's lifecycle.
type Phase int

const (
	Unshown Phase = iota
	Showing
	Shown
	Hiding
	Hidden
)

func (p Phase) String() string {
	switch p {
	case Unshown:
		return "unshown"
	case Showing:
		return "showing"
	case Shown:
		return "shown"
	case Hiding:
		return "hiding"
	case Hidden:
		return "hidden"
	}
	return "unknown"
}

// Showable reports whether Show may be called in this phase.
func (p Phase) Showable() bool {
	return p == Unshown || p == Hidden
}

// Active reports whether a host window is borrowed in this phase.
func (p Phase) Active() bool {
	return p == Showing || p == Shown || p == Hiding
}
