// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// Host is the native window a dialog drives. All methods are called on the
// UI loop. A dialog borrows its host from Display until Dismiss and does not
// touch it afterwards.
type Host interface {
	// Display shows p and starts delivering user activity to in.
	Display(p Pane, in Input) error
	// Dismiss takes the window down. in must not be used after Dismiss.
	Dismiss()
	BringToFront()
	PositionRelativeTo(owner Owner)
}

// Input is how a host reports user activity back to its dialog. Methods are
// safe to call from any goroutine; the request is queued onto the UI loop.
// The returned channel yields once, after the request was processed, and
// reports whether the dialog is still showing.
type Input interface {
	Press(index int) <-chan bool
	PressDefault() <-chan bool
	// RequestClose is the window manager's close affordance.
	RequestClose() <-chan bool
	// Lost reports that the window went away on its own. The dialog hides
	// without a button and still dismisses the host so it can release the
	// showing.
	Lost()
}

// Owner is the surface a dialog is positioned against.
type Owner interface {
	Size() (width, height int)
}

// OwnerSize is an Owner with a fixed size.
type OwnerSize struct {
	Width  int
	Height int
}

func (o OwnerSize) Size() (int, int) {
	return o.Width, o.Height
}
