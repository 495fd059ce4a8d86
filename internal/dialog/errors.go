// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalState is matched by every StateError.
	ErrIllegalState = errors.New("illegal dialog state")
	// ErrUnknownButton is returned when a host reports a button index that is
	// not part of the active set.
	ErrUnknownButton = errors.New("unknown button")
	// ErrNoHost is returned by Show when the dialog has no host window.
	ErrNoHost = errors.New("dialog has no host window")
	// ErrNoLoop is returned by ShowAndWait when the dialog has no UI loop.
	ErrNoLoop = errors.New("dialog has no ui loop")
)

// StateError reports an operation invoked in a phase that forbids it.
type StateError struct {
	Op    string
	Phase Phase
}

func (e *StateError) Error() string {
	return fmt.Sprintf("dialog: %s not allowed while %s", e.Op, e.Phase)
}

func (e *StateError) Unwrap() error {
	return ErrIllegalState
}

func illegal(op string, phase Phase) error {
	return &StateError{Op: op, Phase: phase}
}
