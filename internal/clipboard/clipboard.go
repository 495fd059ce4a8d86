// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux || clipboard_x11

package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var initOnce sync.Once
var initErr error

var write = clipboard.Write

// WriteText places text on the system clipboard.
func WriteText(text string) error {
	if err := writeNative(text); err == nil {
		return nil
	} else if !isWSL() {
		return err
	}
	return writeWSL(text)
}

func writeNative(text string) error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, initErr)
	}
	// Write returns nil when the clipboard could not be written. The channel
	// it returns otherwise only fires once another program takes ownership.
	if changed := write(clipboard.FmtText, []byte(text)); changed == nil {
		return ErrUnavailable
	}
	return nil
}
