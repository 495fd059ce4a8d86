// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !clipboard_x11

package clipboard

import (
	"os/exec"
	"strings"
)

// WriteText places text on the system clipboard using whichever helper is
// installed.
func WriteText(text string) error {
	if isWSL() {
		if err := writeWSL(text); err == nil {
			return nil
		}
	}
	for _, argv := range [][]string{
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	} {
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return ErrUnavailable
}
