// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linehost

import (
	"strconv"
	"strings"

	"github.com/shayne/dialogkit/internal/dialog"
)

type choice int

const (
	choiceInvalid choice = iota
	choiceDefault
	choiceClose
	choiceButton
)

// parseChoice maps a line to an action. Numbers are 1-based; a label match
// is case-insensitive.
func parseChoice(line string, p dialog.Pane) (int, choice) {
	trimmed := strings.TrimSpace(line)
	switch strings.ToLower(trimmed) {
	case "":
		return -1, choiceDefault
	case "q", "quit", "esc":
		return -1, choiceClose
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > len(p.Buttons) {
			return -1, choiceInvalid
		}
		return n - 1, choiceButton
	}
	for i, b := range p.Buttons {
		if strings.EqualFold(b.Label, trimmed) {
			return i, choiceButton
		}
	}
	return -1, choiceInvalid
}
