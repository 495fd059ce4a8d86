// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"fmt"
	"strings"
)

// Semantics classifies the intent of a button independent of its label.
type Semantics int

const (
	None Semantics = iota
	OKDone
	CancelClose
	Yes
	No
	Apply
	Help
	NextForward
	BackPrevious
	Finish
	Other
)

var semanticsNames = [...]string{
	None:         "none",
	OKDone:       "ok_done",
	CancelClose:  "cancel_close",
	Yes:          "yes",
	No:           "no",
	Apply:        "apply",
	Help:         "help",
	NextForward:  "next_forward",
	BackPrevious: "back_previous",
	Finish:       "finish",
	Other:        "other",
}

func (s Semantics) String() string {
	if s < 0 || int(s) >= len(semanticsNames) {
		return fmt.Sprintf("semantics(%d)", int(s))
	}
	return semanticsNames[s]
}

// StaysOpen reports whether activating a button of this class leaves the
// dialog showing.
func (s Semantics) StaysOpen() bool {
	return s == None || s == Help
}

// ParseSemantics accepts the snake_case names used by String, case
// insensitively. Dashes are treated as underscores and a few short aliases
// ("ok", "cancel", "next", "back") are accepted.
func ParseSemantics(value string) (Semantics, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	key = strings.ReplaceAll(key, "-", "_")
	switch key {
	case "ok", "done":
		return OKDone, nil
	case "cancel", "close":
		return CancelClose, nil
	case "next", "forward":
		return NextForward, nil
	case "back", "previous":
		return BackPrevious, nil
	case "":
		return None, nil
	}
	for i, name := range semanticsNames {
		if name == key {
			return Semantics(i), nil
		}
	}
	return None, fmt.Errorf("unknown button semantics %q", value)
}

// MarshalText implements encoding.TextMarshaler.
func (s Semantics) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Semantics) UnmarshalText(text []byte) error {
	parsed, err := ParseSemantics(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
