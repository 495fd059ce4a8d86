// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// ResolveDefault returns the index of the first button flagged default, or
// -1 when none is.
func ResolveDefault(buttons []ButtonSpec) int {
	for i, b := range buttons {
		if b.Default {
			return i
		}
	}
	return -1
}

// ResolveCancel returns the index of the first button that is flagged cancel
// or carries CancelClose semantics, or -1 when none does.
func ResolveCancel(buttons []ButtonSpec) int {
	for i, b := range buttons {
		if b.IsCancel() {
			return i
		}
	}
	return -1
}
