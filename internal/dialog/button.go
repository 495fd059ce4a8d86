// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// ButtonSpec describes one button a dialog shows.
type ButtonSpec struct {
	Label     string
	Semantics Semantics
	Default   bool
	Cancel    bool
}

// Stock buttons.
var (
	OKBtn     = ButtonSpec{Label: "OK", Semantics: OKDone, Default: true}
	CancelBtn = ButtonSpec{Label: "Cancel", Semantics: CancelClose, Cancel: true}
	YesBtn    = ButtonSpec{Label: "Yes", Semantics: Yes}
	NoBtn     = ButtonSpec{Label: "No", Semantics: No}
	ApplyBtn  = ButtonSpec{Label: "Apply", Semantics: Apply}
	CloseBtn  = ButtonSpec{Label: "Close", Semantics: CancelClose, Cancel: true}
	FinishBtn = ButtonSpec{Label: "Finish", Semantics: Finish}
	NextBtn   = ButtonSpec{Label: "Next", Semantics: NextForward}
	PrevBtn   = ButtonSpec{Label: "Previous", Semantics: BackPrevious}
	HelpBtn   = ButtonSpec{Label: "Help", Semantics: Help}
)

// Stock returns the stock button for s, or a bare spec labelled with the
// semantics name when there is none.
func Stock(s Semantics) ButtonSpec {
	switch s {
	case OKDone:
		return OKBtn
	case CancelClose:
		return CancelBtn
	case Yes:
		return YesBtn
	case No:
		return NoBtn
	case Apply:
		return ApplyBtn
	case Finish:
		return FinishBtn
	case NextForward:
		return NextBtn
	case BackPrevious:
		return PrevBtn
	case Help:
		return HelpBtn
	}
	return ButtonSpec{Label: s.String(), Semantics: s}
}

// WithLabel returns a copy of b with a different label.
func (b ButtonSpec) WithLabel(label string) ButtonSpec {
	b.Label = label
	return b
}

// AsDefault returns a copy of b flagged as the default button.
func (b ButtonSpec) AsDefault() ButtonSpec {
	b.Default = true
	return b
}

// AsCancel returns a copy of b flagged as the cancel button.
func (b ButtonSpec) AsCancel() ButtonSpec {
	b.Cancel = true
	return b
}

// IsCancel reports whether b qualifies as a cancel button.
func (b ButtonSpec) IsCancel() bool {
	return b.Cancel || b.Semantics == CancelClose
}
