// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import "testing"

func TestResolveDefaultAndCancel(t *testing.T) {
	tests := []struct {
		name       string
		buttons    []ButtonSpec
		wantDef    int
		wantCancel int
	}{
		{name: "empty", buttons: nil, wantDef: -1, wantCancel: -1},
		{name: "stock confirm", buttons: []ButtonSpec{OKBtn, CancelBtn}, wantDef: 0, wantCancel: 1},
		{
			name: "first flagged wins",
			buttons: []ButtonSpec{
				{Label: "A", Default: true},
				{Label: "B", Default: true, Cancel: true},
				{Label: "C", Cancel: true},
			},
			wantDef:    0,
			wantCancel: 1,
		},
		{
			name:       "cancel semantics without flag",
			buttons:    []ButtonSpec{ApplyBtn, {Label: "Dismiss", Semantics: CancelClose}},
			wantDef:    -1,
			wantCancel: 1,
		},
		{name: "apply only", buttons: []ButtonSpec{ApplyBtn}, wantDef: -1, wantCancel: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDefault(tt.buttons); got != tt.wantDef {
				t.Fatalf("default: expected %d, got %d", tt.wantDef, got)
			}
			if got := ResolveCancel(tt.buttons); got != tt.wantCancel {
				t.Fatalf("cancel: expected %d, got %d", tt.wantCancel, got)
			}
		})
	}
}

func TestParseSemantics(t *testing.T) {
	cases := map[string]Semantics{
		"ok_done":       OKDone,
		"OK":            OKDone,
		"cancel-close":  CancelClose,
		"cancel":        CancelClose,
		"next":          NextForward,
		"back_previous": BackPrevious,
		"help":          Help,
		"":              None,
	}
	for in, want := range cases {
		got, err := ParseSemantics(in)
		if err != nil {
			t.Fatalf("ParseSemantics(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSemantics(%q): expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseSemantics("maybe"); err == nil {
		t.Fatalf("expected error for unknown semantics")
	}
}

func TestSemanticsStaysOpen(t *testing.T) {
	for _, s := range []Semantics{None, Help} {
		if !s.StaysOpen() {
			t.Fatalf("expected %s to stay open", s)
		}
	}
	for _, s := range []Semantics{OKDone, CancelClose, Apply, Finish, Other} {
		if s.StaysOpen() {
			t.Fatalf("expected %s to close", s)
		}
	}
}

func TestSemanticsConverter(t *testing.T) {
	conv := SemanticsConverter(map[Semantics]string{OKDone: "confirmed"}, "dismissed")
	ok := OKBtn
	apply := ApplyBtn
	if got := conv(&ok); got != "confirmed" {
		t.Fatalf("expected confirmed, got %q", got)
	}
	if got := conv(&apply); got != "dismissed" {
		t.Fatalf("expected fallback for unmapped button, got %q", got)
	}
	if got := conv(nil); got != "dismissed" {
		t.Fatalf("expected fallback for no button, got %q", got)
	}
}

func TestLabelConverter(t *testing.T) {
	conv := LabelConverter(map[string]int{"Delete": 2}, -1)
	btn := ButtonSpec{Label: "Delete"}
	if got := conv(&btn); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := conv(nil); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestButtonConverterReturnsActivatedSpec(t *testing.T) {
	conv := ButtonConverter()
	if conv(nil) != nil {
		t.Fatalf("expected nil for no button")
	}
	btn := YesBtn
	if got := conv(&btn); got == nil || got.Label != "Yes" {
		t.Fatalf("expected Yes, got %#v", got)
	}
}

func TestStockButtons(t *testing.T) {
	if b := Stock(OKDone); !b.Default || b.Label != "OK" {
		t.Fatalf("expected default OK, got %#v", b)
	}
	if b := Stock(CancelClose); !b.IsCancel() {
		t.Fatalf("expected cancel button, got %#v", b)
	}
	if b := Stock(Other); b.Label != "other" {
		t.Fatalf("expected bare label, got %#v", b)
	}
	custom := ApplyBtn.WithLabel("Save").AsDefault()
	if custom.Label != "Save" || !custom.Default || ApplyBtn.Default {
		t.Fatalf("expected copy semantics, got %#v", custom)
	}
}

func TestParseRoleAndModality(t *testing.T) {
	if r, err := ParseRole(""); err != nil || r != RoleDialog {
		t.Fatalf("expected dialog role by default, got %s (%v)", r, err)
	}
	if r, err := ParseRole("Alert"); err != nil || r != RoleAlert {
		t.Fatalf("expected alert, got %s (%v)", r, err)
	}
	if _, err := ParseRole("popup"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
	if m, err := ParseModality(""); err != nil || m != ModalityApplication {
		t.Fatalf("expected application modality by default, got %s (%v)", m, err)
	}
	if m, err := ParseModality("window"); err != nil || m != ModalityWindow {
		t.Fatalf("expected window, got %s (%v)", m, err)
	}
	if _, err := ParseModality("system"); err == nil {
		t.Fatalf("expected error for unknown modality")
	}
}
