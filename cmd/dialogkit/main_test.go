// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shayne/dialogkit/internal/config"
	"github.com/shayne/dialogkit/internal/dialog"
	"github.com/shayne/dialogkit/internal/dialogfile"
)

func TestNormalizeArgs(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{nil, []string{"--help"}},
		{[]string{"--version"}, []string{"version"}},
		{[]string{"help"}, []string{"--help"}},
		{[]string{"help", "show"}, []string{"show", "--help"}},
		{[]string{"help", "bogus"}, []string{"--help"}},
		{[]string{"confirm", "Sure?"}, []string{"confirm", "Sure?"}},
	}
	for _, tc := range cases {
		if got := normalizeArgs(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("normalizeArgs(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestParseButtonFlag(t *testing.T) {
	cases := map[string]dialogfile.Button{
		"Save":                     {Label: "Save", Semantics: dialog.Other},
		"Save:ok_done:default":     {Label: "Save", Semantics: dialog.OKDone, Default: true},
		"Keep:cancel":              {Label: "Keep", Semantics: dialog.CancelClose},
		":ok":                      {Semantics: dialog.OKDone},
		"Discard:no:cancel=thrown": {Label: "Discard", Semantics: dialog.No, Cancel: true, Result: "thrown"},
		"Later:default":            {Label: "Later", Semantics: dialog.Other, Default: true},
	}
	for in, want := range cases {
		got, err := parseButtonFlag(in)
		if err != nil {
			t.Fatalf("parseButtonFlag(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("parseButtonFlag(%q): expected %+v, got %+v", in, want, got)
		}
	}
	for _, bad := range []string{"", ":", "Go:maybe", "Go:ok:loud"} {
		if _, err := parseButtonFlag(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseLabelMapping(t *testing.T) {
	name, label, err := parseLabelMapping("ok=Continue")
	if err != nil || name != "ok_done" || label != "Continue" {
		t.Fatalf("expected ok_done=Continue, got %q=%q (%v)", name, label, err)
	}
	for _, bad := range []string{"ok", "maybe=Go", "ok=", "=Go"} {
		if _, _, err := parseLabelMapping(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDefinitionFromFlagsDefaultsToOK(t *testing.T) {
	def, err := definitionFromFlags(showFlags{Content: "Done."}, "Build finished")
	if err != nil {
		t.Fatalf("definitionFromFlags: %v", err)
	}
	specs := def.Specs(nil)
	if len(specs) != 1 || specs[0] != dialog.OKBtn {
		t.Fatalf("expected a stock OK button, got %+v", specs)
	}
	if def.Header != "Build finished" || def.Content != "Done." {
		t.Fatalf("unexpected definition: %+v", def)
	}
}

func TestDefinitionFromFlagsRejectsMixedFile(t *testing.T) {
	_, err := definitionFromFlags(showFlags{File: "x.toml", Buttons: []string{"OK"}}, "")
	if err == nil {
		t.Fatalf("expected error when mixing --file and --button")
	}
	_, err = definitionFromFlags(showFlags{Buttons: []string{"Go", "go"}}, "Twice")
	if err == nil {
		t.Fatalf("expected duplicate button error")
	}
}

func TestDefinitionFromFlagsLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.toml")
	data := "header = \"From file\"\n[[buttons]]\nsemantics = \"yes\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	def, err := definitionFromFlags(showFlags{File: path}, "")
	if err != nil {
		t.Fatalf("definitionFromFlags: %v", err)
	}
	if def.Header != "From file" || len(def.Buttons) != 1 {
		t.Fatalf("unexpected definition: %+v", def)
	}
}

func TestReportOutcome(t *testing.T) {
	result, button := "confirmed", "OK"
	out := outcome{ID: "01ABC", Result: &result, Button: &button, Semantics: "ok_done"}

	var buf bytes.Buffer
	if err := reportOutcome(&buf, out, false, false); err != nil {
		t.Fatalf("report: %v", err)
	}
	if buf.String() != "confirmed\n" {
		t.Fatalf("expected plain result, got %q", buf.String())
	}

	buf.Reset()
	if err := reportOutcome(&buf, out, true, false); err != nil {
		t.Fatalf("report json: %v", err)
	}
	want := `{"id":"01ABC","result":"confirmed","button":"OK","semantics":"ok_done"}`
	if strings.TrimSpace(buf.String()) != want {
		t.Fatalf("expected %s, got %s", want, buf.String())
	}

	buf.Reset()
	err := reportOutcome(&buf, outcome{ID: "01ABC"}, true, false)
	var quiet silentError
	if !errors.As(err, &quiet) || !errors.Is(err, errNoResult) {
		t.Fatalf("expected silent no-result error, got %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"id":"01ABC","result":null,"button":null}` {
		t.Fatalf("expected null result json, got %s", buf.String())
	}
}

func TestConfirmButtonsUseConfiguredLabels(t *testing.T) {
	cfg := config.Default()
	cfg.Labels["ok_done"] = "Proceed"
	got := confirmButtons(cfg, false)
	if got[0].Label != "Proceed" || !got[0].Default || got[1].Label != "Cancel" || !got[1].Cancel {
		t.Fatalf("unexpected ok/cancel buttons: %+v", got)
	}
	got = confirmButtons(cfg, true)
	if got[0].Label != "Yes" || !got[0].Default || !got[1].Cancel {
		t.Fatalf("unexpected yes/no buttons: %+v", got)
	}
}

func TestParseBoolFlagValue(t *testing.T) {
	v, err := parseBoolFlagValue([]string{"--no-color=false"}, "no-color")
	if err != nil || !v.set || v.value {
		t.Fatalf("expected explicit false, got %+v (%v)", v, err)
	}
	v, err = parseBoolFlagValue([]string{"--style", "line"}, "no-color")
	if err != nil || v.set {
		t.Fatalf("expected unset, got %+v (%v)", v, err)
	}
	if _, err := parseBoolFlagValue([]string{"--markdown", "--markdown=1"}, "markdown"); err == nil {
		t.Fatalf("expected duplicate flag error")
	}
}

func TestVersionString(t *testing.T) {
	oldVersion, oldCommit := version, commit
	defer func() { version, commit = oldVersion, oldCommit }()
	version, commit = "1.2.0", "abc123"
	if got := versionString(); got != "1.2.0 (abc123)" {
		t.Fatalf("expected version with commit, got %q", got)
	}
	version, commit = " ", ""
	if got := versionString(); got != "dev" {
		t.Fatalf("expected dev, got %q", got)
	}
}
