// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dialogfile loads dialog definitions from TOML.
//
//	title = "Delete"
//	header = "Delete report.txt?"
//	content = "This cannot be undone."
//	closed = "dismissed"
//
//	[[buttons]]
//	semantics = "ok"
//	result = "confirmed"
//
//	[[buttons]]
//	label = "Keep"
//	semantics = "cancel"
//	cancel = true
//
// A button without a label is the stock button for its semantics, flags
// included. A labelled button carries only the flags it sets, and closes the
// dialog as "other" when it names no semantics.
package dialogfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/shayne/dialogkit/internal/dialog"
)

type File struct {
	Title    string   `toml:"title"`
	Header   string   `toml:"header"`
	Content  string   `toml:"content"`
	Markdown bool     `toml:"markdown"`
	Role     string   `toml:"role"`
	Modality string   `toml:"modality"`
	Closed   string   `toml:"closed"`
	Buttons  []Button `toml:"buttons"`
}

type Button struct {
	Label     string           `toml:"label"`
	Semantics dialog.Semantics `toml:"semantics"`
	Default   bool             `toml:"default"`
	Cancel    bool             `toml:"cancel"`
	// Result is printed when the button closes the dialog. Empty means the
	// label.
	Result string `toml:"result"`
}

// Labeler supplies configured labels for stock buttons.
type Labeler interface {
	Label(semantics, fallback string) string
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a definition and rejects unknown keys.
func Parse(data []byte) (File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return File{}, fmt.Errorf("line %d column %d: %s", row, col, derr.Error())
		}
		return File{}, err
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

func (f File) Validate() error {
	return f.validate(nil)
}

// validate checks the definition as it resolves with labels, so configured
// stock labels cannot collide with custom ones.
func (f File) validate(labels Labeler) error {
	if _, err := dialog.ParseRole(f.Role); err != nil {
		return err
	}
	if _, err := dialog.ParseModality(f.Modality); err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, b := range f.Specs(labels) {
		key := strings.ToLower(b.Label)
		if seen[key] {
			return fmt.Errorf("duplicate button %q", b.Label)
		}
		seen[key] = true
	}
	return nil
}

// Specs returns the buttons in file order. labels may be nil.
func (f File) Specs(labels Labeler) []dialog.ButtonSpec {
	specs := make([]dialog.ButtonSpec, 0, len(f.Buttons))
	for _, b := range f.Buttons {
		specs = append(specs, b.spec(labels))
	}
	return specs
}

func (b Button) spec(labels Labeler) dialog.ButtonSpec {
	if strings.TrimSpace(b.Label) == "" {
		spec := dialog.Stock(b.Semantics)
		if labels != nil {
			spec.Label = labels.Label(b.Semantics.String(), spec.Label)
		}
		spec.Default = spec.Default || b.Default
		spec.Cancel = spec.Cancel || b.Cancel
		return spec
	}
	semantics := b.Semantics
	if semantics == dialog.None {
		semantics = dialog.Other
	}
	return dialog.ButtonSpec{
		Label:     strings.TrimSpace(b.Label),
		Semantics: semantics,
		Default:   b.Default,
		Cancel:    b.Cancel,
	}
}

// Converter maps the activated button to its result, and no button to
// Closed.
func (f File) Converter(labels Labeler) dialog.ResultConverter[string] {
	table := make(map[string]string, len(f.Buttons))
	for _, b := range f.Buttons {
		spec := b.spec(labels)
		result := b.Result
		if result == "" {
			result = spec.Label
		}
		table[spec.Label] = result
	}
	return dialog.LabelConverter(table, f.Closed)
}

// Apply configures d from the definition. d must not be showing.
func (f File) Apply(d *dialog.Dialog[string], labels Labeler) error {
	if err := f.validate(labels); err != nil {
		return err
	}
	role, err := dialog.ParseRole(f.Role)
	if err != nil {
		return err
	}
	modality, err := dialog.ParseModality(f.Modality)
	if err != nil {
		return err
	}
	if err := d.SetModality(modality); err != nil {
		return err
	}
	if err := d.SetButtons(f.Specs(labels)...); err != nil {
		return err
	}
	d.SetTitle(f.Title)
	d.SetHeader(f.Header)
	d.SetContent(f.Content, f.Markdown)
	d.SetAccessibleRole(role)
	d.SetConverter(f.Converter(labels))
	return nil
}
