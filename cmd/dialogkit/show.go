// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shayne/yargs"

	"github.com/shayne/dialogkit/internal/clipboard"
	"github.com/shayne/dialogkit/internal/config"
	"github.com/shayne/dialogkit/internal/dialog"
	"github.com/shayne/dialogkit/internal/dialogfile"
	"github.com/shayne/dialogkit/internal/logging"
	"github.com/shayne/dialogkit/internal/tui"
	"github.com/shayne/dialogkit/internal/uiloop"
)

var (
	errNoResult = errors.New("dialog closed without a result")
	errDeclined = errors.New("not confirmed")
)

type showFlags struct {
	File     string   `flag:"file" short:"f" help:"load the dialog from a TOML definition"`
	Title    string   `flag:"title" help:"window title"`
	Content  string   `flag:"content" short:"c" help:"body text"`
	Markdown bool     `flag:"markdown" help:"render the body as markdown"`
	Buttons  []string `flag:"button" short:"b" help:"button as Label[:semantics][:default][:cancel][=result] (repeatable)"`
	Role     string   `flag:"role" help:"accessible role (dialog, alert, or node)"`
	Closed   string   `flag:"closed" help:"result printed when closed without a button"`
	Style    string   `flag:"style" help:"host style (auto, full, inline, or line)"`
	JSON     bool     `flag:"json" help:"print the result as JSON"`
	Copy     bool     `flag:"copy" help:"copy the result to the clipboard"`
	Log      string   `flag:"log" help:"append debug logs to this file"`
}

type showArgs struct {
	Header string `pos:"0?" help:"header text"`
}

type confirmFlags struct {
	Title   string `flag:"title" help:"window title"`
	Content string `flag:"content" short:"c" help:"body text"`
	YesNo   bool   `flag:"yes-no" help:"use Yes/No buttons instead of OK/Cancel"`
	Style   string `flag:"style" help:"host style (auto, full, inline, or line)"`
	Log     string `flag:"log" help:"append debug logs to this file"`
}

type confirmArgs struct {
	Header string `pos:"0" help:"question to ask"`
}

// outcome is what a showing produced.
type outcome struct {
	ID     string  `json:"id"`
	Result *string `json:"result"`
	Button *string `json:"button"`
	// Semantics is empty when no button closed the dialog.
	Semantics string `json:"semantics,omitempty"`
}

// session is one CLI invocation's UI loop and host.
type session struct {
	cfg     config.Config
	loop    *uiloop.Loop
	host    dialog.Host
	style   string
	ui      io.Writer
	cleanup func()
}

func openSession(style, logPath string) (*session, error) {
	cfg, _, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logPath == "" {
		logPath = cfg.LogFile
	}
	cleanup, err := logging.Setup(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	if cfg.NoColor {
		_ = os.Setenv("NO_COLOR", "1")
	}
	if style == "" {
		style = cfg.Style
	}
	// Dialogs draw on stderr so stdout carries only the result.
	host, chosen, err := tui.NewHost(style, os.Stdin, os.Stderr)
	if err != nil {
		cleanup()
		return nil, newUsageError(err.Error())
	}
	return &session{
		cfg:     cfg,
		loop:    uiloop.New(),
		host:    host,
		style:   chosen,
		ui:      os.Stderr,
		cleanup: cleanup,
	}, nil
}

func (s *session) Close() {
	s.loop.Close()
	s.cleanup()
}

func (s *session) newDialog() *dialog.Dialog[string] {
	d := dialog.New[string](s.loop, s.host, nil, dialog.WithLogger(logging.Logger("dialog")))
	if s.style == config.StyleFull {
		if size, ok := tui.TerminalSize(s.ui); ok {
			_ = d.SetOwner(size)
		}
	}
	return d
}

// run shows d and pumps the loop until it hides or ctx ends. An ended ctx
// hides the dialog without a result.
func (s *session) run(ctx context.Context, d *dialog.Dialog[string]) (outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	out := outcome{ID: d.ID()}
	d.OnHidden(func(e dialog.Event) {
		if e.Button != nil {
			label := e.Button.Label
			out.Button = &label
			out.Semantics = e.Button.Semantics.String()
		}
		cancel()
	})
	if err := d.Show(); err != nil {
		return out, err
	}
	if err := s.loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return out, err
	}
	if d.Phase() != dialog.Hidden {
		d.Hide()
	}
	if result, ok := d.Result(); ok {
		out.Result = &result
	}
	return out, nil
}

func handleShowCommand(ctx context.Context, args []string) error {
	markdown, err := parseBoolFlagValue(args, "markdown")
	if err != nil {
		return newUsageError(err.Error())
	}
	result, err := yargs.ParseAndHandleHelp[struct{}, showFlags, showArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags

	def, err := definitionFromFlags(flags, result.Args.Header)
	if err != nil {
		return newUsageError(err.Error())
	}

	s, err := openSession(flags.Style, flags.Log)
	if err != nil {
		return err
	}
	defer s.Close()

	if flags.File == "" && !markdown.set {
		def.Markdown = s.cfg.Markdown
	}
	d := s.newDialog()
	if err := def.Apply(d, s.cfg); err != nil {
		return err
	}
	out, err := s.run(ctx, d)
	if err != nil {
		return err
	}
	return reportOutcome(os.Stdout, out, flags.JSON, flags.Copy)
}

// definitionFromFlags builds a definition from --file, or from the inline
// flags when no file is given. A dialog without buttons gets a stock OK.
func definitionFromFlags(flags showFlags, header string) (dialogfile.File, error) {
	if flags.File != "" {
		if len(flags.Buttons) > 0 || header != "" {
			return dialogfile.File{}, errors.New("--file cannot be combined with a header or --button")
		}
		return dialogfile.Load(flags.File)
	}
	def := dialogfile.File{
		Title:    flags.Title,
		Header:   header,
		Content:  flags.Content,
		Markdown: flags.Markdown,
		Role:     flags.Role,
		Closed:   flags.Closed,
	}
	for _, raw := range flags.Buttons {
		b, err := parseButtonFlag(raw)
		if err != nil {
			return dialogfile.File{}, err
		}
		def.Buttons = append(def.Buttons, b)
	}
	if len(def.Buttons) == 0 {
		def.Buttons = []dialogfile.Button{{Semantics: dialog.OKDone}}
	}
	if err := def.Validate(); err != nil {
		return dialogfile.File{}, err
	}
	return def, nil
}

func reportOutcome(w io.Writer, out outcome, asJSON, copyResult bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else if out.Result != nil {
		fmt.Fprintln(w, *out.Result)
	}
	if out.Result == nil {
		return newSilentError(errNoResult)
	}
	if copyResult {
		if err := clipboard.WriteText(*out.Result); err != nil {
			return fmt.Errorf("failed to copy result: %w", err)
		}
	}
	return nil
}

func handleConfirmCommand(ctx context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, confirmFlags, confirmArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	header := strings.TrimSpace(result.Args.Header)
	if header == "" {
		return newUsageError("confirm needs a question")
	}

	s, err := openSession(flags.Style, flags.Log)
	if err != nil {
		return err
	}
	defer s.Close()

	d := s.newDialog()
	d.SetTitle(flags.Title)
	d.SetHeader(header)
	d.SetContent(flags.Content, s.cfg.Markdown)
	if err := d.SetButtons(confirmButtons(s.cfg, flags.YesNo)...); err != nil {
		return err
	}
	d.SetConverter(dialog.SemanticsConverter(map[dialog.Semantics]string{
		dialog.OKDone: "yes",
		dialog.Yes:    "yes",
	}, "no"))
	out, err := s.run(ctx, d)
	if err != nil {
		return err
	}
	if out.Result == nil || *out.Result != "yes" {
		return newSilentError(errDeclined)
	}
	return nil
}

func confirmButtons(cfg config.Config, yesNo bool) []dialog.ButtonSpec {
	if yesNo {
		yes := dialog.YesBtn.AsDefault()
		no := dialog.NoBtn.AsCancel()
		return []dialog.ButtonSpec{
			yes.WithLabel(cfg.Label(yes.Semantics.String(), yes.Label)),
			no.WithLabel(cfg.Label(no.Semantics.String(), no.Label)),
		}
	}
	ok, cancel := dialog.OKBtn, dialog.CancelBtn
	return []dialog.ButtonSpec{
		ok.WithLabel(cfg.Label(ok.Semantics.String(), ok.Label)),
		cancel.WithLabel(cfg.Label(cancel.Semantics.String(), cancel.Label)),
	}
}
