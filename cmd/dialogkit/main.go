// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pelletier/go-toml/v2"
	"github.com/shayne/yargs"

	"github.com/shayne/dialogkit/internal/config"
)

func main() {
	if err := runCLI(); err != nil {
		reportCLIError(err)
		os.Exit(1)
	}
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

type silentError struct {
	err error
}

func (e silentError) Error() string {
	return e.err.Error()
}

func (e silentError) Unwrap() error {
	return e.err
}

func reportCLIError(err error) {
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(os.Stderr, usageErr.message)
		return
	}
	var quietErr silentError
	if errors.As(err, &quietErr) {
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

func newUsageError(message string) error {
	return usageError{message: message}
}

func newSilentError(err error) error {
	if err == nil {
		return nil
	}
	return silentError{err: err}
}

var (
	version = "dev"
	commit  = ""
)

func runCLI() error {
	args := normalizeArgs(os.Args[1:])
	handlers := map[string]yargs.SubcommandHandler{
		"show":    handleShowCommand,
		"confirm": handleConfirmCommand,
		"config":  handleConfigCommand,
		"version": handleVersionCommand,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := yargs.RunSubcommands(ctx, args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

type configFlags struct {
	Style     string   `flag:"style" help:"default host style (auto, full, inline, or line)"`
	NoColor   bool     `flag:"no-color" help:"disable colors"`
	Markdown  bool     `flag:"markdown" help:"render content as markdown by default"`
	LogFile   string   `flag:"log-file" help:"append debug logs to this file"`
	SetLabels []string `flag:"set-label" help:"set a stock button label as semantics=Label (repeatable)"`
	Reset     bool     `flag:"reset" help:"remove the config file"`
}

var helpConfig = yargs.HelpConfig{
	Command: yargs.CommandInfo{
		Name:        "dialogkit",
		Description: "Show modal dialogs from scripts and report the chosen button",
		Examples: []string{
			"dialogkit --help",
			"dialogkit confirm \"Delete report.txt?\"",
			"dialogkit show \"Save changes?\" -b Save:ok_done:default -b Discard:no -b Cancel:cancel_close",
			"dialogkit show --file delete.toml --json",
			"dialogkit config --style inline --set-label ok_done=Continue",
			"dialogkit --version",
		},
	},
	SubCommands: map[string]yargs.SubCommandInfo{
		"show": {
			Name:        "show",
			Description: "Show a dialog and print the result",
			Usage:       "[<header>] [--button Label:semantics[:default][:cancel]]... | --file <path>",
			Examples: []string{
				"dialogkit show \"Deploy to production?\" -b Deploy:ok:default -b Cancel:cancel",
				"dialogkit show --file deploy.toml --copy",
			},
		},
		"confirm": {
			Name:        "confirm",
			Description: "Ask a yes/no question; exits 1 unless confirmed",
			Usage:       "<header>",
		},
		"config": {
			Name:        "config",
			Description: "Show or update the local configuration",
		},
		"version": {
			Name:        "version",
			Description: "Show CLI version",
		},
	},
}

func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"--help"}
	}
	if args[0] == "--version" {
		return append([]string{"version"}, args[1:]...)
	}
	if args[0] == "help" {
		return rewriteHelpArgs(args[1:])
	}
	return args
}

func rewriteHelpArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"--help"}
	}
	if isKnownCommand(args[0]) {
		return []string{args[0], "--help"}
	}
	return []string{"--help"}
}

func isKnownCommand(value string) bool {
	switch value {
	case "show", "confirm", "config", "version":
		return true
	default:
		return false
	}
}

func handleVersionCommand(_ context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, versionString())
	return nil
}

func handleConfigCommand(_ context.Context, args []string) error {
	noColor, err := parseBoolFlagValue(args, "no-color")
	if err != nil {
		return newUsageError(err.Error())
	}
	markdown, err := parseBoolFlagValue(args, "markdown")
	if err != nil {
		return newUsageError(err.Error())
	}
	result, err := yargs.ParseAndHandleHelp[struct{}, configFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}

	flags := result.SubCommandFlags
	if flags.Reset {
		if err := config.RemoveConfigFile(); err != nil {
			return fmt.Errorf("failed to remove config: %w", err)
		}
		fmt.Fprintln(os.Stdout, "removed config")
		return nil
	}

	cfg, path, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	updated := false
	if style := strings.TrimSpace(flags.Style); style != "" {
		cfg.Style = style
		updated = true
	}
	if noColor.set {
		cfg.NoColor = noColor.value
		updated = true
	}
	if markdown.set {
		cfg.Markdown = markdown.value
		updated = true
	}
	if logFile := strings.TrimSpace(flags.LogFile); logFile != "" {
		cfg.LogFile = logFile
		updated = true
	}
	for _, entry := range flags.SetLabels {
		semantics, label, err := parseLabelMapping(entry)
		if err != nil {
			return newUsageError(err.Error())
		}
		if cfg.Labels == nil {
			cfg.Labels = map[string]string{}
		}
		cfg.Labels[semantics] = label
		updated = true
	}
	if !updated {
		return showConfig(cfg, path)
	}
	if err := cfg.Validate(); err != nil {
		return newUsageError(err.Error())
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(os.Stdout, "wrote config to %s\n", path)
	return nil
}

func showConfig(cfg config.Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Config path: %s\n%s\n", path, string(data))
	return nil
}

type boolFlagValue struct {
	set   bool
	value bool
}

func parseBoolFlagValue(args []string, name string) (boolFlagValue, error) {
	flag := "--" + name
	prefix := flag + "="
	var value boolFlagValue
	for _, arg := range args {
		if arg == flag {
			if value.set {
				return value, fmt.Errorf("%s specified more than once", flag)
			}
			value = boolFlagValue{set: true, value: true}
			continue
		}
		if strings.HasPrefix(arg, prefix) {
			if value.set {
				return value, fmt.Errorf("%s specified more than once", flag)
			}
			raw := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(arg, prefix)))
			switch raw {
			case "true", "1":
				value = boolFlagValue{set: true, value: true}
			case "false", "0":
				value = boolFlagValue{set: true, value: false}
			default:
				return value, fmt.Errorf("invalid value for %s (expected true or false)", flag)
			}
		}
	}
	return value, nil
}

func versionString() string {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		trimmed = "dev"
	}
	if c := strings.TrimSpace(commit); c != "" {
		return fmt.Sprintf("%s (%s)", trimmed, c)
	}
	return trimmed
}
