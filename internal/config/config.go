// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Styles accepted for Config.Style.
const (
	StyleAuto   = "auto"
	StyleFull   = "full"
	StyleInline = "inline"
	StyleLine   = "line"
)

type Config struct {
	Style    string            `toml:"style"`
	NoColor  bool              `toml:"no_color"`
	Markdown bool              `toml:"markdown"`
	LogFile  string            `toml:"log_file"`
	Labels   map[string]string `toml:"labels"`
}

func Default() Config {
	return Config{Style: StyleAuto, Labels: map[string]string{}}
}

func Load() (Config, string, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := loadToml(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), path, nil
	}
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the style name.
func (c Config) Validate() error {
	switch c.Style {
	case "", StyleAuto, StyleFull, StyleInline, StyleLine:
		return nil
	}
	return fmt.Errorf("invalid style %q (expected auto, full, inline, or line)", c.Style)
}

// Label returns the configured label for a semantics name, or fallback.
func (c Config) Label(semantics, fallback string) string {
	if label := strings.TrimSpace(c.Labels[semantics]); label != "" {
		return label
	}
	return fallback
}

func configPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		var err error
		configHome, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
	}

	return filepath.Join(configHome, "dialogkit", "config.toml"), nil
}

func loadToml(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Style == "" {
		cfg.Style = StyleAuto
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func RemoveConfigFile() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
