// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/optz/pkg/colors"
)

const configFileName = "optz.toml"

// config is the optz tool configuration.
type config struct {
	Format     string `toml:"format,omitempty"`
	Help       string `toml:"help,omitempty"`
	Color      string `toml:"color,omitempty"`
	MaxRetries int    `toml:"max_retries,omitempty"`
}

var (
	userConfigDir = os.UserConfigDir
	getenv        = os.Getenv
)

// loadConfig reads the config file and applies environment overrides.
// path is the --config flag value. Without it, $OPTZ_CONFIG and then the
// user config directory are tried; only an explicitly named file must exist.
func loadConfig(path string) (config, error) {
	cfg := config{Format: "text", Help: "detailed", Color: "auto"}

	explicit := true
	if path == "" {
		path = getenv("OPTZ_CONFIG")
	}
	if path == "" {
		explicit = false
		dir, err := userConfigDir()
		if err == nil {
			path = filepath.Join(dir, "optz", configFileName)
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if v := getenv("OPTZ_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := getenv("OPTZ_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := getenv("OPTZ_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config{}, fmt.Errorf("invalid OPTZ_MAX_RETRIES %q: %w", v, err)
		}
		cfg.MaxRetries = n
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if err := validateFormat(c.Format); err != nil {
		return err
	}
	switch c.Help {
	case "detailed", "brief":
	default:
		return fmt.Errorf("invalid help mode %q (want detailed or brief)", c.Help)
	}
	if _, err := c.colorLevel(); err != nil {
		return err
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("invalid max_retries %d", c.MaxRetries)
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case "json", "yaml", "text":
		return nil
	}
	return fmt.Errorf("invalid format %q (want json, yaml or text)", format)
}

// colorLevel resolves the configured color mode. "auto" detects the level
// supported by stdout.
func (c config) colorLevel() (colors.Level, error) {
	if c.Color == "" || c.Color == "auto" {
		return colors.Auto(), nil
	}
	l, ok := colors.ParseLevel(c.Color)
	if !ok {
		return colors.None, fmt.Errorf("invalid color mode %q", c.Color)
	}
	return l, nil
}
