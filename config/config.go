// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the padfmt tool,
// stored as TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brockelmore/makepad/base/fsx"
	"github.com/brockelmore/makepad/text/format"
	"github.com/brockelmore/makepad/text/languages"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file location, before home expansion.
const DefaultPath = "~/.config/padfmt/config.toml"

// Config is the main config struct
// that contains all of the configuration
// options for the padfmt tool.
type Config struct {

	// the language for standard input and for files whose
	// extension does not select one
	Language string `toml:"language" desc:"the language for standard input and for files whose extension does not select one"`

	// the highlighting style for the highlight command
	Style string `toml:"style" desc:"the highlighting style for the highlight command"`

	// the quiet period, in milliseconds, before watch mode
	// re-tokenizes a changed file
	DebounceMS int `toml:"debounce_ms" desc:"the quiet period, in milliseconds, before watch mode re-tokenizes a changed file"`

	// format option overrides by language name, with the keys of
	// [format.Options]; keys not given keep the language defaults
	Format map[string]map[string]any `toml:"format" desc:"format option overrides by language name"`
}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Language:   "solidity",
		Style:      "emacs",
		DebounceMS: 100,
	}
}

// Path returns the expanded path of the config file: path itself if
// given, else [DefaultPath].
func Path(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	return homedir.Expand(path)
}

// Open reads the config file at path, expanding a leading ~. A missing
// file gives the defaults. Values in the file override the defaults.
func Open(path string) (*Config, error) {
	path, err := Path(path)
	if err != nil {
		return nil, err
	}
	c := Defaults()
	ok, err := fsx.FileExists(path)
	if err != nil || !ok {
		return c, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Save writes the config to path, expanding a leading ~ and creating
// the directory if needed.
func (c *Config) Save(path string) error {
	path, err := Path(path)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return fsx.WriteFile(path, b)
}

// Validate checks that the named languages are registered and that the
// format overrides decode.
func (c *Config) Validate() error {
	if c.Language != "" {
		if _, err := languages.ForName(c.Language); err != nil {
			return err
		}
	}
	for nm := range c.Format {
		lang, err := languages.ForName(nm)
		if err != nil {
			return err
		}
		if _, err := c.FormatOptions(lang); err != nil {
			return err
		}
	}
	return nil
}

// Debounce returns the watch debounce as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// FormatOptions returns the format options for the language: its
// defaults with the configured overrides applied.
func (c *Config) FormatOptions(lang languages.Language) (format.Options, error) {
	opts := lang.FormatOptions()
	over, ok := c.Format[lang.Name()]
	if !ok || len(over) == 0 {
		return opts, nil
	}
	b, err := toml.Marshal(over)
	if err != nil {
		return opts, err
	}
	if err := toml.Unmarshal(b, &opts); err != nil {
		return lang.FormatOptions(), fmt.Errorf("format options for %s: %w", lang.Name(), err)
	}
	return opts, nil
}
