// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/brockelmore/makepad/base/fileinfo"
	"github.com/brockelmore/makepad/config"
	"github.com/brockelmore/makepad/text/languages"
	_ "github.com/brockelmore/makepad/text/languages/supportedlanguages"
	"github.com/spf13/cobra"
)

var version = "dev"

// app holds the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	lang    string
	verbose bool
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "padfmt",
		Short:         "Format and inspect Rust-like and Solidity-like source",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default: "+config.DefaultPath+")")
	root.PersistentFlags().StringVarP(&a.lang, "lang", "l", "", "language, overriding the file extension")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(
		a.fmtCmd(),
		a.tokensCmd(),
		a.checkCmd(),
		a.highlightCmd(),
		a.watchCmd(),
		a.langsCmd(),
		a.findCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	cfg, err := config.Open(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	slog.Debug("config", "language", cfg.Language, "style", cfg.Style)
	return nil
}

// language returns the language for the file: the --lang flag, else
// the file extension, else the configured default.
func (a *app) language(path string) (languages.Language, error) {
	if a.lang != "" {
		return languages.ForName(a.lang)
	}
	if path != "" && path != "-" {
		if l, err := languages.ForFilename(path); err == nil {
			return l, nil
		}
	}
	return languages.ForName(a.cfg.Language)
}

// readSource reads the file, or standard input for "" or "-", and
// rejects binary content.
func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	var b []byte
	var err error
	name := path
	if path == "" || path == "-" {
		name = "<stdin>"
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if err := fileinfo.CheckText(name, b); err != nil {
		return nil, err
	}
	return b, nil
}
