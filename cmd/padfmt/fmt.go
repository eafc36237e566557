// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/brockelmore/makepad/base/fsx"
	"github.com/brockelmore/makepad/text/languages"
	"github.com/spf13/cobra"
)

func (a *app) fmtCmd() *cobra.Command {
	var write, diff bool
	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format files, or standard input",
		Long: `Format files, or standard input if none are given.

By default the formatted text is written to standard output.

Examples:
  # Format in place
  padfmt fmt -w contracts/Token.sol

  # Show what would change
  padfmt fmt -d src/main.rs

  # Format standard input as rust
  cat x.txt | padfmt fmt -l rust`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, path := range args {
				if err := a.formatFile(cmd, path, write, diff); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result to the file instead of standard output")
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "print a line diff instead of the formatted text")
	return cmd
}

func (a *app) formatFile(cmd *cobra.Command, path string, write, diff bool) error {
	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}
	lang, err := a.language(path)
	if err != nil {
		return err
	}
	opts, err := a.cfg.FormatOptions(lang)
	if err != nil {
		return err
	}
	out := languages.FormatText(lang, string(src), opts)
	slog.Debug("formatted", "file", path, "language", lang.Name(), "changed", out != string(src))
	switch {
	case diff:
		if out != string(src) {
			fmt.Fprint(cmd.OutOrStdout(), lineDiff(path, string(src), out))
		}
	case write && path != "-":
		if out == string(src) {
			return nil
		}
		if err := fsx.WriteFile(path, []byte(out)); err != nil {
			return err
		}
		slog.Info("formatted", "file", path)
	default:
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	return nil
}
