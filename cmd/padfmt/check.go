// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/brockelmore/makepad/base/errors"
	"github.com/brockelmore/makepad/text/languages"
	"github.com/brockelmore/makepad/text/lexer"
	"github.com/brockelmore/makepad/text/textpos"
	"github.com/brockelmore/makepad/text/token"
	"github.com/spf13/cobra"
)

// errCheck is returned when any checked file has unbalanced delimiters.
var errCheck = errors.New("check failed")

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Check that delimiters are balanced",
		Long: `Check that the delimiters of each file are balanced, failing if not.

Warnings are printed for a group closed by the wrong kind of bracket
and for unexpected tokens, which do not fail the check.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			failed := false
			for _, path := range args {
				ok, err := a.checkFile(cmd, path)
				if err != nil {
					return err
				}
				failed = failed || !ok
			}
			if failed {
				return errCheck
			}
			return nil
		},
	}
}

// checkFile reports the problems of one file, returning false if its
// delimiters are unbalanced.
func (a *app) checkFile(cmd *cobra.Command, path string) (bool, error) {
	src, err := readSource(cmd, path)
	if err != nil {
		return false, err
	}
	lang, err := a.language(path)
	if err != nil {
		return false, err
	}
	lines := languages.SplitLines(string(src))
	rs := languages.Lex(lang, lines, nil)
	w := cmd.OutOrStdout()
	at := func(i int) textpos.Pos {
		return textpos.FromOffset(lines, rs.Chunks[i].Offset)
	}
	for _, p := range lexer.MismatchedPairs(rs.Flat, rs.Chunks) {
		fmt.Fprintf(w, "%s:%s: warning: %s closed by %s at %s\n", path, at(p.Open), rs.Text(p.Open), rs.Text(p.Close), at(p.Close))
	}
	for i, ch := range rs.Chunks {
		if ch.Kind == token.Unexpected {
			fmt.Fprintf(w, "%s:%s: warning: unexpected %q\n", path, at(i), rs.Text(i))
		}
	}
	if rs.InvalidPairing {
		fmt.Fprintf(w, "%s: unbalanced delimiters\n", path)
		return false, nil
	}
	slog.Debug("check ok", "file", path, "tokens", len(rs.Chunks))
	return true, nil
}
