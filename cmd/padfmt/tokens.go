// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/brockelmore/makepad/text/languages"
	"github.com/spf13/cobra"
)

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a file",
		Long:  "Print one line per token: index, kind, offset, length, pair index and quoted text.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readSource(cmd, path)
			if err != nil {
				return err
			}
			lang, err := a.language(path)
			if err != nil {
				return err
			}
			rs := languages.Lex(lang, languages.SplitLines(string(src)), nil)
			w := cmd.OutOrStdout()
			for i, ch := range rs.Chunks {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%q\n", i, ch.Kind, ch.Offset, ch.Len, ch.Pair, rs.Text(i))
			}
			if rs.InvalidPairing {
				fmt.Fprintln(w, "# unbalanced delimiters")
			}
			return nil
		},
	}
}
