// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/brockelmore/makepad/text/highlighting"
	"github.com/brockelmore/makepad/text/languages"
	"github.com/spf13/cobra"
)

func (a *app) highlightCmd() *cobra.Command {
	var asHTML, classes, css bool
	var style string
	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Print a file with syntax highlighting",
		Long: `Print a file with syntax highlighting, for the terminal or as HTML.

The style is any chroma style name; an unknown name falls back to the
default style.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if style == "" {
				style = a.cfg.Style
			}
			hi := highlighting.NewHighlighter(highlighting.HighlightingName(style))
			hi.Classes = classes
			if css {
				return hi.CSS(cmd.OutOrStdout())
			}
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
			if asHTML {
				return hi.HTML(cmd.OutOrStdout(), rs.Flat, rs.Chunks)
			}
			return hi.Terminal(cmd.OutOrStdout(), rs.Flat, rs.Chunks)
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "write HTML instead of terminal colors")
	cmd.Flags().BoolVar(&classes, "classes", false, "use CSS classes in HTML output")
	cmd.Flags().BoolVar(&css, "css", false, "write the CSS for --classes output and exit")
	cmd.Flags().StringVarP(&style, "style", "s", "", "highlighting style")
	return cmd
}
