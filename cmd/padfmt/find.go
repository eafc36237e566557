// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/brockelmore/makepad/text/search"
	"github.com/spf13/cobra"
)

func (a *app) findCmd() *cobra.Command {
	var exclude []string
	cmd := &cobra.Command{
		Use:   "find name [dir]",
		Short: "Find a name in the source files of a directory",
		Long: `Find the tokens spelling name in the source files under dir, the
current directory by default. Names in comments and strings are not
matched. Files are listed by number of matches.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 2 {
				dir = args[1]
			}
			for _, res := range search.All(dir, args[0], exclude...) {
				for _, m := range res.Matches {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%s: %s\n", res.Filepath, m.Region.Start, string(m.Text))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "file or directory name to skip (repeatable)")
	return cmd
}
