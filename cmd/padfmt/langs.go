// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/brockelmore/makepad/text/languages"
	"github.com/spf13/cobra"
)

func (a *app) langsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List the supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range languages.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.Name(), strings.Join(l.Extensions(), " "))
			}
			return nil
		},
	}
}
