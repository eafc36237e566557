// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/brockelmore/makepad/base/errors"
	"github.com/brockelmore/makepad/base/fileinfo"
	"github.com/brockelmore/makepad/base/watcher"
	"github.com/brockelmore/makepad/text/lexer"
	"github.com/brockelmore/makepad/text/lines"
	"github.com/spf13/cobra"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch files...",
		Short: "Re-tokenize files whenever they change",
		Long: `Watch files and re-tokenize each one whenever it is written,
logging its token count and whether its delimiters are balanced.
Stops on interrupt.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), args)
		},
	}
}

// watch runs until ctx is done or the watcher stops.
func (a *app) watch(ctx context.Context, paths []string) error {
	w, err := watcher.New(a.cfg.Debounce(), paths...)
	if err != nil {
		return err
	}
	defer func() { errors.Log(w.Stop()) }()
	changes, err := w.Start()
	if err != nil {
		return err
	}
	docs := map[string]*lines.Lines{}
	for _, path := range paths {
		lang, err := a.language(path)
		if err != nil {
			return err
		}
		ls := lines.NewLines(lang)
		ls.AddObserver(func(rs *lexer.Result) {
			slog.Info("tokenized", "file", path, "tokens", len(rs.Chunks), "unbalanced", rs.InvalidPairing)
		})
		docs[absPath(path)] = ls
		reload(path, ls)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-changes:
			if !ok {
				return nil
			}
			if ls, ok := docs[name]; ok {
				reload(name, ls)
			}
		}
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// reload reads the file into ls and tokenizes it, logging any error.
func reload(path string, ls *lines.Lines) {
	b, err := os.ReadFile(path)
	if errors.Log(err) != nil {
		return
	}
	if errors.Log(fileinfo.CheckText(path, b)) != nil {
		return
	}
	ls.SetText(b)
	ls.Tokens()
}
