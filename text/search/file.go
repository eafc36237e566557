// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"fmt"
	"os"

	"github.com/brockelmore/makepad/base/fileinfo"
	"github.com/brockelmore/makepad/text/languages"
	"github.com/brockelmore/makepad/text/textpos"
)

// Results is used to report search results.
type Results struct {
	Filepath string
	Count    int
	Matches  []textpos.Match
}

// Text tokenizes src in the given language and returns the
// occurrences of name in it.
func Text(lang languages.Language, src []byte, name string) (int, []textpos.Match) {
	ix := NewIndex()
	languages.Lex(lang, languages.SplitLines(string(src)), ix.Hook)
	return ix.Count(name), ix.Matches(name)
}

// File searches the named file for name, using the language of the
// file extension.
func File(path, name string) (Results, error) {
	lang, err := languages.ForFilename(path)
	if err != nil {
		return Results{}, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return Results{}, err
	}
	if err := fileinfo.CheckText(path, src); err != nil {
		return Results{}, fmt.Errorf("search.File: %w", err)
	}
	cnt, matches := Text(lang, src, name)
	return Results{Filepath: path, Count: cnt, Matches: matches}, nil
}
