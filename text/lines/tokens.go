// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"log/slog"
	"slices"

	"github.com/brockelmore/makepad/text/format"
	"github.com/brockelmore/makepad/text/lexer"
	"github.com/brockelmore/makepad/text/textpos"
	"github.com/brockelmore/makepad/text/token"
)

// tokens returns the result of the latest pass, running a new one
// if the text changed since.
func (ls *Lines) tokens() *lexer.Result {
	if !ls.needsTokens && ls.result != nil {
		return ls.result
	}
	var hook lexer.Hook
	if len(ls.hooks) > 0 {
		hook = func(chunks token.Chunks, flat []rune) {
			for _, h := range ls.hooks {
				h(chunks, flat)
			}
		}
	}
	ls.result = lexer.Run(ls.lines, ls.language.NewTokenizer(), hook)
	ls.needsTokens = false
	if ls.result.InvalidPairing {
		slog.Debug("lines: unbalanced delimiters", "language", ls.language.Name())
	}
	for _, fun := range ls.observers {
		fun(ls.result)
	}
	return ls.result
}

func (ls *Lines) chunkAt(pos textpos.Pos) int {
	off := textpos.ToOffset(ls.lines, pos)
	if off < 0 {
		return -1
	}
	return ls.tokens().Chunks.Find(off)
}

func (ls *Lines) chunkRegion(i int) textpos.Region {
	rs := ls.tokens()
	if i < 0 || i >= len(rs.Chunks) || rs.Chunks[i].Kind == token.Eof || rs.IsTrailer(i) {
		return textpos.Region{Start: textpos.PosErr, End: textpos.PosErr}
	}
	ch := rs.Chunks[i]
	return textpos.RegionFromOffsets(ls.lines, ch.Offset, ch.End())
}

// autoFormat replaces the text with its formatted form, returning
// true if anything changed.
func (ls *Lines) autoFormat() bool {
	rs := ls.tokens()
	out := format.Format(rs.Flat, rs.Chunks, ls.formatOptions).Lines()
	if slices.EqualFunc(out, ls.lines, func(a, b []rune) bool { return slices.Equal(a, b) }) {
		return false
	}
	ls.setLines(out)
	ls.changed = true
	ls.tokens()
	return true
}
