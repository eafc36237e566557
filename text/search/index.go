// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search finds names in tokenized text: an Index built from the
// tokens of a tokenizer pass, and file and directory search on top of it.
// Matches are whole tokens, so a name inside a comment or string, or as
// part of a longer word, is not found.
package search

import (
	"slices"
	"sort"
	"strings"

	"github.com/brockelmore/makepad/text/textpos"
	"github.com/brockelmore/makepad/text/token"
)

// Indexed returns true for the token kinds recorded by an Index.
func Indexed(kind token.Kinds) bool {
	switch kind {
	case token.Identifier, token.Call, token.TypeName, token.Macro, token.Fn:
		return true
	}
	return false
}

// Index maps names to their occurrences in the tokens of one pass.
// Its Hook method is a [lexer.Hook]; the index resets itself when a
// new pass starts.
type Index struct {
	names      map[string][]token.Chunk
	flat       []rune
	lineStarts []int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{names: map[string][]token.Chunk{}}
}

// Reset clears the index.
func (ix *Index) Reset() {
	clear(ix.names)
	ix.flat = nil
	ix.lineStarts = nil
}

// Hook records the last chunk if it is an indexed kind.
func (ix *Index) Hook(chunks token.Chunks, flat []rune) {
	if len(chunks) == 1 {
		ix.Reset()
	}
	ix.flat = flat
	ix.lineStarts = nil
	ch := chunks[len(chunks)-1]
	if !Indexed(ch.Kind) {
		return
	}
	name := string(ch.Runes(flat))
	if ch.Kind == token.Macro {
		name = strings.TrimSuffix(name, "!")
	}
	ix.names[name] = append(ix.names[name], ch)
}

// Names returns the recorded names, sorted.
func (ix *Index) Names() []string {
	nms := make([]string, 0, len(ix.names))
	for nm := range ix.names {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}

// Count returns the number of occurrences of name.
func (ix *Index) Count(name string) int {
	return len(ix.names[name])
}

// Kinds returns the distinct kinds name occurs as, in kind order.
func (ix *Index) Kinds(name string) []token.Kinds {
	var ks []token.Kinds
	for _, ch := range ix.names[name] {
		if !slices.Contains(ks, ch.Kind) {
			ks = append(ks, ch.Kind)
		}
	}
	slices.Sort(ks)
	return ks
}

// Find returns the regions of all occurrences of name, in text order.
func (ix *Index) Find(name string) []textpos.Region {
	chs := ix.names[name]
	if len(chs) == 0 {
		return nil
	}
	regs := make([]textpos.Region, len(chs))
	for i, ch := range chs {
		regs[i] = textpos.Region{Start: ix.pos(ch.Offset), End: ix.pos(ch.End())}
	}
	return regs
}

// Matches returns the occurrences of name with the text around them.
func (ix *Index) Matches(name string) []textpos.Match {
	regs := ix.Find(name)
	if len(regs) == 0 {
		return nil
	}
	ms := make([]textpos.Match, len(regs))
	for i, reg := range regs {
		ms[i] = textpos.NewMatch(ix.line(reg.Start.Line), reg)
	}
	return ms
}

// pos converts a flat offset to a position. The flat buffer holds line
// breaks as '\n', so line starts are found by scanning for them.
func (ix *Index) pos(off int) textpos.Pos {
	if ix.lineStarts == nil {
		ix.lineStarts = []int{0}
		for i, r := range ix.flat {
			if r == '\n' {
				ix.lineStarts = append(ix.lineStarts, i+1)
			}
		}
	}
	ln := sort.SearchInts(ix.lineStarts, off+1) - 1
	return textpos.Pos{Line: ln, Char: off - ix.lineStarts[ln]}
}

func (ix *Index) line(ln int) []rune {
	ix.pos(0)
	st := ix.lineStarts[ln]
	ed := len(ix.flat)
	if ln+1 < len(ix.lineStarts) {
		ed = ix.lineStarts[ln+1] - 1
	}
	l := ix.flat[st:ed]
	if n := len(l); n > 0 && l[n-1] == 0 && ln == len(ix.lineStarts)-1 {
		l = l[:n-1]
	}
	return l
}
