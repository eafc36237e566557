// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"github.com/brockelmore/makepad/text/lexer"
	"github.com/brockelmore/makepad/text/token"
)

// Parser walks a chunk store one token at a time, giving access to the
// kinds and edge characters of the current token and its immediate
// neighbors. Neighbors past either end read as Unexpected and 0.
type Parser struct {
	Flat   []rune
	Chunks token.Chunks

	// Index of the current chunk; -1 before the first Advance.
	Index int
}

// NewParser returns a parser positioned before the first chunk.
func NewParser(flat []rune, chunks token.Chunks) *Parser {
	return &Parser{Flat: flat, Chunks: chunks, Index: -1}
}

// Advance moves to the next chunk, returning false at the end.
func (tp *Parser) Advance() bool {
	if tp.Index+1 >= len(tp.Chunks) {
		return false
	}
	tp.Index++
	return true
}

// PrevKind returns the kind of the previous chunk.
func (tp *Parser) PrevKind() token.Kinds {
	return tp.Chunks.KindAt(tp.Index - 1)
}

// CurKind returns the kind of the current chunk.
func (tp *Parser) CurKind() token.Kinds {
	return tp.Chunks.KindAt(tp.Index)
}

// NextKind returns the kind of the next chunk.
func (tp *Parser) NextKind() token.Kinds {
	return tp.Chunks.KindAt(tp.Index + 1)
}

// Cur returns the text of the current chunk.
func (tp *Parser) Cur() []rune {
	return tp.Chunks[tp.Index].Runes(tp.Flat)
}

// CurString returns the text of the current chunk as a string.
func (tp *Parser) CurString() string {
	return string(tp.Cur())
}

// CurChar returns the first rune of the current chunk.
func (tp *Parser) CurChar() rune {
	return tp.firstRune(tp.Index)
}

func (tp *Parser) firstRune(i int) rune {
	if i < 0 || i >= len(tp.Chunks) || tp.Chunks[i].Len == 0 {
		return 0
	}
	return tp.Flat[tp.Chunks[i].Offset]
}

// IsTrailer returns true if the current chunk is the synthetic NUL
// whitespace emitted before Eof.
func (tp *Parser) IsTrailer() bool {
	return lexer.IsTrailer(tp.Flat, tp.Chunks, tp.Index)
}
