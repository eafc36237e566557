// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer provides the character cursor, the tokenizer contract
// implemented by each dialect, the driver that runs a tokenizer over a
// whole document, and the scanning routines shared by the dialects.
package lexer

import (
	"github.com/brockelmore/makepad/text/token"
)

// Tokenizer classifies the next token of a stream. Each call appends the
// runes of exactly one token to flat and returns its kind. chunks holds
// all tokens already pushed in this pass, for context-dependent decisions
// such as regex versus divide. Once the cursor reaches end of stream the
// tokenizer returns Eof, and keeps returning Eof if called again.
// Every non-Eof call consumes at least one rune.
//
// A Tokenizer carries state between calls (comment and string modes), so
// a fresh one is needed for every pass.
type Tokenizer interface {
	NextToken(c *Cursor, flat *[]rune, chunks token.Chunks) token.Kinds
}

// Hook is called after each non-Eof token is pushed, with the chunks so
// far and the flat buffer. The last chunk is the new token.
type Hook func(chunks token.Chunks, flat []rune)

// Result is the output of one tokenizer pass over a document.
type Result struct {

	// Flat is the concatenation of all token text.
	Flat []rune

	// Chunks are the tokens, in order, ending with Eof.
	Chunks token.Chunks

	// InvalidPairing is set when a closer has no opener,
	// or openers remain unmatched at the end.
	InvalidPairing bool
}

// Run tokenizes lines from start to end with tk, calling hook (if non-nil)
// after every token other than Eof.
func Run(lines [][]rune, tk Tokenizer, hook Hook) *Result {
	res := &Result{}
	c := NewCursor(lines)
	var stack []int
	for {
		start := len(res.Flat)
		kind := tk.NextToken(c, &res.Flat, res.Chunks)
		if res.Chunks.PushWithPairing(&stack, c.Next, start, len(res.Flat), kind) {
			res.InvalidPairing = true
		}
		if kind == token.Eof {
			break
		}
		if hook != nil {
			hook(res.Chunks, res.Flat)
		}
	}
	if len(stack) > 0 {
		res.InvalidPairing = true
	}
	return res
}

// Text returns the text of chunk i.
func (rs *Result) Text(i int) string {
	return rs.Chunks.Text(rs.Flat, i)
}

// Kinds returns the kind of every chunk, in order.
func (rs *Result) Kinds() []token.Kinds {
	ks := make([]token.Kinds, len(rs.Chunks))
	for i := range rs.Chunks {
		ks[i] = rs.Chunks[i].Kind
	}
	return ks
}

// IsTrailer returns true if chunk i is the synthetic NUL whitespace
// emitted just before Eof.
func (rs *Result) IsTrailer(i int) bool {
	return IsTrailer(rs.Flat, rs.Chunks, i)
}

// IsTrailer returns true if chunk i is the synthetic NUL whitespace
// emitted just before Eof.
func IsTrailer(flat []rune, chunks token.Chunks, i int) bool {
	if i != len(chunks)-2 || i < 0 {
		return false
	}
	ch := &chunks[i]
	return ch.Kind == token.Whitespace && ch.Len == 1 && flat[ch.Offset] == 0 &&
		chunks[i+1].Kind == token.Eof
}
