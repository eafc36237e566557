// Copyright (c) 2020, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"github.com/brockelmore/makepad/text/token"
)

// BracePair returns the matching brace-like punctuation for given rune,
// which must be a left or right brace {}, bracket [] or paren ().
// Also returns true if it is *right*
func BracePair(r rune) (match rune, right bool) {
	switch r {
	case '{':
		match = '}'
	case '}':
		right = true
		match = '{'
	case '(':
		match = ')'
	case ')':
		right = true
		match = '('
	case '[':
		match = ']'
	case ']':
		right = true
		match = '['
	}
	return
}

// MismatchedPairs returns the matched groups whose opener and closer are
// different kinds of brace, such as ( with ]. Pairing itself only tracks
// nesting, so these are reported separately as advisory diagnostics.
func MismatchedPairs(flat []rune, chunks token.Chunks) []token.Pair {
	var bad []token.Pair
	for _, p := range chunks.Pairs() {
		op := flat[chunks[p.Open].Offset]
		cl := flat[chunks[p.Close].Offset]
		if match, _ := BracePair(op); match != cl {
			bad = append(bad, p)
		}
	}
	return bad
}
