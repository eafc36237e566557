// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"unicode"
)

// Cursor walks the characters of a document given as lines, exposing a
// three-rune window: Prev, Cur and Next. Line boundaries appear as a
// single '\n' between lines. After the last rune of the last line has
// been moved out of Next, the cursor is at end of stream: Next is 0 and
// EOF returns true. Consumers must check EOF rather than testing Next
// for 0, as the text itself may contain a NUL.
type Cursor struct {

	// Prev is the rune before Cur, only maintained by AdvanceWithPrev.
	Prev rune

	// Cur is the rune being classified.
	Cur rune

	// Next is the lookahead rune.
	Next rune

	lines [][]rune

	// ln, ch locate the rune that will move into Next on the next advance.
	ln, ch int

	eof bool
}

// NewCursor returns a cursor positioned so that Next is the first rune
// of the text (or '\n' if the first line is empty and more follow).
func NewCursor(lines [][]rune) *Cursor {
	if len(lines) == 0 {
		lines = [][]rune{nil}
	}
	c := &Cursor{lines: lines}
	c.AdvanceWithCur()
	return c
}

// EOF returns true once the stream is exhausted.
func (c *Cursor) EOF() bool {
	return c.eof
}

// Advance moves the following rune into Next. Cur and Prev are unchanged.
func (c *Cursor) Advance() {
	if c.eof {
		return
	}
	if ln := c.lines[c.ln]; c.ch < len(ln) {
		c.Next = ln[c.ch]
		c.ch++
		return
	}
	if c.ln < len(c.lines)-1 {
		c.ln++
		c.ch = 0
		c.Next = '\n'
		return
	}
	c.eof = true
	c.Next = 0
}

// AdvanceWithCur moves Next into Cur, then advances.
func (c *Cursor) AdvanceWithCur() {
	c.Cur = c.Next
	c.Advance()
}

// AdvanceWithPrev moves Cur into Prev and Next into Cur, then advances.
func (c *Cursor) AdvanceWithPrev() {
	c.Prev = c.Cur
	c.Cur = c.Next
	c.Advance()
}

// Peek returns the rune n positions after Next; Peek(0) is Next.
// Line boundaries count as '\n'. It returns 0 past the end.
func (c *Cursor) Peek(n int) rune {
	if n == 0 {
		return c.Next
	}
	if c.eof {
		return 0
	}
	ln, ch := c.ln, c.ch
	for {
		var r rune
		switch {
		case ch < len(c.lines[ln]):
			r = c.lines[ln][ch]
			ch++
		case ln < len(c.lines)-1:
			ln++
			ch = 0
			r = '\n'
		default:
			return 0
		}
		n--
		if n == 0 {
			return r
		}
	}
}

// NextIsDigit returns true if Next is an ASCII digit.
func (c *Cursor) NextIsDigit() bool {
	return !c.eof && IsDigit(c.Next)
}

// NextIsLetter returns true if Next is an ASCII letter.
func (c *Cursor) NextIsLetter() bool {
	return !c.eof && IsLetter(c.Next)
}

// NextIsHex returns true if Next is a hexadecimal digit.
func (c *Cursor) NextIsHex() bool {
	return !c.eof && IsHex(c.Next)
}

// NextIsIdent returns true if Next can continue an identifier.
func (c *Cursor) NextIsIdent() bool {
	return !c.eof && IsIdent(c.Next)
}

// Keyword tests whether the runes starting at Next spell suffix. On a
// full match the runes are appended to buf, consumed, and true is
// returned. On a mismatch nothing is consumed.
func (c *Cursor) Keyword(buf *[]rune, suffix string) bool {
	i := 0
	for _, r := range suffix {
		if c.Peek(i) != r {
			return false
		}
		i++
	}
	for range i {
		*buf = append(*buf, c.Next)
		c.Advance()
	}
	return true
}

// KeywordAny consumes the first of suffixes that matches, in order,
// returning true if one did.
func (c *Cursor) KeywordAny(buf *[]rune, suffixes ...string) bool {
	for _, s := range suffixes {
		if c.Keyword(buf, s) {
			return true
		}
	}
	return false
}

// Take appends Next to buf and advances.
func (c *Cursor) Take(buf *[]rune) {
	*buf = append(*buf, c.Next)
	c.Advance()
}

// TakeWhile appends runes to buf while pred holds for Next,
// returning the number taken.
func (c *Cursor) TakeWhile(buf *[]rune, pred func(r rune) bool) int {
	n := 0
	for !c.eof && pred(c.Next) {
		c.Take(buf)
		n++
	}
	return n
}

// IsDigit returns true for ASCII digits.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsLetter returns true for ASCII letters.
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// IsHex returns true for hexadecimal digits.
func IsHex(r rune) bool {
	return IsDigit(r) || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// IsIdent returns true for runes that may continue an identifier:
// letters, digits, '_' and '$'.
func IsIdent(r rune) bool {
	return IsLetter(r) || IsDigit(r) || r == '_' || r == '$'
}

// IsUpper returns true for upper case letters.
func IsUpper(r rune) bool {
	return unicode.IsUpper(r)
}
