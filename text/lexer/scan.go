// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"strconv"
	"strings"

	"github.com/brockelmore/makepad/text/token"
)

// The scanners below are shared by the dialect tokenizers. By convention
// the dialect has already moved the first rune of the token into Cur and
// appended it to flat; a scanner consumes the rest of the token through
// Next.

// Trailer emits the synthetic end-of-stream marker: a one-rune NUL
// Whitespace chunk the first time, and Eof on every call after that.
type Trailer bool

// Emit returns the next end-of-stream token.
func (tr *Trailer) Emit(flat *[]rune) token.Kinds {
	if *tr {
		return token.Eof
	}
	*tr = true
	*flat = append(*flat, 0)
	return token.Whitespace
}

// Comment tracks whether the tokenizer is inside a comment. Depth is 0
// or 1: comments do not nest.
type Comment struct {
	Depth int

	// Single is true for a comment that ends at the line break.
	Single bool
}

// Active returns true inside a comment.
func (cm *Comment) Active() bool {
	return cm.Depth > 0
}

// Continue produces the next token of an open comment: a chunk of
// comment text, a Whitespace run of spaces, a Newline, or the closing
// CommentMultiEnd. It returns false when the comment ended at end of
// stream with nothing pending, so the caller proceeds normally.
func (cm *Comment) Continue(c *Cursor, flat *[]rune) (token.Kinds, bool) {
	start := len(*flat)
	pending := func() bool { return len(*flat) > start }
	for {
		switch {
		case c.EOF():
			cm.Depth = 0
			if pending() {
				return token.CommentChunk, true
			}
			return token.Eof, false
		case c.Next == '*' && !cm.Single && c.Peek(1) == '/':
			if pending() {
				return token.CommentChunk, true
			}
			c.Take(flat)
			c.Take(flat)
			cm.Depth = 0
			return token.CommentMultiEnd, true
		case c.Next == '\n':
			if cm.Single {
				cm.Depth = 0
			}
			if pending() {
				return token.CommentChunk, true
			}
			c.Take(flat)
			return token.Newline, true
		case c.Next == ' ':
			if pending() {
				return token.CommentChunk, true
			}
			c.TakeWhile(flat, func(r rune) bool { return r == ' ' })
			return token.Whitespace, true
		default:
			c.Take(flat)
		}
	}
}

// ScanWhitespace consumes a run of spaces and tabs.
func ScanWhitespace(c *Cursor, flat *[]rune) token.Kinds {
	c.TakeWhile(flat, func(r rune) bool { return r == ' ' || r == '\t' })
	return token.Whitespace
}

// RegexAllowed returns true if a '/' following a token of the given
// kind starts a regex literal rather than a divide.
func RegexAllowed(last token.Kinds) bool {
	switch last {
	case token.ParenOpen, token.Keyword, token.Operator, token.Delimiter,
		token.Colon, token.Looping, token.Flow:
		return true
	}
	return false
}

// ScanSlash handles a token starting with '/': a line or block comment
// opener (entering comment mode), a regex literal when the last
// significant token allows one, or a divide operator.
func ScanSlash(c *Cursor, flat *[]rune, chunks token.Chunks, cm *Comment) token.Kinds {
	switch c.Next {
	case '/':
		c.Take(flat)
		cm.Depth, cm.Single = 1, true
		return token.CommentLine
	case '*':
		c.Take(flat)
		cm.Depth, cm.Single = 1, false
		return token.CommentMultiBegin
	}
	if RegexAllowed(token.ScanLastToken(chunks)) {
		return ScanRegex(c, flat)
	}
	c.Keyword(flat, "=")
	return token.Operator
}

// RegexFlags are the flag letters accepted after a closing '/'.
const RegexFlags = "gimsuy"

// ScanRegex consumes the body of a regex literal up to its closing
// slash and flags, or to the end of the line. A slash directly after a
// backslash does not terminate the literal, unless that backslash itself
// follows a backslash. The check looks two runes back only, so the slash
// in `\\\/` terminates.
func ScanRegex(c *Cursor, flat *[]rune) token.Kinds {
	for !c.EOF() && c.Next != '\n' {
		if c.Next != '/' || c.Prev != '\\' && c.Cur == '\\' {
			*flat = append(*flat, c.Next)
			c.AdvanceWithPrev()
			continue
		}
		c.Take(flat)
		c.TakeWhile(flat, func(r rune) bool { return strings.ContainsRune(RegexFlags, r) })
		return token.Regex
	}
	return token.Regex
}

// EscapeFunc consumes an escape sequence whose backslash is in Next.
type EscapeFunc func(c *Cursor, flat *[]rune)

// ScanEscape consumes a backslash and the rune after it, or a \u
// followed by any number of hex digits. A backslash at the end of a line
// consumes only itself.
func ScanEscape(c *Cursor, flat *[]rune) {
	c.Take(flat)
	if c.EOF() || c.Next == '\n' {
		return
	}
	if c.Next == 'u' {
		c.Take(flat)
		c.TakeWhile(flat, IsHex)
		return
	}
	c.Take(flat)
}

// ScanQuoted consumes a quoted literal whose opening quote is in Cur, up
// to the matching quote or the end of the line. It returns false if the
// literal is unterminated.
func ScanQuoted(c *Cursor, flat *[]rune, escape EscapeFunc) bool {
	end := c.Cur
	c.Prev = 0
	for !c.EOF() && c.Next != '\n' {
		switch {
		case c.Next == '\\':
			escape(c, flat)
		case c.Next != end || c.Prev != '\\' && c.Cur == '\\':
			*flat = append(*flat, c.Next)
			c.AdvanceWithPrev()
		default:
			c.Take(flat)
			return true
		}
	}
	return false
}

// ScanIdentTail consumes identifier runes, returning true if any.
func ScanIdentTail(c *Cursor, flat *[]rune) bool {
	return c.TakeWhile(flat, IsIdent) > 0
}

// IdentKind returns Call if the identifier just scanned is directly
// followed by '(', and Identifier otherwise.
func IdentKind(c *Cursor) token.Kinds {
	if c.Next == '(' {
		return token.Call
	}
	return token.Identifier
}

// FinishWord completes a word whose leading part was matched as kind by
// a keyword table. If identifier runes follow, the word is an identifier
// after all (maximal munch); an unmatched word is one too.
func FinishWord(c *Cursor, flat *[]rune, kind token.Kinds) token.Kinds {
	if ScanIdentTail(c, flat) || kind == token.Identifier {
		return IdentKind(c)
	}
	return kind
}

// ScanWidth consumes a run of digits following a numeric-width type
// prefix such as int or bytes. It returns true if the digits form a
// canonical decimal accepted by legal. Digits are consumed either way.
func ScanWidth(c *Cursor, flat *[]rune, legal func(n int) bool) bool {
	start := len(*flat)
	if c.TakeWhile(flat, IsDigit) == 0 {
		return false
	}
	ds := string((*flat)[start:])
	n, err := strconv.Atoi(ds)
	return err == nil && strconv.Itoa(n) == ds && legal(n)
}

// WidthStep returns a legal-width test accepting multiples of step in
// [min, max].
func WidthStep(min, max, step int) func(n int) bool {
	return func(n int) bool {
		return n >= min && n <= max && (n-min)%step == 0
	}
}

// WidthSet returns a legal-width test accepting the listed widths.
func WidthSet(widths ...int) func(n int) bool {
	return func(n int) bool {
		for _, w := range widths {
			if n == w {
				return true
			}
		}
		return false
	}
}

// ScanDigits consumes digits and '_' separators accepted by digit.
func ScanDigits(c *Cursor, flat *[]rune, digit func(r rune) bool) int {
	return c.TakeWhile(flat, func(r rune) bool { return r == '_' || digit(r) })
}

// IsOctal returns true for octal digits.
func IsOctal(r rune) bool {
	return r >= '0' && r <= '7'
}

// IsBinary returns true for 0 and 1.
func IsBinary(r rune) bool {
	return r == '0' || r == '1'
}
