// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rust provides the tokenizer for the Rust language.
package rust

import (
	"github.com/brockelmore/makepad/text/format"
	"github.com/brockelmore/makepad/text/languages"
	"github.com/brockelmore/makepad/text/lexer"
	"github.com/brockelmore/makepad/text/token"
)

// Rust implements the [languages.Language] interface.
type Rust struct{}

// TheRust is the instance variable providing support for Rust.
var TheRust = Rust{}

func init() {
	languages.Register(TheRust)
}

func (Rust) Name() string { return "rust" }

func (Rust) Extensions() []string { return []string{".rs"} }

func (Rust) NewTokenizer() lexer.Tokenizer { return &Tokenizer{} }

func (Rust) FormatOptions() format.Options {
	return format.Options{PreSpacey: true, IndentWidth: 4}
}

var (
	intWidth   = lexer.WidthSet(8, 16, 32, 64, 128)
	floatWidth = lexer.WidthSet(32, 64)
)

// Tokenizer holds the state of one Rust tokenizer pass.
type Tokenizer struct {
	comment lexer.Comment
	str     stringState
	end     lexer.Trailer
}

// stringState tracks a string literal that continues past a line break.
type stringState struct {
	active bool

	// raw strings take no escapes and close with a quote plus hashes
	raw    bool
	hashes int
}

// NextToken implements [lexer.Tokenizer].
func (tz *Tokenizer) NextToken(c *lexer.Cursor, flat *[]rune, chunks token.Chunks) token.Kinds {
	if tz.comment.Active() {
		if kind, ok := tz.comment.Continue(c, flat); ok {
			return kind
		}
	}
	if tz.str.active {
		if kind, ok := tz.continueString(c, flat); ok {
			return kind
		}
	}
	if c.EOF() {
		return tz.end.Emit(flat)
	}
	c.AdvanceWithCur()
	*flat = append(*flat, c.Cur)
	switch c.Cur {
	case 0:
		return token.Whitespace
	case '\n':
		return token.Newline
	case ' ', '\t':
		return lexer.ScanWhitespace(c, flat)
	case '/':
		return lexer.ScanSlash(c, flat, chunks, &tz.comment)
	case '"':
		return tz.startString(c, flat, false, 0)
	case '\'':
		return scanQuote(c, flat)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		scanNumber(c, flat)
		return token.Number
	case ':':
		if c.Keyword(flat, ":") {
			return token.Namespace
		}
		return token.Colon
	case '#':
		return token.Hash
	case '*':
		if c.Keyword(flat, "/") {
			return token.Unexpected
		}
		c.Keyword(flat, "=")
		return token.Operator
	case '+', '%', '^':
		c.Keyword(flat, "=")
		return token.Operator
	case '-':
		c.KeywordAny(flat, ">", "=")
		return token.Operator
	case '=':
		c.KeywordAny(flat, ">", "=")
		return token.Operator
	case '!':
		c.Keyword(flat, "=")
		return token.Operator
	case '.':
		if c.Keyword(flat, ".") {
			c.KeywordAny(flat, "=", ".")
			return token.Splat
		}
		return token.Operator
	case ';', ',':
		return token.Delimiter
	case '&':
		c.KeywordAny(flat, "&", "=")
		return token.Operator
	case '|':
		c.KeywordAny(flat, "|", "=")
		return token.Operator
	case '<':
		c.KeywordAny(flat, "<=", "=", "<")
		return token.Operator
	case '>':
		c.KeywordAny(flat, ">=", "=", ">")
		return token.Operator
	case '(', '[', '{':
		return token.ParenOpen
	case ')', ']', '}':
		return token.ParenClose
	case '_', '$':
		lexer.ScanIdentTail(c, flat)
		return macroOr(c, flat, lexer.IdentKind(c))
	case 'b':
		switch c.Next {
		case '\'':
			c.AdvanceWithCur()
			*flat = append(*flat, c.Cur)
			return scanQuote(c, flat)
		case '"':
			c.AdvanceWithCur()
			*flat = append(*flat, c.Cur)
			return tz.startString(c, flat, false, 0)
		}
	case 'r':
		if c.Next == '"' || c.Next == '#' && (c.Peek(1) == '"' || c.Peek(1) == '#') {
			hashes := c.TakeWhile(flat, func(r rune) bool { return r == '#' })
			if c.Next != '"' {
				return token.Unexpected
			}
			c.AdvanceWithCur()
			*flat = append(*flat, c.Cur)
			return tz.startString(c, flat, true, hashes)
		}
	}
	switch {
	case lexer.IsUpper(c.Cur):
		start := len(*flat) - 1
		lexer.ScanIdentTail(c, flat)
		if c.Next == '(' {
			return token.Call
		}
		if string((*flat)[start:]) == "Self" {
			return token.Keyword
		}
		return macroOr(c, flat, token.TypeName)
	case lexer.IsLetter(c.Cur):
		kind := lexer.FinishWord(c, flat, keyword(c, flat))
		if kind == token.Identifier {
			return macroOr(c, flat, kind)
		}
		return kind
	}
	return token.Operator
}

// macroOr returns Macro, consuming the '!', if the word just scanned is a
// macro invocation such as println!, and kind otherwise.
func macroOr(c *lexer.Cursor, flat *[]rune, kind token.Kinds) token.Kinds {
	if c.Next == '!' && c.Peek(1) != '=' {
		c.Take(flat)
		return token.Macro
	}
	return kind
}

// scanQuote handles a token starting with a single quote, which is in Cur:
// a char literal such as 'x' or '\n', or a lifetime such as 'a.
func scanQuote(c *lexer.Cursor, flat *[]rune) token.Kinds {
	if c.Next == '\\' {
		scanEscape(c, flat)
		c.Keyword(flat, "'")
		return token.String
	}
	if lexer.IsLetter(c.Next) || c.Next == '_' {
		if c.Peek(1) == '\'' {
			c.Take(flat)
			c.Take(flat)
			return token.String
		}
		lexer.ScanIdentTail(c, flat)
		return token.Keyword
	}
	if c.EOF() || c.Next == '\n' {
		return token.String
	}
	c.Take(flat)
	c.Keyword(flat, "'")
	return token.String
}

// scanEscape consumes an escape sequence whose backslash is in Next:
// \u{...}, \x followed by hex digits, or a single escaped rune.
func scanEscape(c *lexer.Cursor, flat *[]rune) {
	c.Take(flat)
	if c.EOF() || c.Next == '\n' {
		return
	}
	switch c.Next {
	case 'u':
		c.Take(flat)
		if c.Keyword(flat, "{") {
			c.TakeWhile(flat, lexer.IsHex)
			c.Keyword(flat, "}")
		}
	case 'x':
		c.Take(flat)
		c.TakeWhile(flat, lexer.IsHex)
	default:
		c.Take(flat)
	}
}

// startString scans a string literal whose opening quote is in Cur. A
// literal that closes on the same line is a String; otherwise this
// returns StringMultiBegin and the tokenizer stays in string mode.
func (tz *Tokenizer) startString(c *lexer.Cursor, flat *[]rune, raw bool, hashes int) token.Kinds {
	tz.str = stringState{raw: raw, hashes: hashes}
	for !c.EOF() {
		switch {
		case c.Next == '\n':
			tz.str.active = true
			return token.StringMultiBegin
		case c.Next == '\\' && !raw:
			scanEscape(c, flat)
		case c.Next == '"' && tz.closes(c):
			tz.close(c, flat)
			return token.String
		default:
			c.Take(flat)
		}
	}
	return token.String
}

// continueString produces the next token of a string that began on an
// earlier line, chunked at line breaks and space runs like a comment.
// It returns false if the stream ended with nothing pending.
func (tz *Tokenizer) continueString(c *lexer.Cursor, flat *[]rune) (token.Kinds, bool) {
	start := len(*flat)
	pending := func() bool { return len(*flat) > start }
	for {
		switch {
		case c.EOF():
			tz.str.active = false
			if pending() {
				return token.StringChunk, true
			}
			return token.Eof, false
		case c.Next == '\n':
			if pending() {
				return token.StringChunk, true
			}
			c.Take(flat)
			return token.Newline, true
		case c.Next == ' ':
			if pending() {
				return token.StringChunk, true
			}
			c.TakeWhile(flat, func(r rune) bool { return r == ' ' })
			return token.Whitespace, true
		case c.Next == '\\' && !tz.str.raw:
			scanEscape(c, flat)
		case c.Next == '"' && tz.closes(c):
			tz.close(c, flat)
			tz.str.active = false
			return token.StringMultiEnd, true
		default:
			c.Take(flat)
		}
	}
}

// closes returns true if the quote in Next is followed by the hashes
// that close the current string.
func (tz *Tokenizer) closes(c *lexer.Cursor) bool {
	for i := 1; i <= tz.str.hashes; i++ {
		if c.Peek(i) != '#' {
			return false
		}
	}
	return true
}

// close consumes the closing quote and its hashes.
func (tz *Tokenizer) close(c *lexer.Cursor, flat *[]rune) {
	for range tz.str.hashes + 1 {
		c.Take(flat)
	}
}

// scanNumber consumes the rest of a number whose first digit is in Cur:
// 0x, 0o and 0b prefixes, '_' separators, a fraction when the '.' is
// followed by a digit, and a type suffix such as u32 or f64.
func scanNumber(c *lexer.Cursor, flat *[]rune) {
	if c.Cur == '0' {
		switch {
		case c.Keyword(flat, "x"):
			lexer.ScanDigits(c, flat, lexer.IsHex)
			scanSuffix(c, flat)
			return
		case c.Keyword(flat, "o"):
			lexer.ScanDigits(c, flat, lexer.IsOctal)
			scanSuffix(c, flat)
			return
		case c.Keyword(flat, "b"):
			lexer.ScanDigits(c, flat, lexer.IsBinary)
			scanSuffix(c, flat)
			return
		}
	}
	lexer.ScanDigits(c, flat, lexer.IsDigit)
	if c.Next == '.' && lexer.IsDigit(c.Peek(1)) {
		c.Take(flat)
		lexer.ScanDigits(c, flat, lexer.IsDigit)
	}
	scanSuffix(c, flat)
}

var suffixes = []string{
	"i8", "i16", "i32", "i64", "i128", "isize",
	"u8", "u16", "u32", "u64", "u128", "usize",
	"f32", "f64",
}

// scanSuffix consumes a numeric type suffix if one follows exactly.
func scanSuffix(c *lexer.Cursor, flat *[]rune) {
	for _, s := range suffixes {
		if c.Keyword(flat, s) {
			return
		}
	}
}

// keyword classifies a word by its first letter, which is in c.Cur and
// already in flat, consuming the longest keyword that matches. It returns
// Identifier if no keyword matches.
func keyword(c *lexer.Cursor, flat *[]rune) token.Kinds {
	kw := func(s string) bool { return c.Keyword(flat, s) }
	switch c.Cur {
	case 'a':
		switch {
		case kw("sync"), kw("wait"), kw("s"):
			return token.Keyword
		}
	case 'b':
		switch {
		case kw("reak"):
			return token.Flow
		case kw("ool"):
			return token.BuiltinType
		}
	case 'c':
		switch {
		case kw("har"):
			return token.BuiltinType
		case kw("rate"):
			return token.Keyword
		case kw("on"):
			switch {
			case kw("st"):
				return token.Keyword
			case kw("tinue"):
				return token.Flow
			}
		}
	case 'd':
		if kw("yn") {
			return token.Keyword
		}
	case 'e':
		switch {
		case kw("lse"):
			return token.Flow
		case kw("num"):
			return token.TypeDef
		case kw("xtern"):
			return token.Keyword
		}
	case 'f':
		switch {
		case kw("alse"):
			return token.Bool
		case kw("n"):
			return token.Fn
		case kw("or"):
			return token.Looping
		case c.NextIsDigit():
			return widthType(c, flat, floatWidth)
		}
	case 'i':
		switch {
		case kw("f"):
			return token.Flow
		case kw("mpl"):
			return token.Impl
		case kw("n"):
			return token.Keyword
		case kw("size"):
			return token.BuiltinType
		case c.NextIsDigit():
			return widthType(c, flat, intWidth)
		}
	case 'l':
		switch {
		case kw("et"):
			return token.Keyword
		case kw("oop"):
			return token.Looping
		}
	case 'm':
		switch {
		case kw("atch"):
			return token.Flow
		case kw("o"):
			switch {
			case kw("d"):
				return token.TypeDef
			case kw("ve"):
				return token.Keyword
			}
		case kw("ut"):
			return token.Keyword
		}
	case 'p':
		if kw("ub") {
			return token.Keyword
		}
	case 'r':
		if kw("e") {
			switch {
			case kw("turn"):
				return token.Flow
			case kw("f"):
				return token.Keyword
			}
		}
	case 's':
		switch {
		case kw("elf"):
			return token.Keyword
		case kw("t"):
			switch {
			case kw("atic"):
				return token.Keyword
			case kw("ruct"):
				return token.TypeDef
			case kw("r"):
				return token.BuiltinType
			}
		case kw("uper"):
			return token.Keyword
		}
	case 't':
		switch {
		case kw("r"):
			switch {
			case kw("ait"):
				return token.TypeDef
			case kw("ue"):
				return token.Bool
			}
		case kw("ype"):
			return token.TypeDef
		}
	case 'u':
		switch {
		case kw("se"):
			return token.Keyword
		case kw("nsafe"):
			return token.Keyword
		case kw("size"):
			return token.BuiltinType
		case c.NextIsDigit():
			return widthType(c, flat, intWidth)
		}
	case 'w':
		switch {
		case kw("here"):
			return token.Keyword
		case kw("hile"):
			return token.Looping
		}
	}
	return token.Identifier
}

// widthType finishes a numeric-width builtin such as i32 or f64.
func widthType(c *lexer.Cursor, flat *[]rune, legal func(n int) bool) token.Kinds {
	if lexer.ScanWidth(c, flat, legal) {
		return token.BuiltinType
	}
	return token.Identifier
}
