// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solidity provides the tokenizer for the Solidity contract
// language.
package solidity

import (
	"github.com/brockelmore/makepad/text/format"
	"github.com/brockelmore/makepad/text/languages"
	"github.com/brockelmore/makepad/text/lexer"
	"github.com/brockelmore/makepad/text/token"
)

// Solidity implements the [languages.Language] interface.
type Solidity struct{}

// TheSolidity is the instance variable providing support for Solidity.
var TheSolidity = Solidity{}

func init() {
	languages.Register(TheSolidity)
}

func (Solidity) Name() string { return "solidity" }

func (Solidity) Extensions() []string { return []string{".sol"} }

func (Solidity) NewTokenizer() lexer.Tokenizer { return &Tokenizer{} }

func (Solidity) FormatOptions() format.Options {
	return format.Options{PreSpacey: true, IndentWidth: 4}
}

var (
	intWidth   = lexer.WidthStep(8, 256, 8)
	bytesWidth = lexer.WidthStep(1, 32, 1)
)

// Tokenizer holds the state of one Solidity tokenizer pass.
type Tokenizer struct {
	comment lexer.Comment
	end     lexer.Trailer
}

// NextToken implements [lexer.Tokenizer].
func (tz *Tokenizer) NextToken(c *lexer.Cursor, flat *[]rune, chunks token.Chunks) token.Kinds {
	if tz.comment.Active() {
		if kind, ok := tz.comment.Continue(c, flat); ok {
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
	case '"', '\'':
		lexer.ScanQuoted(c, flat, lexer.ScanEscape)
		return token.String
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		scanNumber(c, flat)
		return token.Number
	case ':':
		return token.Colon
	case '*':
		if c.Keyword(flat, "/") {
			return token.Unexpected
		}
		c.KeywordAny(flat, "=", "*")
		return token.Operator
	case '+':
		c.KeywordAny(flat, "=", "+")
		return token.Operator
	case '-':
		c.KeywordAny(flat, ">", "=", "-")
		return token.Operator
	case '=':
		c.KeywordAny(flat, ">", "==", "=")
		return token.Operator
	case '!':
		c.KeywordAny(flat, "==", "=")
		return token.Operator
	case '&':
		c.KeywordAny(flat, "&", "=")
		return token.Operator
	case '|':
		c.KeywordAny(flat, "|", "=")
		return token.Operator
	case '<':
		c.KeywordAny(flat, "=", "<")
		return token.Operator
	case '>':
		c.KeywordAny(flat, "=", ">")
		return token.Operator
	case '.':
		if c.Keyword(flat, ".") {
			return token.Splat
		}
		return token.Operator
	case ';', ',':
		return token.Delimiter
	case '(', '[', '{':
		return token.ParenOpen
	case ')', ']', '}':
		return token.ParenClose
	case '_', '$':
		lexer.ScanIdentTail(c, flat)
		return lexer.IdentKind(c)
	}
	if lexer.IsLetter(c.Cur) {
		return lexer.FinishWord(c, flat, keyword(c, flat))
	}
	return token.Operator
}

// scanNumber consumes the rest of a number: 0x hex, b binary or decimal
// with an optional fraction. Digit separators '_' are allowed.
func scanNumber(c *lexer.Cursor, flat *[]rune) {
	switch {
	case c.Keyword(flat, "x"):
		lexer.ScanDigits(c, flat, lexer.IsHex)
	case c.Keyword(flat, "b"):
		lexer.ScanDigits(c, flat, lexer.IsBinary)
	default:
		lexer.ScanDigits(c, flat, lexer.IsDigit)
		if c.Keyword(flat, ".") {
			lexer.ScanDigits(c, flat, lexer.IsDigit)
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
		case kw("ddress"):
			return token.TypeName
		case kw("ssembly"):
			return token.Flow
		case kw("bi"):
			return token.Keyword
		}
	case 'b':
		switch {
		case kw("reak"):
			return token.Flow
		case kw("ool"):
			return token.TypeName
		case kw("ytes"):
			if c.NextIsDigit() {
				if lexer.ScanWidth(c, flat, bytesWidth) {
					return token.TypeName
				}
				return token.Identifier
			}
			return token.TypeName
		case kw("lock"):
			return token.Keyword
		}
	case 'c':
		switch {
		case kw("ontract"):
			return token.Keyword
		case kw("alldata"):
			return token.Keyword
		case kw("o"):
			switch {
			case kw("nstant"):
				return token.Keyword
			case kw("nstructor"):
				return token.Fn
			case kw("ntinue"):
				return token.Flow
			}
		}
	case 'd':
		if kw("elete") {
			return token.Keyword
		}
	case 'e':
		switch {
		case kw("lse"):
			return token.Flow
		case kw("num"):
			return token.Keyword
		case kw("x"):
			switch {
			case kw("ternal"):
				return token.Keyword
			case kw("perimental"):
				return token.Flow
			}
		case kw("mit"):
			return token.Flow
		case kw("vent"):
			return token.Fn
		}
	case 'f':
		switch {
		case kw("alse"):
			return token.Bool
		case kw("inally"):
			return token.Fn
		case kw("or"):
			return token.Looping
		case kw("unction"):
			return token.Fn
		}
	case 'i':
		switch {
		case kw("s"):
			return token.Flow
		case kw("f"):
			return token.Flow
		case kw("mport"):
			return token.TypeDef
		case kw("nt"):
			return intFamily(c, flat, true)
		}
	case 'l':
		if kw("ibrary") {
			return token.Keyword
		}
	case 'm':
		switch {
		case kw("emory"):
			return token.Keyword
		case kw("sg"):
			return token.Keyword
		case kw("apping"):
			return token.Call
		case kw("odifier"):
			return token.Fn
		}
	case 'n':
		if kw("ew") {
			return token.Keyword
		}
	case 'o':
		if kw("verride") {
			return token.Keyword
		}
	case 'p':
		switch {
		case kw("u"):
			switch {
			case kw("blic"):
				return token.Keyword
			case kw("re"):
				return token.Call
			}
		case kw("r"):
			switch {
			case kw("ivate"):
				return token.Keyword
			case kw("agma"):
				return token.Keyword
			}
		case kw("ayable"):
			return token.Keyword
		}
	case 'r':
		switch {
		case kw("eturn"):
			kw("s")
			return token.Flow
		case kw("evert"):
			return token.Flow
		}
	case 's':
		switch {
		case kw("uper"):
			return token.Keyword
		case kw("tr"):
			switch {
			case kw("uct"):
				return token.TypeName
			case kw("ing"):
				return token.TypeName
			}
		case kw("olidity"):
			return token.Flow
		case kw("torage"):
			return token.Keyword
		}
	case 't':
		switch {
		case kw("r"):
			switch {
			case kw("y"):
				return token.Keyword
			case kw("ue"):
				return token.Bool
			}
		case kw("ypeof"):
			return token.Keyword
		case kw("h"):
			switch {
			case kw("is"):
				return token.Keyword
			case kw("row"):
				return token.Flow
			}
		}
	case 'u':
		switch {
		case kw("int"):
			return intFamily(c, flat, false)
		case kw("sing"):
			return token.Fn
		}
	case 'v':
		switch {
		case kw("iew"):
			return token.Call
		case kw("irtual"):
			return token.Keyword
		}
	case 'w':
		if kw("hile") {
			return token.Looping
		}
	}
	return token.Identifier
}

// intFamily finishes intN, uintN, and (for int) the interface and
// internal keywords that share its prefix. Only a legal width makes a
// type name; bare int and uint are plain words.
func intFamily(c *lexer.Cursor, flat *[]rune, signed bool) token.Kinds {
	if c.NextIsDigit() {
		if lexer.ScanWidth(c, flat, intWidth) {
			return token.TypeName
		}
		return token.Identifier
	}
	if signed && c.Keyword(flat, "er") {
		if c.KeywordAny(flat, "nal", "face") {
			return token.Keyword
		}
		return token.Identifier
	}
	return token.Identifier
}
