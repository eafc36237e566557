// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format is a token-stream pretty printer. It rebuilds text
// from the chunks of a tokenizer pass, normalizing indentation and the
// spacing between tokens, without parsing the grammar of the dialect.
//
// Indentation follows grouping: a group whose opener is directly
// followed by a line break is a multi-line group, and its contents are
// laid out one statement per line, indented one level deeper. Any other
// group is kept on one line. Comment and string payloads are copied
// through unchanged.
package format

import (
	"github.com/brockelmore/makepad/base/indent"
	"github.com/brockelmore/makepad/text/token"
)

// Options are the formatting policy of a dialect.
type Options struct {

	// PreSpacey puts a space before a { that does not start a line.
	// Without it, any space before the { is removed.
	PreSpacey bool `toml:"pre_spacey"`

	// ExtraSpacey pads the inside of single-line { } groups with spaces.
	ExtraSpacey bool `toml:"extra_spacey"`

	// IndentWidth is the number of columns per nesting level.
	IndentWidth int `toml:"indent_width"`

	// IndentChar selects spaces or tabs for indentation.
	IndentChar indent.Character `toml:"indent_char"`
}

// DefaultOptions returns the default formatting policy.
func DefaultOptions() Options {
	return Options{PreSpacey: true, IndentWidth: 4}
}

// parenFrame is the layout state of one open group.
type parenFrame struct {

	// expectingNewlines is set for a multi-line group.
	expectingNewlines bool

	// expectedIndent is the indent to restore when the group closes.
	expectedIndent int
}

type formatter struct {
	opts   Options
	out    *Output
	tp     *Parser
	parens []parenFrame

	firstOnLine    bool
	firstAfterOpen bool
	expectedIndent int

	// isUnary is true when an operator here would be a prefix operator.
	isUnary bool

	// last is the kind of the last chunk that was not a space or break.
	last token.Kinds

	// prefixed is set while the last token is an operator bound to what
	// follows it.
	prefixed bool

	inLineComment  bool
	inBlockComment bool
	inMultiString  bool
}

// Format lays out the tokens of one tokenizer pass. It never fails:
// malformed input such as unbalanced groups is formatted as far as the
// rules allow. Chunk pairing is not consulted.
func Format(flat []rune, chunks token.Chunks, opts Options) *Output {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 4
	}
	f := &formatter{
		opts:        opts,
		out:         NewOutput(opts.IndentChar, opts.IndentWidth),
		tp:          NewParser(flat, chunks),
		parens:      []parenFrame{{expectingNewlines: true}},
		firstOnLine: true,
		isUnary:     true,
	}
	f.out.NewLine()
	for f.tp.Advance() {
		if f.tp.CurKind() == token.Eof {
			break
		}
		f.token()
	}
	f.out.StripSpace()
	return f.out
}

func (f *formatter) top() *parenFrame {
	return &f.parens[len(f.parens)-1]
}

// inPayload returns true inside a comment or a multi-line string.
func (f *formatter) inPayload() bool {
	return f.inLineComment || f.inBlockComment || f.inMultiString
}

// startLine writes the indentation if this token is the first on its line.
func (f *formatter) startLine(extra int) {
	if f.firstOnLine {
		f.firstOnLine = false
		f.out.Indent(f.expectedIndent + extra)
	}
}

// separates returns true for kinds after which whitespace is dropped,
// because the token handles its own trailing space.
func separates(k token.Kinds) bool {
	switch k {
	case token.ParenOpen, token.Namespace, token.Operator, token.Delimiter:
		return true
	}
	return false
}

// spaceAfter returns true if a space between the last token and the
// next one, of kind next, is kept.
func (f *formatter) spaceAfter(next token.Kinds) bool {
	if !separates(f.last) {
		return true
	}
	if f.prefixed {
		// these would merge with or change the meaning of the operator
		switch next {
		case token.Operator, token.Splat, token.Unexpected, token.Number, token.Regex,
			token.CommentMultiBegin:
			return true
		}
	}
	return false
}

// breakFollows returns true if the next token is a line break that will
// be kept in the output.
func (f *formatter) breakFollows() bool {
	return f.tp.NextKind() == token.Newline && (f.top().expectingNewlines || f.firstAfterOpen)
}

func (f *formatter) token() {
	tp, out := f.tp, f.out
	kind := tp.CurKind()
	prefixed := f.prefixed
	solid := kind != token.Whitespace && kind != token.Newline
	if solid {
		f.prefixed = false
	}
	switch kind {
	case token.Whitespace:
		switch {
		case tp.IsTrailer():
		case f.inPayload():
			out.ExtendPayload(tp.Cur())
		case !f.firstOnLine && tp.NextKind() != token.Newline && f.spaceAfter(tp.NextKind()):
			out.AddSpace()
		}

	case token.Newline:
		f.newline()

	case token.ParenOpen:
		f.parenOpen(prefixed)

	case token.ParenClose:
		f.parenClose()

	case token.CommentLine:
		f.inLineComment = true
		if f.firstOnLine {
			f.startLine(0)
		} else {
			out.AddSpace()
		}
		out.ExtendPayload(tp.Cur())

	case token.CommentMultiBegin:
		f.inBlockComment = true
		f.startLine(0)
		out.ExtendPayload(tp.Cur())

	case token.CommentMultiEnd:
		f.inBlockComment = false
		f.firstOnLine = false
		out.ExtendPayload(tp.Cur())

	case token.CommentChunk, token.StringChunk:
		f.firstOnLine = false
		out.ExtendPayload(tp.Cur())

	case token.StringMultiBegin:
		f.inMultiString = true
		f.firstAfterOpen = false
		f.startLine(0)
		out.ExtendPayload(tp.Cur())

	case token.StringMultiEnd:
		f.inMultiString = false
		f.firstOnLine = false
		f.isUnary = false
		out.ExtendPayload(tp.Cur())

	case token.Colon:
		f.isUnary = true
		if f.firstOnLine {
			f.startLine(0)
		} else {
			out.StripSpace()
			if f.last == token.Colon {
				// keep two colons from reading as one ::
				out.AddSpace()
			}
		}
		out.Extend(tp.Cur())
		if nk := tp.NextKind(); nk != token.Whitespace && nk != token.Newline {
			out.AddSpace()
		}

	case token.Delimiter:
		f.delimiter()

	case token.Operator:
		f.operator()

	case token.Keyword, token.Flow, token.Looping, token.TypeDef, token.Impl, token.Fn,
		token.Hash, token.Splat, token.Namespace:
		f.isUnary = true
		f.firstAfterOpen = false
		f.startLine(0)
		out.Extend(tp.Cur())

	case token.String, token.Regex:
		f.isUnary = false
		f.firstAfterOpen = false
		f.startLine(0)
		out.ExtendPayload(tp.Cur())

	case token.Identifier, token.Call, token.TypeName, token.BuiltinType, token.Macro,
		token.Number, token.Bool, token.Color,
		token.Unexpected, token.Error, token.Warning, token.Defocus:
		f.isUnary = false
		f.firstAfterOpen = false
		f.startLine(0)
		out.Extend(tp.Cur())
	}
	if solid {
		f.last = kind
	}
}

func (f *formatter) newline() {
	out := f.out
	// a line comment, or a string or regex cut off by the break, ends here
	pk := f.tp.PrevKind()
	lineEnd := f.inLineComment || pk == token.String || pk == token.Regex
	f.inLineComment = false
	if f.inBlockComment || f.inMultiString {
		out.NewLine()
		f.firstOnLine = true
		return
	}
	top := f.top()
	if f.firstAfterOpen {
		top.expectingNewlines = true
		f.expectedIndent += f.opts.IndentWidth
	}
	if !top.expectingNewlines && !lineEnd {
		// a single-line group absorbs the break as a space
		if !f.firstOnLine && f.spaceAfter(f.tp.NextKind()) {
			out.AddSpace()
		}
		return
	}
	if f.firstOnLine {
		out.Indent(f.expectedIndent)
	} else {
		out.StripSpace()
	}
	f.firstAfterOpen = false
	out.NewLine()
	f.firstOnLine = true
}

// parenOpen opens a group. prefixed is true if the opener directly
// follows a bound prefix operator.
func (f *formatter) parenOpen(prefixed bool) {
	tp, out := f.tp, f.out
	if f.firstOnLine {
		out.Indent(f.expectedIndent)
	}
	f.parens = append(f.parens, parenFrame{expectedIndent: f.expectedIndent})
	f.firstAfterOpen = true
	f.isUnary = true

	ch := tp.CurChar()
	isCurly := ch == '{'
	if ch == '(' {
		switch tp.PrevKind() {
		case token.Flow, token.Looping, token.Keyword:
			out.AddSpace()
		}
	}
	if f.opts.PreSpacey && isCurly && !f.firstOnLine {
		if !prefixed && f.last != token.ParenOpen && f.last != token.Namespace {
			out.AddSpace()
		}
	} else if !f.opts.PreSpacey && isCurly {
		out.StripSpace()
	}
	out.Extend(tp.Cur())
	if f.opts.ExtraSpacey && isCurly && tp.NextKind() != token.Newline {
		out.AddSpace()
	}
	f.firstOnLine = false
}

func (f *formatter) parenClose() {
	tp, out := f.tp, f.out
	out.StripSpace()
	expecting := f.top().expectingNewlines
	if f.opts.ExtraSpacey && tp.CurChar() == '}' && !expecting {
		out.AddSpace()
	}
	f.firstAfterOpen = false
	if !f.firstOnLine && expecting {
		out.NewLine()
		f.firstOnLine = true
	}
	if len(f.parens) > 1 {
		f.expectedIndent = f.top().expectedIndent
		f.parens = f.parens[:len(f.parens)-1]
	} else {
		f.expectedIndent = 0
	}
	f.startLine(0)
	f.isUnary = tp.CurChar() == '}'
	out.Extend(tp.Cur())
}

func (f *formatter) delimiter() {
	tp, out := f.tp, f.out
	if f.firstOnLine {
		f.startLine(0)
	} else {
		out.StripSpace()
	}
	out.Extend(tp.Cur())
	f.isUnary = true
	top := f.top()
	switch {
	case top.expectingNewlines && tp.NextKind() != token.Newline:
		// break the line if another statement follows on this one
		for i := tp.Index + 1; i < len(tp.Chunks); i++ {
			k := tp.Chunks[i].Kind
			if k == token.Newline {
				break
			}
			if !k.IsIgnored() && k != token.Eof {
				out.NewLine()
				f.firstOnLine = true
				break
			}
		}
	case top.expectingNewlines:
	default:
		out.AddSpace()
	}
}

// prefixOps are the operators that bind to the following operand when
// they appear where an operand is expected.
var prefixOps = map[string]bool{
	"-": true, "*": true, "&": true, "&&": true, "^": true, "~": true,
}

func (f *formatter) operator() {
	tp, out := f.tp, f.out
	op := tp.CurString()
	first := f.firstOnLine
	if first {
		extra := 0
		if !f.isUnary {
			extra = f.opts.IndentWidth
		}
		f.startLine(extra)
	}
	switch {
	case f.isUnary && prefixOps[op], op == ".", op == "!":
		out.Extend(tp.Cur())
		f.prefixed = true
	case !f.isUnary && (op == "++" || op == "--"):
		if !first {
			out.StripSpace()
		}
		out.Extend(tp.Cur())
		return
	default:
		switch {
		case op != "?":
			out.AddSpace()
		case !first:
			out.StripSpace()
		}
		out.Extend(tp.Cur())
		if !f.breakFollows() {
			out.AddSpace()
		}
	}
	f.isUnary = true
}
