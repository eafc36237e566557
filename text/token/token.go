// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the closed set of token kinds produced by the
// dialect tokenizers, and the chunk store that records every token of a
// document as a span of one flat rune buffer.
package token

import (
	"fmt"
	"strings"
)

// Kinds is the classification of one token chunk. The set is shared by
// every dialect: a tokenizer only decides which kind applies, and the
// formatter and highlighter consume the kinds without knowing the dialect.
//
// Kinds are laid out in contiguous runs, one run per category, and the
// first kind of each run is listed in [Cats].
type Kinds int32

//go:generate stringer -type=Kinds,Categories

const (
	// Whitespace is a run of spaces and tabs, and the synthetic end trailer.
	Whitespace Kinds = iota

	// Newline is a single line break.
	Newline

	// Eof is the terminal token. It has zero length.
	Eof

	// ParenOpen is any of ( [ {.
	ParenOpen

	// ParenClose is any of ) ] }.
	ParenClose

	String
	StringMultiBegin
	StringChunk
	StringMultiEnd
	Number
	Bool
	Regex
	Color

	CommentLine
	CommentMultiBegin
	CommentChunk
	CommentMultiEnd

	Operator
	Delimiter
	Colon
	Splat
	Namespace
	Hash

	Identifier

	// Call is an identifier immediately followed by (.
	Call
	Keyword

	// Flow is a control-flow keyword such as if, else, return.
	Flow

	// Looping is a loop keyword such as for, while.
	Looping
	TypeName
	TypeDef
	Impl
	Fn
	Macro
	BuiltinType

	// Unexpected marks punctuation that cannot start a token here.
	Unexpected
	Error
	Warning
	Defocus

	KindsN
)

// Categories are the coarse groups of [Kinds].
type Categories int32

const (
	CatStructural Categories = iota
	CatGroup
	CatLiteral
	CatComment
	CatPunct
	CatName
	CatDiagnostic
	CategoriesN
)

// Cats lists the first kind of each category, in category order,
// terminated by KindsN.
var Cats = []Kinds{
	Whitespace,
	ParenOpen,
	String,
	CommentLine,
	Operator,
	Identifier,
	Unexpected,
	KindsN,
}

// CatMap is the map from each kind to its category.
var CatMap map[Kinds]Categories

func init() {
	InitCatMap()
}

// InitCatMap initializes the CatMap from the runs in [Cats].
func InitCatMap() {
	if CatMap != nil {
		return
	}
	CatMap = make(map[Kinds]Categories, KindsN)
	for ci := 0; ci < len(Cats)-1; ci++ {
		for tk := Cats[ci]; tk < Cats[ci+1]; tk++ {
			CatMap[tk] = Categories(ci)
		}
	}
}

// Cat returns the category that a given kind lives in, using CatMap.
func (tk Kinds) Cat() Categories {
	return CatMap[tk]
}

// InCat returns true if this kind is in the given category.
func (tk Kinds) InCat(cat Categories) bool {
	return tk.Cat() == cat
}

// IsComment returns true for all comment kinds.
func (tk Kinds) IsComment() bool {
	return tk.Cat() == CatComment
}

// IsIgnored returns true for trivia: whitespace, newlines and comments.
// Trivia never decides how the next token is classified.
func (tk Kinds) IsIgnored() bool {
	return tk == Whitespace || tk == Newline || tk.IsComment()
}

// IsGroup returns true for the grouping delimiters.
func (tk Kinds) IsGroup() bool {
	return tk == ParenOpen || tk == ParenClose
}

// IsString returns true for single and multi-line string pieces.
func (tk Kinds) IsString() bool {
	return tk >= String && tk <= StringMultiEnd
}

// IsKeyword returns true for the reserved-word kinds that reset
// operator context, like a keyword does.
func (tk Kinds) IsKeyword() bool {
	switch tk {
	case Keyword, Flow, Looping, TypeDef, Impl, Fn:
		return true
	}
	return false
}

// KindsValues returns all kinds, in order, excluding KindsN.
func KindsValues() []Kinds {
	vals := make([]Kinds, KindsN)
	for i := range vals {
		vals[i] = Kinds(i)
	}
	return vals
}

// SetString sets the kind from its name, ignoring case.
func (tk *Kinds) SetString(s string) error {
	for _, k := range KindsValues() {
		if strings.EqualFold(k.String(), s) {
			*tk = k
			return nil
		}
	}
	return fmt.Errorf("token.Kinds.SetString: %q is not a valid kind", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (tk Kinds) MarshalText() ([]byte, error) {
	return []byte(tk.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tk *Kinds) UnmarshalText(text []byte) error {
	return tk.SetString(string(text))
}
