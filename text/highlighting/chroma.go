// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/brockelmore/makepad/text/lexer"
	"github.com/brockelmore/makepad/text/token"
)

// chromaTypes maps each token kind to the chroma token type that
// styles it.
var chromaTypes = map[token.Kinds]chroma.TokenType{
	token.Whitespace:        chroma.TextWhitespace,
	token.Newline:           chroma.TextWhitespace,
	token.Eof:               chroma.None,
	token.ParenOpen:         chroma.Punctuation,
	token.ParenClose:        chroma.Punctuation,
	token.String:            chroma.LiteralString,
	token.StringMultiBegin:  chroma.LiteralString,
	token.StringChunk:       chroma.LiteralString,
	token.StringMultiEnd:    chroma.LiteralString,
	token.Number:            chroma.LiteralNumber,
	token.Bool:              chroma.KeywordConstant,
	token.Regex:             chroma.LiteralStringRegex,
	token.Color:             chroma.LiteralNumberHex,
	token.CommentLine:       chroma.CommentSingle,
	token.CommentMultiBegin: chroma.CommentMultiline,
	token.CommentChunk:      chroma.CommentMultiline,
	token.CommentMultiEnd:   chroma.CommentMultiline,
	token.Operator:          chroma.Operator,
	token.Delimiter:         chroma.Punctuation,
	token.Colon:             chroma.Punctuation,
	token.Splat:             chroma.Operator,
	token.Namespace:         chroma.Punctuation,
	token.Hash:              chroma.CommentPreproc,
	token.Identifier:        chroma.Name,
	token.Call:              chroma.NameFunction,
	token.Keyword:           chroma.Keyword,
	token.Flow:              chroma.Keyword,
	token.Looping:           chroma.Keyword,
	token.TypeName:          chroma.NameClass,
	token.TypeDef:           chroma.KeywordDeclaration,
	token.Impl:              chroma.KeywordDeclaration,
	token.Fn:                chroma.KeywordDeclaration,
	token.Macro:             chroma.NameFunctionMagic,
	token.BuiltinType:       chroma.KeywordType,
	token.Unexpected:        chroma.Error,
	token.Error:             chroma.Error,
	token.Warning:           chroma.GenericEmph,
	token.Defocus:           chroma.Comment,
}

// ChromaType returns the chroma token type for the kind.
func ChromaType(kind token.Kinds) chroma.TokenType {
	if ct, ok := chromaTypes[kind]; ok {
		return ct
	}
	return chroma.Text
}

// Tokens converts chunks to chroma tokens, dropping the end of stream
// chunks. A line comment takes the single-line comment type for its
// whole payload.
func Tokens(flat []rune, chunks token.Chunks) []chroma.Token {
	toks := make([]chroma.Token, 0, len(chunks))
	inLine := false
	for i, ch := range chunks {
		if ch.Kind == token.Eof || lexer.IsTrailer(flat, chunks, i) {
			continue
		}
		ct := ChromaType(ch.Kind)
		switch {
		case ch.Kind == token.CommentLine:
			inLine = true
		case ch.Kind == token.Newline:
			inLine = false
		case inLine:
			ct = chroma.CommentSingle
		}
		toks = append(toks, chroma.Token{Type: ct, Value: string(ch.Runes(flat))})
	}
	return toks
}

// Iterator returns a chroma iterator over the chunks, for use with any
// chroma formatter.
func Iterator(flat []rune, chunks token.Chunks) chroma.Iterator {
	return chroma.Literator(Tokens(flat, chunks)...)
}
