// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCategories(t *testing.T) {
	assert.Equal(t, CatStructural, Eof.Cat())
	assert.Equal(t, CatGroup, ParenClose.Cat())
	assert.Equal(t, CatLiteral, Regex.Cat())
	assert.Equal(t, CatComment, CommentChunk.Cat())
	assert.Equal(t, CatPunct, Namespace.Cat())
	assert.Equal(t, CatName, BuiltinType.Cat())
	assert.Equal(t, CatDiagnostic, Defocus.Cat())

	for _, k := range KindsValues() {
		assert.Less(t, k.Cat(), CategoriesN, k.String())
	}
}

func TestIsIgnored(t *testing.T) {
	ignored := []Kinds{Whitespace, Newline, CommentLine, CommentMultiBegin, CommentChunk, CommentMultiEnd}
	for _, k := range ignored {
		assert.True(t, k.IsIgnored(), k.String())
	}
	for _, k := range []Kinds{Eof, ParenOpen, String, StringChunk, Operator, Identifier, Unexpected} {
		assert.False(t, k.IsIgnored(), k.String())
	}
}

func TestKindsText(t *testing.T) {
	assert.Equal(t, "CommentMultiBegin", CommentMultiBegin.String())
	assert.Equal(t, "Kinds(99)", Kinds(99).String())

	var k Kinds
	assert.NoError(t, k.UnmarshalText([]byte("typename")))
	assert.Equal(t, TypeName, k)
	assert.Error(t, k.SetString("nope"))
}

func TestPushWithPairing(t *testing.T) {
	var cs Chunks
	var stack []int
	kinds := []Kinds{ParenOpen, Identifier, ParenOpen, ParenClose, ParenClose}
	for i, k := range kinds {
		assert.False(t, cs.PushWithPairing(&stack, 'x', i, i+1, k))
	}
	assert.Empty(t, stack)
	assert.Equal(t, 4, cs[0].Pair)
	assert.Equal(t, 0, cs[4].Pair)
	assert.Equal(t, 3, cs[2].Pair)
	assert.Equal(t, 2, cs[3].Pair)
	assert.False(t, cs[1].HasPair())
	assert.Equal(t, 'x', cs[1].Next)
	assert.Equal(t, []Pair{{0, 4}, {2, 3}}, cs.Pairs())
}

func TestPushWithPairingUnmatched(t *testing.T) {
	var cs Chunks
	var stack []int
	assert.True(t, cs.PushWithPairing(&stack, 0, 0, 1, ParenClose))
	assert.False(t, cs[0].HasPair())

	assert.False(t, cs.PushWithPairing(&stack, 0, 1, 2, ParenOpen))
	assert.Equal(t, []int{1}, stack)
	assert.False(t, cs[1].HasPair())
}

func TestScanLastToken(t *testing.T) {
	assert.Equal(t, Unexpected, ScanLastToken(nil))
	cs := Chunks{
		{Kind: Identifier},
		{Kind: Operator},
		{Kind: Whitespace},
		{Kind: CommentLine},
		{Kind: CommentChunk},
		{Kind: Newline},
	}
	assert.Equal(t, Operator, ScanLastToken(cs))
	assert.Equal(t, Unexpected, ScanLastToken(cs[2:]))
}

func TestValidate(t *testing.T) {
	flat := []rune("a b")
	cs := Chunks{
		{Offset: 0, Len: 1, Kind: Identifier, Pair: -1},
		{Offset: 1, Len: 1, Kind: Whitespace, Pair: -1},
		{Offset: 2, Len: 1, Kind: Identifier, Pair: -1},
		{Offset: 3, Len: 0, Kind: Eof, Pair: -1},
	}
	assert.NoError(t, cs.Validate(flat))
	assert.Equal(t, "b", cs.Text(flat, 2))
	assert.Equal(t, 1, cs.Find(1))
	assert.Equal(t, -1, cs.Find(3))

	gap := append(Chunks{}, cs...)
	gap[2].Offset = 3
	assert.Error(t, gap.Validate(flat))

	noEof := cs[:3]
	assert.Error(t, noEof.Validate(flat))

	empty := append(Chunks{}, cs...)
	empty[1].Len = 0
	assert.Error(t, empty.Validate(flat))
}

func TestPairingProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kinds := rapid.SliceOf(rapid.SampledFrom([]Kinds{ParenOpen, ParenClose, Identifier})).Draw(rt, "kinds")
		var cs Chunks
		var stack []int
		depth := 0
		invalid := false
		for i, k := range kinds {
			bad := cs.PushWithPairing(&stack, 0, i, i+1, k)
			switch k {
			case ParenOpen:
				depth++
			case ParenClose:
				if depth == 0 {
					assert.True(rt, bad)
					invalid = true
				} else {
					depth--
				}
			}
		}
		assert.Len(rt, stack, depth)
		for i := range cs {
			ch := &cs[i]
			if ch.HasPair() {
				assert.Equal(rt, i, cs[ch.Pair].Pair)
				assert.NotEqual(rt, ch.Kind, cs[ch.Pair].Kind)
			}
		}
		if !invalid && depth == 0 {
			for i := range cs {
				if cs[i].Kind.IsGroup() {
					assert.True(rt, cs[i].HasPair())
				}
			}
		}
	})
}
