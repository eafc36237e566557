// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"fmt"
)

// Chunk is one token: a contiguous span of the flat rune buffer with
// its kind and, for grouping delimiters, the index of its partner.
type Chunk struct {

	// Offset is the start of the chunk in the flat buffer.
	Offset int

	// Len is the number of runes in the chunk.
	Len int

	// Kind is the classification of the chunk.
	Kind Kinds

	// Pair is the index of the matching ParenOpen or ParenClose chunk,
	// or -1 if the chunk is not paired.
	Pair int

	// Next is the lookahead rune at the time the chunk was pushed.
	Next rune
}

// End returns the offset just past the chunk.
func (ch *Chunk) End() int {
	return ch.Offset + ch.Len
}

// HasPair returns true if the chunk has a matched partner.
func (ch *Chunk) HasPair() bool {
	return ch.Pair >= 0
}

// Runes returns the chunk text as a sub-slice of flat.
func (ch *Chunk) Runes(flat []rune) []rune {
	return flat[ch.Offset:ch.End()]
}

// String satisfies the fmt.Stringer interface.
func (ch Chunk) String() string {
	if ch.HasPair() {
		return fmt.Sprintf("%s[%d:%d]->%d", ch.Kind, ch.Offset, ch.End(), ch.Pair)
	}
	return fmt.Sprintf("%s[%d:%d]", ch.Kind, ch.Offset, ch.End())
}

// Chunks is the ordered token store for one tokenizer pass.
// Chunk offsets are contiguous from 0, and the last chunk is Eof.
type Chunks []Chunk

// PushWithPairing appends a chunk covering flat[start:end] and maintains
// grouping pairs through stack, which holds the indexes of unmatched
// ParenOpen chunks. A ParenClose pops the most recent opener and the two
// chunks record each other as Pair. It returns true if a ParenClose
// arrives with nothing left to match, in which case the closer stays
// unpaired.
func (cs *Chunks) PushWithPairing(stack *[]int, next rune, start, end int, kind Kinds) (invalid bool) {
	idx := len(*cs)
	ch := Chunk{Offset: start, Len: end - start, Kind: kind, Pair: -1, Next: next}
	switch kind {
	case ParenOpen:
		*stack = append(*stack, idx)
	case ParenClose:
		sz := len(*stack)
		if sz == 0 {
			invalid = true
			break
		}
		open := (*stack)[sz-1]
		*stack = (*stack)[:sz-1]
		(*cs)[open].Pair = idx
		ch.Pair = open
	}
	*cs = append(*cs, ch)
	return
}

// ScanLastToken returns the kind of the most recent chunk that is not
// trivia (see [Kinds.IsIgnored]), or Unexpected if there is none.
func ScanLastToken(cs Chunks) Kinds {
	for i := len(cs) - 1; i >= 0; i-- {
		if !cs[i].Kind.IsIgnored() {
			return cs[i].Kind
		}
	}
	return Unexpected
}

// Text returns the text of chunk i.
func (cs Chunks) Text(flat []rune, i int) string {
	return string(cs[i].Runes(flat))
}

// KindAt returns the kind of chunk i, or Unexpected if i is out of range.
func (cs Chunks) KindAt(i int) Kinds {
	if i < 0 || i >= len(cs) {
		return Unexpected
	}
	return cs[i].Kind
}

// Find returns the index of the chunk containing the flat offset,
// or -1 if the offset is past the end.
func (cs Chunks) Find(offset int) int {
	lo, hi := 0, len(cs)
	for lo < hi {
		mid := (lo + hi) / 2
		if cs[mid].End() <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(cs) || cs[lo].Len == 0 {
		return -1
	}
	return lo
}

// Pair is a matched opener and closer, as chunk indexes.
type Pair struct {
	Open, Close int
}

// Pairs returns all matched groups in opener order.
func (cs Chunks) Pairs() []Pair {
	var ps []Pair
	for i := range cs {
		ch := &cs[i]
		if ch.Kind == ParenOpen && ch.HasPair() {
			ps = append(ps, Pair{Open: i, Close: ch.Pair})
		}
	}
	return ps
}

// Validate checks the structural invariants of a chunk store against
// its flat buffer: contiguous offsets starting at 0, non-empty chunks
// except Eof, a single Eof at the end, and full coverage of flat.
func (cs Chunks) Validate(flat []rune) error {
	if len(cs) == 0 {
		return fmt.Errorf("no chunks")
	}
	off := 0
	for i := range cs {
		ch := &cs[i]
		if ch.Offset != off {
			return fmt.Errorf("chunk %d: offset %d, expected %d", i, ch.Offset, off)
		}
		switch {
		case ch.Kind == Eof && i != len(cs)-1:
			return fmt.Errorf("chunk %d: Eof before the end", i)
		case ch.Kind == Eof && ch.Len != 0:
			return fmt.Errorf("chunk %d: Eof with length %d", i, ch.Len)
		case ch.Kind != Eof && ch.Len <= 0:
			return fmt.Errorf("chunk %d: %s with length %d", i, ch.Kind, ch.Len)
		}
		if ch.HasPair() {
			if ch.Pair >= len(cs) || cs[ch.Pair].Pair != i {
				return fmt.Errorf("chunk %d: pair %d does not point back", i, ch.Pair)
			}
		}
		off = ch.End()
	}
	if cs[len(cs)-1].Kind != Eof {
		return fmt.Errorf("last chunk is %s, not Eof", cs[len(cs)-1].Kind)
	}
	if off != len(flat) {
		return fmt.Errorf("chunks cover %d runes of %d", off, len(flat))
	}
	return nil
}
