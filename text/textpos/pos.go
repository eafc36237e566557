// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos locates text in a document of lines: positions,
// regions, and the mapping between positions and offsets in the flat
// rune buffer the tokenizer produces.
package textpos

import (
	"fmt"
)

// Pos is a position within lines of text. Both fields are 0-based;
// Char is in runes, not bytes.
type Pos struct {
	Line int
	Char int
}

// PosErr is returned where no valid position exists.
var PosErr = Pos{-1, -1}

// String returns the 1-based line:char form used in messages.
func (ps Pos) String() string {
	return fmt.Sprintf("%d:%d", ps.Line+1, ps.Char+1)
}

// IsLess returns true if ps comes before cmp.
func (ps Pos) IsLess(cmp Pos) bool {
	if ps.Line != cmp.Line {
		return ps.Line < cmp.Line
	}
	return ps.Char < cmp.Char
}

// FromOffset converts an offset into the flat buffer for lines, where
// each line break counts as one rune, to a position. Offsets past the
// end map to the end of the last line.
func FromOffset(lines [][]rune, off int) Pos {
	if off < 0 || len(lines) == 0 {
		return Pos{}
	}
	for ln, l := range lines {
		if off <= len(l) {
			return Pos{ln, off}
		}
		off -= len(l) + 1
	}
	last := len(lines) - 1
	return Pos{last, len(lines[last])}
}

// ToOffset converts a position to an offset into the flat buffer for
// lines. It returns -1 if the position is outside the text.
func ToOffset(lines [][]rune, ps Pos) int {
	if ps.Line < 0 || ps.Line >= len(lines) || ps.Char < 0 || ps.Char > len(lines[ps.Line]) {
		return -1
	}
	off := 0
	for ln := range ps.Line {
		off += len(lines[ln]) + 1
	}
	return off + ps.Char
}
