// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"strings"

	"github.com/brockelmore/makepad/base/indent"
)

// Output accumulates formatted text as lines of runes. All edits apply
// to the last line.
type Output struct {
	lines [][]rune

	// keep is the length of the last line that StripSpace leaves alone.
	keep int

	// Char is the indentation character.
	Char indent.Character

	// Width is the number of columns per indent level, for tabs.
	Width int
}

// NewOutput returns an empty output using the given indentation.
func NewOutput(ich indent.Character, width int) *Output {
	return &Output{Char: ich, Width: width}
}

func (out *Output) last() *[]rune {
	if len(out.lines) == 0 {
		out.lines = append(out.lines, nil)
	}
	return &out.lines[len(out.lines)-1]
}

// NewLine starts a new, empty line.
func (out *Output) NewLine() {
	out.lines = append(out.lines, nil)
	out.keep = 0
}

// Extend appends runes to the current line.
func (out *Output) Extend(rs []rune) {
	ln := out.last()
	*ln = append(*ln, rs...)
}

// ExtendPayload appends comment or string text, which StripSpace will
// not shorten.
func (out *Output) ExtendPayload(rs []rune) {
	out.Extend(rs)
	out.keep = len(*out.last())
}

// AddSpace appends a single space, unless the line is empty or already
// ends in a space or tab.
func (out *Output) AddSpace() {
	ln := out.last()
	if n := len(*ln); n == 0 || (*ln)[n-1] == ' ' || (*ln)[n-1] == '\t' {
		return
	}
	*ln = append(*ln, ' ')
}

// StripSpace removes one trailing space from the current line, unless
// it was written by ExtendPayload.
func (out *Output) StripSpace() {
	ln := out.last()
	if n := len(*ln); n > out.keep && (*ln)[n-1] == ' ' {
		*ln = (*ln)[:n-1]
	}
}

// Indent appends indentation reaching column n.
func (out *Output) Indent(n int) {
	out.Extend(indent.Runes(out.Char, n, out.Width))
}

// Lines returns the accumulated lines.
func (out *Output) Lines() [][]rune {
	return out.lines
}

// Strings returns the lines as strings.
func (out *Output) Strings() []string {
	strs := make([]string, len(out.lines))
	for i, ln := range out.lines {
		strs[i] = string(ln)
	}
	return strs
}

// String returns the lines joined with line breaks.
func (out *Output) String() string {
	return strings.Join(out.Strings(), "\n")
}
