// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines provides Lines, the owner of a document: its text as
// lines of runes, the language that tokenizes it, and the chunks of the
// most recent tokenizer pass.
//
// Any edit marks the tokens dirty; the next call that needs tokens runs
// a complete pass over the whole document. Observers are called with
// the result of each pass.
package lines

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/brockelmore/makepad/text/format"
	"github.com/brockelmore/makepad/text/languages"
	"github.com/brockelmore/makepad/text/lexer"
	"github.com/brockelmore/makepad/text/textpos"
)

// Lines is a document of text lines with tokens. All exported methods
// are safe to call from multiple goroutines; each tokenizer pass runs to
// completion under the lock.
type Lines struct {

	// language tokenizes and formats the text.
	language languages.Language

	// formatOptions are the options used by AutoFormat.
	formatOptions format.Options

	// lines are the current text lines, without line breaks.
	lines [][]rune

	// needsTokens is set by every edit and cleared by a tokenizer pass.
	needsTokens bool

	// result is the most recent tokenizer pass.
	result *lexer.Result

	// changed is set by edits and cleared by SetChanged.
	changed bool

	// hooks are called for every token of a pass.
	hooks []lexer.Hook

	// observers are called with the result of every pass.
	observers []func(rs *lexer.Result)

	sync.Mutex
}

func (ls *Lines) setText(text []byte) {
	ls.lines = languages.SplitLines(string(text))
	ls.needsTokens = true
}

func (ls *Lines) setLines(lns [][]rune) {
	ls.lines = make([][]rune, max(len(lns), 1))
	for i, l := range lns {
		ls.lines[i] = slices.Clone(l)
	}
	ls.needsTokens = true
}

func (ls *Lines) string() string {
	strs := make([]string, len(ls.lines))
	for i, l := range ls.lines {
		strs[i] = string(l)
	}
	return strings.Join(strs, "\n")
}

func (ls *Lines) endPos() textpos.Pos {
	last := len(ls.lines) - 1
	return textpos.Pos{Line: last, Char: len(ls.lines[last])}
}

func (ls *Lines) isValidPos(pos textpos.Pos) error {
	if pos.Line < 0 || pos.Line >= len(ls.lines) || pos.Char < 0 || pos.Char > len(ls.lines[pos.Line]) {
		return fmt.Errorf("lines: position %s is outside the text, which ends at %s", pos, ls.endPos())
	}
	return nil
}

// insert inserts text at pos, returning the region it now occupies.
func (ls *Lines) insert(pos textpos.Pos, text []rune) (textpos.Region, error) {
	if err := ls.isValidPos(pos); err != nil {
		return textpos.Region{}, err
	}
	ins := languages.SplitLines(string(text))
	ln := ls.lines[pos.Line]
	tail := slices.Clone(ln[pos.Char:])
	ls.lines[pos.Line] = append(ln[:pos.Char:pos.Char], ins[0]...)
	if len(ins) > 1 {
		ls.lines = slices.Insert(ls.lines, pos.Line+1, ins[1:]...)
	}
	lastLn := pos.Line + len(ins) - 1
	end := textpos.Pos{Line: lastLn, Char: len(ls.lines[lastLn])}
	ls.lines[lastLn] = append(ls.lines[lastLn], tail...)
	ls.edited()
	return textpos.Region{Start: pos, End: end}, nil
}

// delete removes the text in reg, returning it.
func (ls *Lines) delete(reg textpos.Region) ([]rune, error) {
	if err := ls.isValidPos(reg.Start); err != nil {
		return nil, err
	}
	if err := ls.isValidPos(reg.End); err != nil {
		return nil, err
	}
	if reg.IsNil() {
		return nil, nil
	}
	st := textpos.ToOffset(ls.lines, reg.Start)
	ed := textpos.ToOffset(ls.lines, reg.End)
	deleted := []rune(ls.string())[st:ed]
	deleted = slices.Clone(deleted)

	first := ls.lines[reg.Start.Line][:reg.Start.Char:reg.Start.Char]
	ls.lines[reg.Start.Line] = append(first, ls.lines[reg.End.Line][reg.End.Char:]...)
	ls.lines = slices.Delete(ls.lines, reg.Start.Line+1, reg.End.Line+1)
	ls.edited()
	return deleted, nil
}

func (ls *Lines) edited() {
	ls.needsTokens = true
	ls.changed = true
}
