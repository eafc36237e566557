// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"github.com/brockelmore/makepad/text/format"
	"github.com/brockelmore/makepad/text/languages"
	"github.com/brockelmore/makepad/text/lexer"
	"github.com/brockelmore/makepad/text/textpos"
)

// this file contains the exported API for Lines

// NewLines returns a new empty Lines in the given language, formatting
// with the language's default options.
func NewLines(lang languages.Language) *Lines {
	ls := &Lines{language: lang, formatOptions: lang.FormatOptions()}
	ls.setText(nil)
	return ls
}

// Language returns the language of the text.
func (ls *Lines) Language() languages.Language {
	ls.Lock()
	defer ls.Unlock()
	return ls.language
}

// SetLanguage changes the language, which requires a new pass.
func (ls *Lines) SetLanguage(lang languages.Language) *Lines {
	ls.Lock()
	defer ls.Unlock()
	ls.language = lang
	ls.needsTokens = true
	return ls
}

// SetFormatOptions sets the options used by AutoFormat.
func (ls *Lines) SetFormatOptions(opts format.Options) *Lines {
	ls.Lock()
	defer ls.Unlock()
	ls.formatOptions = opts
	return ls
}

// SetText sets the text to the given bytes. A trailing carriage
// return on each line is dropped.
func (ls *Lines) SetText(text []byte) *Lines {
	ls.Lock()
	defer ls.Unlock()
	ls.setText(text)
	return ls
}

// SetString sets the text to the given string.
func (ls *Lines) SetString(txt string) *Lines {
	return ls.SetText([]byte(txt))
}

// SetLines sets the text to a copy of the given lines.
func (ls *Lines) SetLines(lns [][]rune) *Lines {
	ls.Lock()
	defer ls.Unlock()
	ls.setLines(lns)
	return ls
}

// Text returns the text as bytes, with lines joined by line feeds.
func (ls *Lines) Text() []byte {
	ls.Lock()
	defer ls.Unlock()
	return []byte(ls.string())
}

// String returns the text as a string.
func (ls *Lines) String() string {
	ls.Lock()
	defer ls.Unlock()
	return ls.string()
}

// NumLines returns the number of lines.
func (ls *Lines) NumLines() int {
	ls.Lock()
	defer ls.Unlock()
	return len(ls.lines)
}

// Line returns a copy of line ln, or nil if out of range.
func (ls *Lines) Line(ln int) []rune {
	ls.Lock()
	defer ls.Unlock()
	if ln < 0 || ln >= len(ls.lines) {
		return nil
	}
	return append([]rune(nil), ls.lines[ln]...)
}

// EndPos returns the position at the end of the text.
func (ls *Lines) EndPos() textpos.Pos {
	ls.Lock()
	defer ls.Unlock()
	return ls.endPos()
}

// IsChanged reports whether any edits have been applied to the text.
func (ls *Lines) IsChanged() bool {
	ls.Lock()
	defer ls.Unlock()
	return ls.changed
}

// SetChanged sets the changed flag to given value (e.g., when file saved)
func (ls *Lines) SetChanged(changed bool) {
	ls.Lock()
	defer ls.Unlock()
	ls.changed = changed
}

// Insert inserts text at pos, which may contain line breaks, and
// returns the region the text now occupies.
func (ls *Lines) Insert(pos textpos.Pos, text string) (textpos.Region, error) {
	ls.Lock()
	defer ls.Unlock()
	return ls.insert(pos, []rune(text))
}

// Delete deletes the text within reg, returning the deleted text.
func (ls *Lines) Delete(reg textpos.Region) (string, error) {
	ls.Lock()
	defer ls.Unlock()
	del, err := ls.delete(reg)
	return string(del), err
}

// NeedsTokens returns true if the text changed since the last pass.
func (ls *Lines) NeedsTokens() bool {
	ls.Lock()
	defer ls.Unlock()
	return ls.needsTokens
}

// Tokens returns the result of the latest tokenizer pass, first
// re-tokenizing the whole text if it changed. The result must not be
// modified.
func (ls *Lines) Tokens() *lexer.Result {
	ls.Lock()
	defer ls.Unlock()
	return ls.tokens()
}

// InvalidPairing returns true if the delimiters of the text are
// unbalanced.
func (ls *Lines) InvalidPairing() bool {
	ls.Lock()
	defer ls.Unlock()
	return ls.tokens().InvalidPairing
}

// ChunkAt returns the index of the chunk at pos, or -1.
func (ls *Lines) ChunkAt(pos textpos.Pos) int {
	ls.Lock()
	defer ls.Unlock()
	return ls.chunkAt(pos)
}

// ChunkRegion returns the region of chunk i in the text. The end of
// stream chunks have no region and return [textpos.PosErr] bounds.
func (ls *Lines) ChunkRegion(i int) textpos.Region {
	ls.Lock()
	defer ls.Unlock()
	return ls.chunkRegion(i)
}

// AutoFormat formats the text, replacing it if the formatted text is
// different, and reports whether it changed.
func (ls *Lines) AutoFormat() bool {
	ls.Lock()
	defer ls.Unlock()
	return ls.autoFormat()
}
