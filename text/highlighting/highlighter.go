// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlighting renders tokenized text with chroma styles, as
// HTML or as colored terminal output.
package highlighting

import (
	"io"
	"log/slog"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/brockelmore/makepad/text/token"
	"github.com/muesli/termenv"
)

// HighlightingName is a highlighting style name.
type HighlightingName string

// DefaultStyle is the style used when none or an unknown one is given.
var DefaultStyle = HighlightingName("emacs")

// AvailableStyle returns the chroma style of the given name, or the
// default style, with a logged error, if there is no such style.
func AvailableStyle(nm HighlightingName) *chroma.Style {
	if nm == "" {
		nm = DefaultStyle
	}
	if st, ok := styles.Registry[string(nm)]; ok {
		return st
	}
	slog.Error("highlighting style not found, using default", "style", nm, "default", DefaultStyle)
	return styles.Get(string(DefaultStyle))
}

// StyleNames returns the names of the available styles, sorted.
func StyleNames() []string {
	return styles.Names()
}

// Highlighter renders chunks in a highlighting style.
type Highlighter struct {

	// syntax highlighting style to use
	StyleName HighlightingName

	// HTML output uses CSS classes instead of inline styles.
	Classes bool

	// HTML output is a complete document rather than a fragment.
	Standalone bool

	// tab size, in chars, for HTML output
	TabSize int
}

// NewHighlighter returns a highlighter for the given style.
func NewHighlighter(style HighlightingName) *Highlighter {
	return &Highlighter{StyleName: style, TabSize: 4}
}

// Style returns the chroma style in use.
func (hi *Highlighter) Style() *chroma.Style {
	return AvailableStyle(hi.StyleName)
}

// HTML writes the chunks as HTML.
func (hi *Highlighter) HTML(w io.Writer, flat []rune, chunks token.Chunks) error {
	f := html.New(html.WithClasses(hi.Classes), html.TabWidth(hi.TabSize), html.Standalone(hi.Standalone))
	return f.Format(w, hi.Style(), Iterator(flat, chunks))
}

// CSS writes the style sheet for HTML output made with Classes.
func (hi *Highlighter) CSS(w io.Writer) error {
	f := html.New(html.WithClasses(true))
	return f.WriteCSS(w, hi.Style())
}

// Terminal writes the chunks with terminal color codes, in as many
// colors as the terminal behind w supports.
func (hi *Highlighter) Terminal(w io.Writer, flat []rune, chunks token.Chunks) error {
	return hi.TerminalProfile(w, termenv.NewOutput(w).EnvColorProfile(), flat, chunks)
}

// TerminalProfile writes the chunks with color codes for the profile.
func (hi *Highlighter) TerminalProfile(w io.Writer, profile termenv.Profile, flat []rune, chunks token.Chunks) error {
	return TerminalFormatter(profile).Format(w, hi.Style(), Iterator(flat, chunks))
}

// TerminalFormatter returns the chroma formatter for a color profile.
func TerminalFormatter(profile termenv.Profile) chroma.Formatter {
	switch profile {
	case termenv.TrueColor:
		return formatters.TTY16m
	case termenv.ANSI256:
		return formatters.TTY256
	case termenv.ANSI:
		return formatters.TTY8
	}
	return formatters.NoOp
}
