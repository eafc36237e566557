// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package languages is the registry of dialects. Each dialect package
// registers itself in an init function; import supportedlanguages to get
// all of them.
package languages

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/brockelmore/makepad/text/format"
	"github.com/brockelmore/makepad/text/lexer"
)

// Language is a dialect: a tokenizer factory plus its formatting policy.
type Language interface {

	// Name is the unique, lower case name of the dialect.
	Name() string

	// Extensions are the file name extensions handled by the dialect,
	// including the leading dot.
	Extensions() []string

	// NewTokenizer returns a tokenizer with fresh state, for one pass.
	NewTokenizer() lexer.Tokenizer

	// FormatOptions returns the default formatting policy.
	FormatOptions() format.Options
}

var (
	mu       sync.RWMutex
	registry = map[string]Language{}
)

// Register adds the language to the registry, replacing any
// language of the same name.
func Register(l Language) {
	mu.Lock()
	defer mu.Unlock()
	registry[l.Name()] = l
}

// ForName returns the language with the given name (case-insensitive).
// The error for an unknown name suggests the closest registered name.
func ForName(name string) (Language, error) {
	mu.RLock()
	l, ok := registry[strings.ToLower(name)]
	mu.RUnlock()
	if ok {
		return l, nil
	}
	if s := Suggest(name); s != "" {
		return nil, fmt.Errorf("languages.ForName: unknown language %q (did you mean %q?)", name, s)
	}
	return nil, fmt.Errorf("languages.ForName: unknown language %q", name)
}

// ForFilename returns the language handling the extension of fname.
func ForFilename(fname string) (Language, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	mu.RLock()
	defer mu.RUnlock()
	for _, l := range registry {
		if slices.Contains(l.Extensions(), ext) {
			return l, nil
		}
	}
	return nil, fmt.Errorf("languages.ForFilename: no language for %q", fname)
}

// Names returns the registered language names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	nms := make([]string, 0, len(registry))
	for nm := range registry {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	return nms
}

// All returns the registered languages, sorted by name.
func All() []Language {
	nms := Names()
	ls := make([]Language, 0, len(nms))
	mu.RLock()
	defer mu.RUnlock()
	for _, nm := range nms {
		ls = append(ls, registry[nm])
	}
	return ls
}

// SuggestThreshold is the minimum similarity for Suggest to return a name.
var SuggestThreshold = 0.5

// Suggest returns the registered name most similar to name, or ""
// if none is close enough.
func Suggest(name string) string {
	name = strings.ToLower(name)
	best, bestSim := "", SuggestThreshold
	lev := metrics.NewLevenshtein()
	for _, nm := range Names() {
		if sim := strutil.Similarity(name, nm, lev); sim >= bestSim {
			best, bestSim = nm, sim
		}
	}
	return best
}

// Lex runs a fresh tokenizer of the language over lines.
func Lex(l Language, lines [][]rune, hook lexer.Hook) *lexer.Result {
	return lexer.Run(lines, l.NewTokenizer(), hook)
}

// FormatText tokenizes and formats src with the given options,
// returning the formatted text.
func FormatText(l Language, src string, opts format.Options) string {
	rs := Lex(l, SplitLines(src), nil)
	return format.Format(rs.Flat, rs.Chunks, opts).String()
}

// SplitLines splits text into lines of runes at '\n', dropping any '\r'
// that ends a line.
func SplitLines(src string) [][]rune {
	strs := strings.Split(src, "\n")
	lns := make([][]rune, len(strs))
	for i, s := range strs {
		lns[i] = []rune(strings.TrimSuffix(s, "\r"))
	}
	return lns
}
