// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides indentation generation methods.
package indent

import (
	"fmt"
	"strings"
)

// Character is the type of indentation character to use.
type Character int32

const (
	// Space indicates to use spaces for indentation.
	Space Character = iota

	// Tab indicates to use tabs for indentation.
	Tab
)

// String returns the config name of the character.
func (ich Character) String() string {
	if ich == Tab {
		return "tab"
	}
	return "space"
}

// MarshalText implements [encoding.TextMarshaler].
func (ich Character) MarshalText() ([]byte, error) {
	return []byte(ich.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ich *Character) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "space", "spaces":
		*ich = Space
	case "tab", "tabs":
		*ich = Tab
	default:
		return fmt.Errorf("indent.Character: %q is not space or tab", text)
	}
	return nil
}

// Runes returns the indentation reaching column cols: all spaces, or as
// many tabs of the given width as fit followed by spaces for the rest.
func Runes(ich Character, cols, width int) []rune {
	if cols <= 0 {
		return nil
	}
	if ich != Tab || width <= 0 {
		return []rune(strings.Repeat(" ", cols))
	}
	return []rune(strings.Repeat("\t", cols/width) + strings.Repeat(" ", cols%width))
}

// String returns the indentation reaching column cols as a string.
func String(ich Character, cols, width int) string {
	return string(Runes(ich, cols, width))
}

// Len returns the number of runes in the indentation for column cols.
func Len(ich Character, cols, width int) int {
	if ich == Tab && width > 0 {
		return cols/width + cols%width
	}
	return cols
}
