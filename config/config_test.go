// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brockelmore/makepad/base/indent"
	"github.com/brockelmore/makepad/text/languages/rust"
	"github.com/brockelmore/makepad/text/languages/solidity"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFile(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), c)
	assert.Equal(t, 100*time.Millisecond, c.Debounce())
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.toml")
	src := `
language = "rust"
debounce_ms = 250

[format.rust]
indent_width = 2
indent_char = "tab"
`
	require.NoError(t, os.WriteFile(fn, []byte(src), 0644))
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "rust", c.Language)
	assert.Equal(t, "emacs", c.Style)
	assert.Equal(t, 250*time.Millisecond, c.Debounce())

	opts, err := c.FormatOptions(rust.TheRust)
	require.NoError(t, err)
	assert.Equal(t, 2, opts.IndentWidth)
	assert.Equal(t, indent.Tab, opts.IndentChar)
	assert.True(t, opts.PreSpacey)

	opts, err = c.FormatOptions(solidity.TheSolidity)
	require.NoError(t, err)
	assert.Equal(t, solidity.TheSolidity.FormatOptions(), opts)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	for _, src := range []string{
		`language = "python"`,
		"[format.rust]\nindent_char = \"dots\"",
		"[format.cobol]\nindent_width = 2",
		"language = ",
	} {
		fn := filepath.Join(dir, "config.toml")
		require.NoError(t, os.WriteFile(fn, []byte(src), 0644))
		_, err := Open(fn)
		assert.Error(t, err, src)
	}
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "config.toml")
	c := Defaults()
	c.Style = "monokai"
	c.Format = map[string]map[string]any{"solidity": {"extra_spacey": true}}
	require.NoError(t, c.Save(fn))

	c2, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "monokai", c2.Style)
	opts, err := c2.FormatOptions(solidity.TheSolidity)
	require.NoError(t, err)
	assert.True(t, opts.ExtraSpacey)
}

func TestPath(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	p, err := Path("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "padfmt", "config.toml"), p)

	p, err = Path("/tmp/x.toml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.toml", p)
}
