// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brockelmore/makepad/text/languages"
	"github.com/brockelmore/makepad/text/languages/rust"
	_ "github.com/brockelmore/makepad/text/languages/supportedlanguages"
	"github.com/brockelmore/makepad/text/lines"
	"github.com/brockelmore/makepad/text/textpos"
	"github.com/brockelmore/makepad/text/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rustSrc = `fn total(v: &Vec<u32>) -> u32 {
    // total is not counted here
    let total = v.iter().sum();
    println!("{}", total);
    total
}`

func TestIndex(t *testing.T) {
	ix := NewIndex()
	languages.Lex(rust.TheRust, languages.SplitLines(rustSrc), ix.Hook)

	assert.Equal(t, 4, ix.Count("total"))
	assert.Equal(t, []token.Kinds{token.Identifier, token.Call}, ix.Kinds("total"))
	assert.Equal(t, []textpos.Region{
		textpos.NewRegion(0, 3, 0, 8),
		textpos.NewRegion(2, 8, 2, 13),
		textpos.NewRegion(3, 19, 3, 24),
		textpos.NewRegion(4, 4, 4, 9),
	}, ix.Find("total"))
	assert.Equal(t, 1, ix.Count("println"))
	assert.Equal(t, 1, ix.Count("Vec"))
	assert.Equal(t, 0, ix.Count("u32"))
	assert.Nil(t, ix.Find("missing"))
	assert.Contains(t, ix.Names(), "iter")

	ms := ix.Matches("total")
	require.Len(t, ms, 4)
	assert.Equal(t, "    <mark>total</mark>", string(ms[3].Text))
}

func TestIndexResets(t *testing.T) {
	ix := NewIndex()
	ls := lines.NewLines(rust.TheRust).SetString("a b a")
	ls.AddHook(ix.Hook)
	ls.Tokens()
	assert.Equal(t, 2, ix.Count("a"))

	ls.SetString("b")
	ls.Tokens()
	assert.Equal(t, 0, ix.Count("a"))
	assert.Equal(t, []string{"b"}, ix.Names())
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0644))
	}
	write("a.rs", "let x = x + x;")
	write("b.sol", "uint x = 1;")
	write("c.txt", "x x x x")
	write("d.rs", "let y = 2;")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "skip"), 0755))
	write("skip/e.rs", "x x x x x")

	res, err := File(filepath.Join(dir, "a.rs"), "x")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)

	_, err = File(filepath.Join(dir, "c.txt"), "x")
	assert.Error(t, err)

	all := All(dir, "x", "skip")
	require.Len(t, all, 2)
	assert.Equal(t, filepath.Join(dir, "a.rs"), all[0].Filepath)
	assert.Equal(t, filepath.Join(dir, "b.sol"), all[1].Filepath)
	assert.Nil(t, All(dir, ""))
}
