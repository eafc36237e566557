// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brockelmore/makepad/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes padfmt with args and stdin, using a config path that
// does not exist so the defaults apply.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cfg := filepath.Join(t.TempDir(), "config.toml")
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFmtStdin(t *testing.T) {
	for _, lang := range []string{"rust", "solidity"} {
		out, _, err := run(t, "f(a,b)\n", "fmt", "-l", lang)
		require.NoError(t, err)
		assert.Equal(t, "f(a, b)\n", out, lang)
	}
}

func TestFmtUnknownLanguage(t *testing.T) {
	_, _, err := run(t, "x", "fmt", "-l", "python")
	assert.EqualError(t, err, `languages.ForName: unknown language "python"`)
}

func TestFmtWrite(t *testing.T) {
	path := writeFile(t, "Token.sol", "contract A {\nuint x;\n}\n")
	out, _, err := run(t, "", "fmt", "-w", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "contract A {\n    uint x;\n}\n", string(b))
}

func TestFmtDiff(t *testing.T) {
	path := writeFile(t, "main.rs", "let x = 1;\nf(a,b)\n")
	out, _, err := run(t, "", "fmt", "-d", path)
	require.NoError(t, err)
	assert.Contains(t, out, "--- "+path+"\n")
	assert.Contains(t, out, " let x = 1;\n")
	assert.Contains(t, out, "-f(a,b)\n")
	assert.Contains(t, out, "+f(a, b)\n")

	// already formatted
	path = writeFile(t, "ok.rs", "f(a, b)\n")
	out, _, err = run(t, "", "fmt", "-d", path)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFmtBinary(t *testing.T) {
	_, _, err := run(t, "a\x00b", "fmt", "-l", "rust")
	assert.Error(t, err)
}

func TestFmtConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
language = "rust"

[format.rust]
indent_width = 2
`), 0644))
	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("fn f() {\nx;\n}\n"))
	cmd.SetArgs([]string{"--config", cfg, "fmt"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "fn f() {\n  x;\n}\n", stdout.String())
}

func TestBadConfig(t *testing.T) {
	cfg := writeFile(t, "config.toml", "language = [")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "langs"})
	assert.Error(t, cmd.Execute())
}

func TestCheck(t *testing.T) {
	ok := writeFile(t, "ok.sol", "function f() { g(a[1]); }\n")
	out, _, err := run(t, "", "check", ok)
	require.NoError(t, err)
	assert.Empty(t, out)

	bad := writeFile(t, "bad.sol", "function f() {\n")
	out, _, err = run(t, "", "check", ok, bad)
	assert.ErrorIs(t, err, errCheck)
	assert.Contains(t, out, bad+": unbalanced delimiters")

	mixed := writeFile(t, "mixed.rs", "f(a]\n")
	out, _, err = run(t, "", "check", mixed)
	require.NoError(t, err)
	assert.Contains(t, out, mixed+":1:2: warning: ( closed by ] at 1:4")
}

func TestTokens(t *testing.T) {
	out, _, err := run(t, "x = 1;", "tokens", "-l", "rust")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "0\t"))
	assert.Contains(t, out, "\tNumber\t")
	assert.Contains(t, out, `"1"`)
	assert.Contains(t, lines[len(lines)-1], "\tEof\t")
	assert.NotContains(t, out, "unbalanced")
}

func TestHighlight(t *testing.T) {
	path := writeFile(t, "a.rs", "fn main() {}\n")
	out, _, err := run(t, "", "highlight", "--html", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<pre")
	assert.Contains(t, out, "main")

	out, _, err = run(t, "", "highlight", "--css", "--classes")
	require.NoError(t, err)
	assert.Contains(t, out, "{")
}

func TestLangs(t *testing.T) {
	out, _, err := run(t, "", "langs")
	require.NoError(t, err)
	assert.Equal(t, "rust\t.rs\nsolidity\t.sol\n", out)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.sol"), []byte("uint total = total + 1; // total\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("total\n"), 0644))
	out, _, err := run(t, "", "find", "total", dir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a.sol:1:6:")
	assert.Contains(t, lines[1], "a.sol:1:14:")
}

func TestLineDiff(t *testing.T) {
	d := lineDiff("x", "a\nb\nc", "a\nB\nc")
	assert.Equal(t, "--- x\n+++ x (formatted)\n a\n-b\n+B\n c\n", d)
}

func TestWatchCancelled(t *testing.T) {
	path := writeFile(t, "a.sol", "contract A {}\n")
	a := &app{cfg: config.Defaults()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, a.watch(ctx, []string{path}))

	assert.Error(t, a.watch(ctx, []string{filepath.Join(t.TempDir(), "missing", "x.sol")}))
}
