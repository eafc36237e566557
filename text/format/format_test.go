// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format_test

import (
	"strings"
	"testing"

	"github.com/brockelmore/makepad/base/indent"
	"github.com/brockelmore/makepad/text/format"
	"github.com/brockelmore/makepad/text/languages"
	"github.com/brockelmore/makepad/text/languages/rust"
	"github.com/brockelmore/makepad/text/languages/solidity"
	"github.com/brockelmore/makepad/text/token"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func lines(ls ...string) string {
	return strings.Join(ls, "\n")
}

func formatSol(src string) string {
	return languages.FormatText(solidity.TheSolidity, src, solidity.TheSolidity.FormatOptions())
}

func formatRust(src string) string {
	return languages.FormatText(rust.TheRust, src, rust.TheRust.FormatOptions())
}

func TestContract(t *testing.T) {
	want := lines(
		"contract A {",
		"    function f(uint a, uint b) public returns (uint) {",
		"        return a + b;",
		"    }",
		"}",
	)
	src := "contract A{\nfunction f(uint a,uint b) public returns(uint){\nreturn a+b;\n}\n}"
	assert.Equal(t, want, formatSol(src))
	assert.Equal(t, want, formatSol(want))

	src = "contract  A  {\n\t\t  function f( uint a , uint b ) public returns ( uint ) {\n return a  +  b ;\n   }\n      }"
	assert.Equal(t, want, formatSol(src))
}

func TestMultiLineGroup(t *testing.T) {
	want := lines("f(", "    a,", "    b,", "    c", ")")
	assert.Equal(t, want, formatSol("f(\na, b, c)"))
	assert.Equal(t, want, formatSol(want))
}

func TestSingleLineGroup(t *testing.T) {
	assert.Equal(t, "f(a, b)", formatSol("f(a,\nb)"))
	assert.Equal(t, "f(a, b)\n", formatSol("f(a,b)\r\n"))
	assert.Equal(t, "x = [1, 2, 3];", formatSol("x=[1 ,2,3] ;"))
}

func TestStatementsSplit(t *testing.T) {
	assert.Equal(t, lines("a = 1;", "b = 2;"), formatSol("a = 1; b = 2;"))
	assert.Equal(t, "for (i = 0; i < n; i++) {}", formatSol("for(i=0;i<n;i++){}"))
}

func TestOperators(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{"x=-y", "x = -y"},
		{"a-b", "a - b"},
		{"a = !b", "a = !b"},
		{"a!=b", "a != b"},
		{"a.b.c", "a.b.c"},
		{"i ++", "i++"},
		{"x+=1", "x += 1"},
		{"a=>b", "a => b"},
		{"a&&b", "a && b"},
	} {
		assert.Equal(t, tc.want, formatSol(tc.src), tc.src)
	}
}

func TestContinuationIndent(t *testing.T) {
	assert.Equal(t, lines("x = a", "    + b;"), formatSol("x = a\n+ b;"))
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, "", formatSol(""))
	assert.Equal(t, "", formatSol("   "))
	assert.Equal(t, "\n", formatSol("\n"))
}

func TestCommentsPreserved(t *testing.T) {
	assert.Equal(t, "x = 1; // note  here\ny = 2;", formatSol("x=1;   // note  here\ny=2;"))

	want := lines(
		"contract C {",
		"    /* one",
		"         two */",
		"    uint x;",
		"}",
	)
	assert.Equal(t, want, formatSol("contract C {\n/* one\n         two */\nuint x;\n}"))
}

func TestLineCommentInGroup(t *testing.T) {
	want := lines("f(a, // first", "b)")
	assert.Equal(t, want, formatSol("f(a, // first\nb)"))
}

func TestUnbalanced(t *testing.T) {
	assert.Equal(t, lines("}", "x;"), formatSol("}\nx;"))
	assert.Equal(t, lines("f(", "    a"), formatSol("f(\na"))
}

func TestRust(t *testing.T) {
	want := lines(
		"fn main() {",
		"    let x = vec![1, 2];",
		`    if x.len() > 1 {println!("hi");}`,
		"}",
	)
	assert.Equal(t, want, formatRust("fn main(){\nlet x=vec![1,2];\nif x.len()>1 {println!(\"hi\");}\n}"))
	assert.Equal(t, want, formatRust(want))

	assert.Equal(t, "fn f(a: i32) -> u32 {}", formatRust("fn f(a:i32)->u32{}"))
	assert.Equal(t, "let v = Vec::new();", formatRust("let v=Vec::new();"))
	assert.Equal(t, "x?;", formatRust("x ?;"))
	assert.Equal(t, "#[derive(Debug)]", formatRust("#[derive(Debug)]"))
}

func TestRustMultiLineString(t *testing.T) {
	src := lines(`let s = "one`, "  two", `";`)
	assert.Equal(t, src, formatRust(src))
}

func TestOptions(t *testing.T) {
	opts := format.DefaultOptions()
	opts.ExtraSpacey = true
	assert.Equal(t, "x = { a };", languages.FormatText(solidity.TheSolidity, "x={a};", opts))

	opts = format.DefaultOptions()
	opts.IndentChar = indent.Tab
	assert.Equal(t, lines("{", "\ta;", "}"), languages.FormatText(solidity.TheSolidity, "{\na;\n}", opts))

	opts = format.DefaultOptions()
	opts.IndentWidth = 2
	assert.Equal(t, lines("{", "  a;", "}"), languages.FormatText(solidity.TheSolidity, "{\na;\n}", opts))

	opts = format.Options{}
	assert.Equal(t, lines("if (a){", "    b;", "}"), languages.FormatText(solidity.TheSolidity, "if (a) {\nb;\n}", opts))
}

var fragments = []string{
	"contract", "function", "return", "uint", "x", "y", "1", "0x1f",
	" ", "\n", "(", ")", "[", "]", "{", "}", ";", ",", ":", ".",
	"+", "-", "*", "/", "=", "!", "<", ">", "&&", "++", "?",
	`"s"`, "// c", "/*", "*/",
}

// Formatting never drops the significant text of the input.
func TestPreservesTokens(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := strings.Join(rapid.SliceOf(rapid.SampledFrom(fragments)).Draw(rt, "parts"), "")
		out := formatSol(src)
		squash := func(s string) string {
			return strings.Join(strings.Fields(s), "")
		}
		assert.Equal(rt, squash(src), squash(out))
	})
}

func TestPayloadKept(t *testing.T) {
	for _, src := range []string{
		"x = 1; // keep  ",
		"x = 'ab  \ny;",
		"f('ab  \n)",
		"x = /a  ",
		"/* a  \n b  */",
		"? // c  x  ",
	} {
		assert.Equal(t, src, formatSol(src), src)
	}
	assert.Equal(t, "? // c  x  ", formatSol("?// c  x  "))

	src := lines(`let s = "ab  `, "  cd  ", `";`)
	assert.Equal(t, src, formatRust(src))
}

func TestPrefixSpacing(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{"a = -{b};", "a = -{b};"},
		{"a = - {b};", "a = -{b};"},
		{"a = !{b};", "a = !{b};"},
		{"a = &{b};", "a = &{b};"},
		{"a.{b};", "a.{b};"},
		{"f(-(x));", "f(-(x));"},
		{"x = - -y;", "x = - -y;"},
		{"x = -  -y;", "x = - -y;"},
		{"f(a, -\n-x)", "f(a, - -x)"},
		{"x. 5", "x. 5"},
		{"x::y", "x: : y"},
	} {
		once := formatSol(tc.src)
		assert.Equal(t, tc.want, once, tc.src)
		assert.Equal(t, once, formatSol(once), tc.src)
	}
}

// formatCase pairs a dialect with fragments that join into its inputs.
type formatCase struct {
	name      string
	lang      languages.Language
	fragments []string
}

var formatCases = []formatCase{
	{"solidity", solidity.TheSolidity, []string{
		"x", "1", "uint", "return", "if", "(", ")", "[", "]", "{", "}", ";", ",", ":",
		"=", "+", "-", "!", ".", "..", "&", "*", "/", "?", "++",
		" ", "  ", "\t", "\n", `"s"`, "'ab  ", "'ab  \n", "// c  ", "/* c  */", "/* a\n b  */",
	}},
	{"rust", rust.TheRust, []string{
		"x", "1", "Self", "fn", "let", "mut", "(", ")", "[", "]", "{", "}", ";", ",", ":", "::",
		"=", "+", "-", "!", ".", "..", "&", "*", "/", "?", "#", "'a", "x!",
		" ", "  ", "\t", "\n", `"s"`, "\"ab  \n  cd  \"", "// c  ", "/* c  */",
	}},
}

func (fc formatCase) format(src string) string {
	return languages.FormatText(fc.lang, src, fc.lang.FormatOptions())
}

func (fc formatCase) draw(rt *rapid.T) string {
	return strings.Join(rapid.SliceOf(rapid.SampledFrom(fc.fragments)).Draw(rt, "parts"), "")
}

// payload returns the text of the comments and strings in src, in order,
// including the spaces and line breaks inside them.
func payload(l languages.Language, src string) []string {
	rs := languages.Lex(l, languages.SplitLines(src), nil)
	var out []string
	inLine, inBlock, inString := false, false, false
	for i, ch := range rs.Chunks {
		k := ch.Kind
		if k == token.Eof || rs.IsTrailer(i) {
			continue
		}
		switch k {
		case token.CommentLine:
			inLine = true
		case token.CommentMultiBegin:
			inBlock = true
		case token.StringMultiBegin:
			inString = true
		case token.Newline:
			if inLine {
				inLine = false
				continue
			}
		}
		if inLine || inBlock || inString || k.IsComment() || k.IsString() {
			out = append(out, rs.Text(i))
		}
		switch k {
		case token.CommentMultiEnd:
			inBlock = false
		case token.StringMultiEnd:
			inString = false
		}
	}
	return out
}

func TestIdempotent(t *testing.T) {
	for _, fc := range formatCases {
		t.Run(fc.name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				src := fc.draw(rt)
				once := fc.format(src)
				assert.Equal(rt, once, fc.format(once), "input %q", src)
			})
		})
	}
}

func TestPayloadPreserved(t *testing.T) {
	for _, fc := range formatCases {
		t.Run(fc.name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				src := fc.draw(rt)
				assert.Equal(rt, payload(fc.lang, src), payload(fc.lang, fc.format(src)), "input %q", src)
			})
		})
	}
}
