// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

// Match records one occurrence of a name within the text.
type Match struct {

	// Region of the match. Column positions are in runes.
	Region Region

	// Text of the line around the match, at most MatchContext runes
	// on either side, with the match itself wrapped in <mark> tags.
	Text []rune
}

// MatchContext is how much text to include on either side of the match.
var MatchContext = 30

// NewMatch returns a Match for the single-line region within line rn.
func NewMatch(rn []rune, reg Region) Match {
	st, ed := reg.Start.Char, reg.End.Char
	if reg.End.Line != reg.Start.Line {
		ed = len(rn)
	}
	st, ed = min(max(st, 0), len(rn)), min(max(ed, st), len(rn))
	cst := max(st-MatchContext, 0)
	ced := min(ed+MatchContext, len(rn))
	txt := make([]rune, 0, ced-cst+13)
	txt = append(txt, rn[cst:st]...)
	txt = append(txt, []rune("<mark>")...)
	txt = append(txt, rn[st:ed]...)
	txt = append(txt, []rune("</mark>")...)
	txt = append(txt, rn[ed:ced]...)
	return Match{Region: reg, Text: txt}
}
