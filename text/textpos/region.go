// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import "fmt"

// Region is a contiguous region within the text,
// defined by start and end [Pos] positions.
type Region struct {
	// starting position of region
	Start Pos
	// ending position of region, exclusive
	End Pos
}

// NewRegion returns a region from start and end line and char values.
func NewRegion(stLn, stCh, edLn, edCh int) Region {
	return Region{Start: Pos{stLn, stCh}, End: Pos{edLn, edCh}}
}

// RegionFromOffsets returns the region spanning flat offsets [st, ed).
func RegionFromOffsets(lines [][]rune, st, ed int) Region {
	return Region{Start: FromOffset(lines, st), End: FromOffset(lines, ed)}
}

// IsNil checks if the region is empty, because the start is after or equal to the end.
func (tr Region) IsNil() bool {
	return !tr.Start.IsLess(tr.End)
}

// Contains returns true if region contains position
func (tr Region) Contains(ps Pos) bool {
	return ps.IsLess(tr.End) && !ps.IsLess(tr.Start)
}

func (tr Region) String() string {
	return fmt.Sprintf("%s-%s", tr.Start, tr.End)
}
