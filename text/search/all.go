// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"io/fs"
	"path/filepath"
	"slices"
	"sort"

	"github.com/brockelmore/makepad/base/errors"
	"github.com/brockelmore/makepad/text/languages"
)

// All returns the results for all files starting at given file path,
// in a registered language, that contain the given name, sorted in
// descending order by number of occurrences. exclude is a list of
// file or directory names to skip. Files that cannot be read are
// logged and skipped.
func All(start string, name string, exclude ...string) []Results {
	if name == "" {
		return nil
	}
	var mls []Results
	errors.Log(filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if slices.Contains(exclude, d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if _, err := languages.ForFilename(path); err != nil {
			return nil
		}
		res, err := File(path, name)
		if errors.Log(err) != nil || res.Count == 0 {
			return nil
		}
		mls = append(mls, res)
		return nil
	}))
	sort.SliceStable(mls, func(i, j int) bool {
		return mls[i].Count > mls[j].Count
	})
	return mls
}
