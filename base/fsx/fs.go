// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/brockelmore/makepad/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// A directory does not count as a file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to the named file by way of a temporary file in
// the same directory, so that readers never see a partial file. The
// permissions of an existing file are kept.
func WriteFile(name string, data []byte) error {
	perm := fs.FileMode(0666)
	if fi, err := os.Stat(name); err == nil {
		perm = fi.Mode().Perm()
	}
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tname := tmp.Name()
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tname, perm)
	}
	if err == nil {
		err = os.Rename(tname, name)
	}
	if err != nil {
		errors.Log(os.Remove(tname))
	}
	return err
}
