// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileinfo classifies file contents, so that source tools can
// refuse binary files before tokenizing them.
package fileinfo

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
)

// headerSize is the number of leading bytes examined.
const headerSize = 8192

// Kind returns the detected file type of the content, such as "png",
// or "" if it is not a known binary format.
func Kind(head []byte) string {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.Extension
}

// IsBinary returns true if the content starts with a known binary
// format signature or contains a NUL byte.
func IsBinary(head []byte) bool {
	if len(head) > headerSize {
		head = head[:headerSize]
	}
	return Kind(head) != "" || bytes.IndexByte(head, 0) >= 0
}

// CheckText returns an error if the content is not text.
func CheckText(name string, content []byte) error {
	if !IsBinary(content) {
		return nil
	}
	if kind := Kind(content); kind != "" {
		return fmt.Errorf("fileinfo: %s is a binary %s file", name, kind)
	}
	return fmt.Errorf("fileinfo: %s is a binary file", name)
}

// CheckFile returns an error if the file cannot be read or is not text.
func CheckFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}
	return CheckText(path, head[:n])
}
