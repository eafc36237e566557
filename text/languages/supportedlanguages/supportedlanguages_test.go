// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package supportedlanguages

import (
	"testing"

	"github.com/brockelmore/makepad/text/languages"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"rust", "solidity"}, languages.Names())

	l, err := languages.ForFilename("src/main.RS")
	assert.NoError(t, err)
	assert.Equal(t, "rust", l.Name())

	_, err = languages.ForFilename("README.md")
	assert.Error(t, err)

	assert.Equal(t, "rust", languages.Suggest("rustt"))
	assert.Equal(t, "", languages.Suggest("python"))

	_, err = languages.ForName("python")
	assert.EqualError(t, err, `languages.ForName: unknown language "python"`)
}

func TestFormatText(t *testing.T) {
	for _, l := range languages.All() {
		out := languages.FormatText(l, "f(a,b)\r\n", l.FormatOptions())
		assert.Equal(t, "f(a, b)\n", out, l.Name())
	}
}
