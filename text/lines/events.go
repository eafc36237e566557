// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import "github.com/brockelmore/makepad/text/lexer"

// AddObserver adds a function called with the result of every tokenizer
// pass. It is called with the Lines locked, so it must not call methods
// of the Lines.
func (ls *Lines) AddObserver(fun func(rs *lexer.Result)) {
	ls.Lock()
	defer ls.Unlock()
	ls.observers = append(ls.observers, fun)
}

// AddHook adds a hook called after every token of a pass, with the
// chunks so far. The same locking rule as for observers applies.
func (ls *Lines) AddHook(hook lexer.Hook) {
	ls.Lock()
	defer ls.Unlock()
	ls.hooks = append(ls.hooks, hook)
	ls.needsTokens = true
}
