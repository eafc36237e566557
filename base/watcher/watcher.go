// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watcher watches source files for changes, coalescing bursts of
// file system events into one notification per file.
package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event of a burst
// before a change is reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a set of files. It watches the directories
// containing the files, so that editors that save by replacing the file
// are followed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]bool
	debounce  time.Duration
	onChange  chan string
	done      chan struct{}
	stopOnce  sync.Once
	stopErr   error
}

// New returns a watcher for the given files. A debounce of zero or less
// means [DefaultDebounce].
func New(debounce time.Duration, files ...string) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher.New: %w", err)
	}
	w := &Watcher{
		fsWatcher: fsw,
		files:     map[string]bool{},
		debounce:  debounce,
		onChange:  make(chan string, max(len(files), 1)),
		done:      make(chan struct{}),
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watcher.New: %w", err)
		}
		w.files[abs] = true
	}
	return w, nil
}

// Start begins watching. The returned channel receives the path of
// each changed file, as given to New made absolute, after its burst of
// events has settled. It is closed when the watcher stops.
func (w *Watcher) Start() (<-chan string, error) {
	dirs := map[string]bool{}
	for f := range w.files {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.fsWatcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watcher: watching directory %s: %w", dir, err)
		}
	}
	go w.loop()
	return w.onChange, nil
}

// Stop terminates the watcher and releases resources. Calls after the
// first return the result of the first.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopErr = w.fsWatcher.Close()
	})
	return w.stopErr
}

// loop processes file system events with a debounce timer per file.
func (w *Watcher) loop() {
	defer close(w.onChange)
	timers := map[string]*time.Timer{}
	fired := make(chan string, len(w.files))
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			name := filepath.Clean(event.Name)
			if t, ok := timers[name]; ok {
				t.Reset(w.debounce)
				continue
			}
			timers[name] = time.AfterFunc(w.debounce, func() {
				select {
				case fired <- name:
				case <-w.done:
				}
			})

		case name := <-fired:
			delete(timers, name)
			select {
			case w.onChange <- name:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			slog.Error("watcher", "err", err)

		case <-w.done:
			return
		}
	}
}

// isRelevantEvent returns true for a write or create of a watched file.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	return err == nil && w.files[abs]
}
