// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package posts

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// REGISTRY WATCHER
// =============================================================================

// Watcher reloads the index when the registry changes on disk, so edits to
// posts.json show up without restarting. Editors save with write/rename
// cycles that produce event bursts; changes are debounced before reloading.
type Watcher struct {
	idx      *Index
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(skipped []error, err error)

	mu      sync.Mutex
	pending time.Time
	dirty   bool

	ctx    context.Context
	cancel context.CancelFunc
}

// DefaultDebounce is how long the registry must be quiet before a reload.
const DefaultDebounce = 250 * time.Millisecond

// NewWatcher creates a registry watcher. onReload runs on the watcher
// goroutine after each reload attempt; callers route it onto their own
// event loop. It may be nil.
func NewWatcher(idx *Index, debounce time.Duration, onReload func(skipped []error, err error)) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		idx:      idx,
		watcher:  fsw,
		debounce: debounce,
		onReload: onReload,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching. The registry's directory is watched rather than the
// file itself: atomic-rename saves replace the inode and a file watch would
// go stale after the first edit.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.idx.RegistryPath())); err != nil {
		return err
	}

	go w.processEvents()
	go w.processPending()

	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents marks the registry dirty on relevant filesystem events.
func (w *Watcher) processEvents() {
	target := filepath.Clean(w.idx.RegistryPath())

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.dirty = true
				w.mu.Unlock()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next manual reload still works.
		}
	}
}

// processPending reloads once the debounce window has passed quietly.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			due := w.dirty && time.Since(w.pending) >= w.debounce
			if due {
				w.dirty = false
			}
			w.mu.Unlock()

			if due {
				skipped, err := w.idx.Reload()
				if w.onReload != nil {
					w.onReload(skipped, err)
				}
			}
		}
	}
}
