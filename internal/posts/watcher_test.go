// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package posts

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnRegistryChange(t *testing.T) {
	dir := t.TempDir()
	path := writeRegistry(t, dir, `{
		"posts": [{"slug": "one", "title": "One", "date": "2024-01-01", "file": "one.md"}]
	}`)

	idx := NewIndex(dir, path)
	if _, err := idx.Reload(); err != nil {
		t.Fatalf("initial Reload failed: %v", err)
	}

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(idx, 50*time.Millisecond, func(skipped []error, err error) {
		if err == nil {
			select {
			case reloaded <- struct{}{}:
			default:
			}
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	// Grow the registry on disk.
	updated := `{
		"posts": [
			{"slug": "one", "title": "One", "date": "2024-01-01", "file": "one.md"},
			{"slug": "two", "title": "Two", "date": "2024-02-01", "file": "two.md"}
		]
	}`
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatalf("failed to update registry: %v", err)
	}

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not reload after registry change")
	}

	if idx.Len() != 2 {
		t.Errorf("Len() = %d after reload, want 2", idx.Len())
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeRegistry(t, dir, `{
		"posts": [{"slug": "one", "title": "One", "date": "2024-01-01", "file": "one.md"}]
	}`)

	idx := NewIndex(dir, path)
	if _, err := idx.Reload(); err != nil {
		t.Fatalf("initial Reload failed: %v", err)
	}

	fired := make(chan struct{}, 1)
	w, err := NewWatcher(idx, 50*time.Millisecond, func([]error, error) {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	// Touch a different file in the same directory.
	if err := os.WriteFile(filepath.Join(dir, "one.md"), []byte("# body"), 0644); err != nil {
		t.Fatalf("failed to write post: %v", err)
	}

	select {
	case <-fired:
		t.Error("watcher reloaded for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
