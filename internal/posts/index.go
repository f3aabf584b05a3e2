// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package posts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// =============================================================================
// POST INDEX
// =============================================================================

// Index is the loaded blog index: validated registry entries, drafts
// excluded, sorted newest first. Reload may run from the watcher goroutine
// while the UI reads, so access is guarded.
type Index struct {
	mu       sync.RWMutex
	dir      string
	registry string
	entries  []Entry
	bySlug   map[string]Entry
}

// NewIndex creates an index over the given posts directory and registry
// path. Nothing is loaded until Reload.
func NewIndex(dir, registry string) *Index {
	return &Index{
		dir:      dir,
		registry: registry,
		bySlug:   make(map[string]Entry),
	}
}

// Reload re-reads the registry from disk and swaps the index contents.
// Malformed entries are reported in skipped; a registry that cannot be read
// at all leaves the previous contents in place and returns the error.
func (idx *Index) Reload() (skipped []error, err error) {
	entries, skipped, err := LoadRegistry(idx.registry)
	if err != nil {
		return skipped, err
	}

	published := entries[:0]
	for _, e := range entries {
		if !e.Draft {
			published = append(published, e)
		}
	}

	// Newest first; ties break on slug for a stable order.
	sort.SliceStable(published, func(i, j int) bool {
		di, dj := published[i].PublishedAt(), published[j].PublishedAt()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return published[i].Slug < published[j].Slug
	})

	bySlug := make(map[string]Entry, len(published))
	for _, e := range published {
		bySlug[e.Slug] = e
	}

	idx.mu.Lock()
	idx.entries = published
	idx.bySlug = bySlug
	idx.mu.Unlock()

	return skipped, nil
}

// All returns the published entries, newest first.
func (idx *Index) All() []Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]Entry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// Len returns the number of published entries.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// BySlug looks up a published entry.
func (idx *Index) BySlug(slug string) (Entry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	e, ok := idx.bySlug[slug]
	return e, ok
}

// WithTag returns published entries carrying the given tag, newest first.
// Matching is case-insensitive.
func (idx *Index) WithTag(tag string) []Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var out []Entry
	for _, e := range idx.entries {
		for _, t := range e.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Body loads the markdown body for an entry. The file path from the registry
// is resolved inside the posts directory; anything escaping it is rejected.
func (idx *Index) Body(e Entry) (string, error) {
	clean := filepath.Clean(e.File)
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("post %q: file %q escapes the posts directory", e.Slug, e.File)
	}

	data, err := os.ReadFile(filepath.Join(idx.dir, clean))
	if err != nil {
		return "", fmt.Errorf("post %q: failed to read body: %w", e.Slug, err)
	}
	return string(data), nil
}

// RegistryPath returns the registry file the index reloads from.
func (idx *Index) RegistryPath() string {
	return idx.registry
}
