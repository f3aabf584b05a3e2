// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package posts

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestIndex(t *testing.T, registry string) (*Index, string) {
	t.Helper()
	dir := t.TempDir()
	path := writeRegistry(t, dir, registry)
	idx := NewIndex(dir, path)
	if _, err := idx.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	return idx, dir
}

// =============================================================================
// INDEX TESTS
// =============================================================================

func TestIndex_SortedNewestFirst(t *testing.T) {
	idx, _ := newTestIndex(t, `{
		"posts": [
			{"slug": "oldest", "title": "Oldest", "date": "2023-06-01", "file": "a.md"},
			{"slug": "newest", "title": "Newest", "date": "2024-06-01", "file": "b.md"},
			{"slug": "middle", "title": "Middle", "date": "2024-01-01", "file": "c.md"}
		]
	}`)

	all := idx.All()
	want := []string{"newest", "middle", "oldest"}
	if len(all) != len(want) {
		t.Fatalf("got %d entries, want %d", len(all), len(want))
	}
	for i, slug := range want {
		if all[i].Slug != slug {
			t.Errorf("position %d = %q, want %q", i, all[i].Slug, slug)
		}
	}
}

func TestIndex_DraftsExcluded(t *testing.T) {
	idx, _ := newTestIndex(t, `{
		"posts": [
			{"slug": "live", "title": "Live", "date": "2024-01-01", "file": "live.md"},
			{"slug": "wip", "title": "WIP", "date": "2024-02-01", "file": "wip.md", "draft": true}
		]
	}`)

	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}
	if _, ok := idx.BySlug("wip"); ok {
		t.Error("draft must not be reachable by slug")
	}
	if _, ok := idx.BySlug("live"); !ok {
		t.Error("published post should be reachable by slug")
	}
}

func TestIndex_WithTag(t *testing.T) {
	idx, _ := newTestIndex(t, `{
		"posts": [
			{"slug": "a", "title": "A", "date": "2024-01-01", "file": "a.md", "tags": ["go", "tui"]},
			{"slug": "b", "title": "B", "date": "2024-02-01", "file": "b.md", "tags": ["web"]},
			{"slug": "c", "title": "C", "date": "2024-03-01", "file": "c.md", "tags": ["GO"]}
		]
	}`)

	tagged := idx.WithTag("go")
	if len(tagged) != 2 {
		t.Fatalf("WithTag(go) = %d entries, want 2 (case-insensitive)", len(tagged))
	}
	if tagged[0].Slug != "c" {
		t.Errorf("tagged results should stay newest first, got %q first", tagged[0].Slug)
	}
}

func TestIndex_Body(t *testing.T) {
	idx, dir := newTestIndex(t, `{
		"posts": [{"slug": "hello", "title": "Hello", "date": "2024-01-01", "file": "hello.md"}]
	}`)

	if err := os.WriteFile(filepath.Join(dir, "hello.md"), []byte("# Hello\n\nworld\n"), 0644); err != nil {
		t.Fatalf("failed to write post body: %v", err)
	}

	e, _ := idx.BySlug("hello")
	body, err := idx.Body(e)
	if err != nil {
		t.Fatalf("Body failed: %v", err)
	}
	if body != "# Hello\n\nworld\n" {
		t.Errorf("body = %q", body)
	}
}

func TestIndex_BodyRejectsEscapingPaths(t *testing.T) {
	idx, _ := newTestIndex(t, `{
		"posts": [{"slug": "sneaky", "title": "Sneaky", "date": "2024-01-01", "file": "ok.md"}]
	}`)

	for _, file := range []string{"../outside.md", "/etc/passwd", "a/../../b.md"} {
		e := Entry{Slug: "sneaky", File: file}
		if _, err := idx.Body(e); err == nil {
			t.Errorf("file %q should be rejected", file)
		}
	}
}

func TestIndex_ReloadErrorKeepsPreviousContents(t *testing.T) {
	idx, dir := newTestIndex(t, `{
		"posts": [{"slug": "keep", "title": "Keep", "date": "2024-01-01", "file": "keep.md"}]
	}`)

	// Remove the registry: reload must fail but leave the index intact.
	if err := os.Remove(filepath.Join(dir, "posts.json")); err != nil {
		t.Fatalf("failed to remove registry: %v", err)
	}

	if _, err := idx.Reload(); err == nil {
		t.Fatal("Reload without registry should error")
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d after failed reload, want previous contents kept", idx.Len())
	}
}
