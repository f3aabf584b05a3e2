// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package posts

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRegistry(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "posts.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write registry: %v", err)
	}
	return path
}

// =============================================================================
// ENTRY VALIDATION
// =============================================================================

func TestEntryValidate(t *testing.T) {
	valid := Entry{
		Slug:  "first-post",
		Title: "First Post",
		Date:  "2024-03-01",
		File:  "first-post.md",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Entry)
	}{
		{"empty slug", func(e *Entry) { e.Slug = "" }},
		{"uppercase slug", func(e *Entry) { e.Slug = "First-Post" }},
		{"slug with spaces", func(e *Entry) { e.Slug = "first post" }},
		{"missing title", func(e *Entry) { e.Title = "" }},
		{"missing file", func(e *Entry) { e.File = "" }},
		{"bad date", func(e *Entry) { e.Date = "03/01/2024" }},
		{"empty date", func(e *Entry) { e.Date = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			if err := e.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

// =============================================================================
// REGISTRY LOADING
// =============================================================================

func TestLoadRegistry_Basic(t *testing.T) {
	path := writeRegistry(t, t.TempDir(), `{
		"posts": [
			{"slug": "hello", "title": "Hello", "date": "2024-01-15", "file": "hello.md"},
			{"slug": "go-notes", "title": "Go Notes", "date": "2024-02-20", "file": "go-notes.md", "tags": ["go"]}
		]
	}`)

	entries, skipped, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped %d entries, want 0", len(skipped))
	}
	if len(entries) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(entries))
	}
}

func TestLoadRegistry_SkipsMalformedEntries(t *testing.T) {
	path := writeRegistry(t, t.TempDir(), `{
		"posts": [
			{"slug": "good", "title": "Good", "date": "2024-01-15", "file": "good.md"},
			{"slug": "BAD SLUG", "title": "Bad", "date": "2024-01-16", "file": "bad.md"},
			{"slug": "no-date", "title": "No Date", "date": "", "file": "no-date.md"}
		]
	}`)

	entries, skipped, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Slug != "good" {
		t.Errorf("entries = %+v, want only the good one", entries)
	}
	if len(skipped) != 2 {
		t.Errorf("skipped %d, want 2", len(skipped))
	}
}

func TestLoadRegistry_DuplicateSlugDropped(t *testing.T) {
	path := writeRegistry(t, t.TempDir(), `{
		"posts": [
			{"slug": "dup", "title": "First", "date": "2024-01-15", "file": "a.md"},
			{"slug": "dup", "title": "Second", "date": "2024-01-16", "file": "b.md"}
		]
	}`)

	entries, skipped, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "First" {
		t.Errorf("entries = %+v, want the first occurrence kept", entries)
	}
	if len(skipped) != 1 {
		t.Errorf("skipped %d, want 1", len(skipped))
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, _, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("missing registry should error")
	}
}

func TestLoadRegistry_InvalidJSON(t *testing.T) {
	path := writeRegistry(t, t.TempDir(), `{"posts": [`)
	if _, _, err := LoadRegistry(path); err == nil {
		t.Error("invalid JSON should error")
	}
}
