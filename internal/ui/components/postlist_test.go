// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/folio-tui/internal/posts"
)

func sampleEntries() []posts.Entry {
	return []posts.Entry{
		{Slug: "newest", Title: "Newest Post", Date: "2024-03-01", Summary: "fresh", Tags: []string{"go"}},
		{Slug: "middle", Title: "Middle Post", Date: "2024-02-01"},
		{Slug: "oldest", Title: "Oldest Post", Date: "2024-01-01"},
	}
}

func TestPostList_CursorBounds(t *testing.T) {
	l := NewPostList(testStyles())
	l.SetEntries(sampleEntries())

	l.MoveUp() // at top
	if sel, _ := l.Selected(); sel.Slug != "newest" {
		t.Errorf("selection after MoveUp at top = %s, want newest", sel.Slug)
	}

	for i := 0; i < 10; i++ {
		l.MoveDown()
	}
	if sel, _ := l.Selected(); sel.Slug != "oldest" {
		t.Errorf("selection after MoveDown past bottom = %s, want oldest", sel.Slug)
	}
}

func TestPostList_SetEntriesKeepsCursorSlug(t *testing.T) {
	l := NewPostList(testStyles())
	l.SetEntries(sampleEntries())
	l.MoveDown() // middle

	// Reload with a new post prepended; the cursor should follow "middle".
	entries := append([]posts.Entry{
		{Slug: "brand-new", Title: "Brand New", Date: "2024-04-01"},
	}, sampleEntries()...)
	l.SetEntries(entries)

	sel, ok := l.Selected()
	if !ok || sel.Slug != "middle" {
		t.Errorf("selection after reload = %v, want middle", sel.Slug)
	}
}

func TestPostList_SetEntriesResetsWhenSlugGone(t *testing.T) {
	l := NewPostList(testStyles())
	l.SetEntries(sampleEntries())
	l.MoveDown()

	l.SetEntries([]posts.Entry{
		{Slug: "other", Title: "Other", Date: "2024-05-01"},
	})

	sel, ok := l.Selected()
	if !ok || sel.Slug != "other" {
		t.Errorf("selection after slug disappeared = %v, want other", sel.Slug)
	}
}

func TestPostList_SelectedEmpty(t *testing.T) {
	l := NewPostList(testStyles())
	if _, ok := l.Selected(); ok {
		t.Error("Selected on an empty list should report false")
	}
	if got := l.View(); !strings.Contains(got, "No posts") {
		t.Errorf("empty list view = %q, want a no-posts message", got)
	}
}

func TestPostList_ViewShowsTitlesAndDates(t *testing.T) {
	l := NewPostList(testStyles())
	l.SetSize(100, 20)
	l.SetEntries(sampleEntries())

	got := l.View()
	for _, want := range []string{"Newest Post", "2024-03-01", "fresh", "go"} {
		if !strings.Contains(got, want) {
			t.Errorf("list view missing %q", want)
		}
	}
}
