// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/folio-tui/internal/posts"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// POST LIST COMPONENT - scrollable list of published posts
// =============================================================================

// PostList renders the registry entries newest-first with a movable cursor.
// Summaries and tags drop out on narrow layouts.
type PostList struct {
	entries []posts.Entry
	cursor  int
	offset  int

	width  int
	height int

	styles *styles.Styles
}

// NewPostList creates an empty post list.
func NewPostList(s *styles.Styles) *PostList {
	return &PostList{styles: s, width: 80, height: 20}
}

// SetStyles swaps in the styles for a newly applied theme.
func (l *PostList) SetStyles(s *styles.Styles) {
	l.styles = s
}

// SetSize updates the list dimensions.
func (l *PostList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampScroll()
}

// SetEntries replaces the list contents, keeping the cursor on the same slug
// when it survives a registry reload.
func (l *PostList) SetEntries(entries []posts.Entry) {
	var keep string
	if l.cursor < len(l.entries) {
		keep = l.entries[l.cursor].Slug
	}

	l.entries = entries
	l.cursor = 0
	for i, e := range entries {
		if e.Slug == keep {
			l.cursor = i
			break
		}
	}
	l.clampScroll()
}

// Len returns the number of listed posts.
func (l *PostList) Len() int {
	return len(l.entries)
}

// MoveUp moves the cursor up, stopping at the top.
func (l *PostList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clampScroll()
}

// MoveDown moves the cursor down, stopping at the bottom.
func (l *PostList) MoveDown() {
	if l.cursor < len(l.entries)-1 {
		l.cursor++
	}
	l.clampScroll()
}

// Selected returns the entry under the cursor.
func (l *PostList) Selected() (posts.Entry, bool) {
	if l.cursor >= len(l.entries) {
		return posts.Entry{}, false
	}
	return l.entries[l.cursor], true
}

// rowsPerEntry is how many terminal rows one entry occupies in the current
// layout.
func (l *PostList) rowsPerEntry() int {
	if l.styles.GetLayoutMode() == styles.LayoutNarrow {
		return 1
	}
	return 2
}

// clampScroll keeps the cursor inside the visible window.
func (l *PostList) clampScroll() {
	visible := l.height / l.rowsPerEntry()
	if visible < 1 {
		visible = 1
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+visible {
		l.offset = l.cursor - visible + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the visible window of the list.
func (l *PostList) View() string {
	s := l.styles

	if len(l.entries) == 0 {
		return s.PostList.Render(s.PostSummary.Render("No posts yet."))
	}

	narrow := s.GetLayoutMode() == styles.LayoutNarrow
	visible := l.height / l.rowsPerEntry()
	if visible < 1 {
		visible = 1
	}

	end := l.offset + visible
	if end > len(l.entries) {
		end = len(l.entries)
	}

	var lines []string
	for i := l.offset; i < end; i++ {
		e := l.entries[i]
		selected := i == l.cursor

		title := e.Title
		if narrow {
			title = util.TruncateWidth(title, l.width-16)
		}

		head := s.PostDate.Render(e.Date) + "  " + s.PostTitle.Render(title)
		if selected {
			head = s.PostItemSelected.Render(s.PostDate.Render(e.Date) + "  " + title)
		} else {
			head = s.PostItem.Render(head)
		}
		lines = append(lines, head)

		if narrow {
			continue
		}

		var meta []string
		if e.Summary != "" {
			meta = append(meta, s.PostSummary.Render(util.TruncateWidth(e.Summary, l.width-20)))
		}
		for _, tag := range e.Tags {
			meta = append(meta, s.TagBadge.Render(tag))
		}
		if len(meta) > 0 {
			lines = append(lines, "    "+strings.Join(meta, " "))
		} else {
			lines = append(lines, "")
		}
	}

	return s.PostList.Render(strings.Join(lines, "\n"))
}
