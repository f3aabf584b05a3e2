// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/folio-tui/internal/theme"
)

func TestStatusBar_ShowsPageAndTheme(t *testing.T) {
	b := NewStatusBar(testStyles())
	b.Width = 120
	b.Page = PagePosts
	b.Theme = theme.Dark

	got := b.View()
	if !strings.Contains(got, "Posts") {
		t.Error("status bar missing page name")
	}
	if !strings.Contains(got, "dark") {
		t.Error("status bar missing theme name")
	}
}

func TestStatusBar_ScrollPercentOnlyOnPost(t *testing.T) {
	b := NewStatusBar(testStyles())
	b.Width = 120
	b.Page = PagePost
	b.ScrollPercent = 0.5

	if got := b.View(); !strings.Contains(got, "50%") {
		t.Errorf("status bar should show scroll percent, got %q", got)
	}

	b.ScrollPercent = -1
	if got := b.View(); strings.Contains(got, "%") {
		t.Errorf("status bar with no scroll should not show a percent, got %q", got)
	}
}

func TestStatusBar_ShortcutsVaryByPage(t *testing.T) {
	b := NewStatusBar(testStyles())
	b.Width = 140

	b.Page = PagePosts
	if got := b.View(); !strings.Contains(got, "open") {
		t.Error("posts page should hint enter/open")
	}

	b.Page = PagePost
	if got := b.View(); !strings.Contains(got, "back") {
		t.Error("post page should hint esc/back")
	}
}
