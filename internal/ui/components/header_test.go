// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/folio-tui/internal/theme"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

func testStyles() *styles.Styles {
	return styles.New(theme.Light)
}

func TestHeader_ToggleHintNamesTargetTheme(t *testing.T) {
	h := NewHeader(testStyles(), "folio")

	// Light applied: the hint must read "dark", the theme a toggle switches to.
	h.SetToggleTarget(theme.Dark)
	if got := h.View(); !strings.Contains(got, "dark") {
		t.Errorf("header with dark target should mention dark, got %q", got)
	}

	h.SetToggleTarget(theme.Light)
	if got := h.View(); !strings.Contains(got, "light") {
		t.Errorf("header with light target should mention light, got %q", got)
	}
}

func TestHeader_DefaultTargetOpposesDefaultTheme(t *testing.T) {
	h := NewHeader(testStyles(), "folio")
	if h.ToggleTarget() != theme.Default.Opposite() {
		t.Errorf("initial toggle target = %s, want %s", h.ToggleTarget(), theme.Default.Opposite())
	}
}

func TestHeader_ViewShowsNavAndBrand(t *testing.T) {
	h := NewHeader(testStyles(), "folio")
	h.SetWidth(100)
	h.SetActive(PagePosts)

	got := h.View()
	for _, want := range []string{"folio", "Home", "Posts", "Projects", "About"} {
		if !strings.Contains(got, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestHeader_ViewCompactShowsMenuButton(t *testing.T) {
	h := NewHeader(testStyles(), "folio")
	h.SetWidth(50)

	if got := h.ViewCompact(false); !strings.Contains(got, "menu") {
		t.Errorf("compact header should show the menu button, got %q", got)
	}
	if got := h.ViewCompact(true); !strings.Contains(got, "close") {
		t.Errorf("compact header with open menu should show close, got %q", got)
	}
}

func TestPageString(t *testing.T) {
	tests := []struct {
		page Page
		want string
	}{
		{PageHome, "Home"},
		{PagePosts, "Posts"},
		{PagePost, "Posts"}, // a single post still belongs to the Posts section
		{PageProjects, "Projects"},
		{PageAbout, "About"},
		{Page(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.page.String(); got != tt.want {
			t.Errorf("Page(%d).String() = %q, want %q", tt.page, got, tt.want)
		}
	}
}
