// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/theme"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - shortcuts and current state at the bottom
// =============================================================================

// Shortcut is one key hint in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom bar: current page and theme on the left, key hints
// on the right. While a post is open it also shows the scroll percentage.
type StatusBar struct {
	Page          Page
	Theme         theme.Theme
	Width         int
	ScrollPercent float64 // -1 when not applicable
	Message       string  // transient notice, e.g. "posts reloaded"

	styles *styles.Styles
}

// NewStatusBar creates a status bar.
func NewStatusBar(s *styles.Styles) *StatusBar {
	return &StatusBar{
		Page:          PageHome,
		Theme:         theme.Default,
		Width:         80,
		ScrollPercent: -1,
		styles:        s,
	}
}

// SetStyles swaps in the styles for a newly applied theme.
func (b *StatusBar) SetStyles(s *styles.Styles) {
	b.styles = s
}

// shortcutsFor returns the hints for the current page.
func (b *StatusBar) shortcutsFor() []Shortcut {
	common := []Shortcut{
		{"t", "theme"},
		{"q", "quit"},
	}

	switch b.Page {
	case PagePosts:
		return append([]Shortcut{
			{"j/k", "move"},
			{"enter", "open"},
		}, common...)
	case PagePost:
		return append([]Shortcut{
			{"j/k", "scroll"},
			{"esc", "back"},
		}, common...)
	default:
		return append([]Shortcut{
			{"1-4", "pages"},
		}, common...)
	}
}

// View renders the bar.
func (b *StatusBar) View() string {
	s := b.styles

	left := b.Page.String() + " | " + b.Theme.String()
	if b.ScrollPercent >= 0 {
		left += fmt.Sprintf(" | %d%%", int(b.ScrollPercent*100))
	}
	if b.Message != "" {
		left += " | " + b.Message
	}

	var hints []string
	for _, sc := range b.shortcutsFor() {
		hints = append(hints, s.ShortcutKey.Render(sc.Key)+" "+s.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := b.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return s.StatusBar.Width(b.Width).Render(left + strings.Repeat(" ", gap) + right)
}
