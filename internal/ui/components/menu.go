// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// MENU COMPONENT - collapsed navigation for narrow terminals
// =============================================================================

// Menu is the collapsible navigation panel shown when the header is in
// compact mode. On wide terminals the navigation lives in the header and the
// menu stays closed.
type Menu struct {
	open   bool
	cursor int
	styles *styles.Styles
}

// NewMenu creates a closed menu.
func NewMenu(s *styles.Styles) *Menu {
	return &Menu{styles: s}
}

// SetStyles swaps in the styles for a newly applied theme.
func (m *Menu) SetStyles(s *styles.Styles) {
	m.styles = s
}

// IsOpen reports whether the panel is showing.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Toggle opens or closes the panel. Opening resets the cursor to the top.
func (m *Menu) Toggle() {
	m.open = !m.open
	if m.open {
		m.cursor = 0
	}
}

// Close collapses the panel. Called on selection and whenever the terminal
// widens enough for the inline navigation to return.
func (m *Menu) Close() {
	m.open = false
}

// MoveUp moves the cursor up, stopping at the top.
func (m *Menu) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor down, stopping at the bottom.
func (m *Menu) MoveDown() {
	if m.cursor < len(NavPages)-1 {
		m.cursor++
	}
}

// Selected returns the page under the cursor.
func (m *Menu) Selected() Page {
	return NavPages[m.cursor]
}

// View renders the open panel; an empty string when closed.
func (m *Menu) View() string {
	if !m.open {
		return ""
	}

	s := m.styles

	var lines []string
	for i, p := range NavPages {
		if i == m.cursor {
			lines = append(lines, s.MenuSelected.Render("> "+p.String()))
		} else {
			lines = append(lines, s.MenuItem.Render("  "+p.String()))
		}
	}

	return s.MenuPanel.Render(strings.Join(lines, "\n"))
}
