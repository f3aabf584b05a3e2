// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/theme"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - brand, navigation, and theme toggle hint
// =============================================================================

// Page identifies a top-level page of the site.
type Page int

const (
	PageHome Page = iota
	PagePosts
	PagePost
	PageProjects
	PageAbout
)

// String returns the display string for the page.
func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PagePosts, PagePost:
		return "Posts"
	case PageProjects:
		return "Projects"
	case PageAbout:
		return "About"
	default:
		return "Unknown"
	}
}

// NavPages are the pages shown in the navigation, in order.
var NavPages = []Page{PageHome, PagePosts, PageProjects, PageAbout}

// Header is the title bar: site brand on the left, navigation in the middle,
// and the theme toggle hint on the right.
type Header struct {
	Brand  string
	Active Page
	Width  int

	// toggleTarget is the theme a toggle would switch to. It is the opposite
	// of whatever is applied, and it only changes when the applied theme does
	// or, with no stored preference, when the system preference moves.
	toggleTarget theme.Theme

	styles *styles.Styles
}

// NewHeader creates a new Header component.
func NewHeader(s *styles.Styles, brand string) *Header {
	return &Header{
		Brand:        brand,
		Active:       PageHome,
		Width:        80,
		toggleTarget: theme.Default.Opposite(),
		styles:       s,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetActive updates the highlighted navigation entry.
func (h *Header) SetActive(p Page) {
	h.Active = p
}

// SetStyles swaps in the styles for a newly applied theme.
func (h *Header) SetStyles(s *styles.Styles) {
	h.styles = s
}

// SetToggleTarget updates the theme named by the toggle hint.
func (h *Header) SetToggleTarget(t theme.Theme) {
	h.toggleTarget = t
}

// ToggleTarget returns the theme the toggle hint currently advertises.
func (h *Header) ToggleTarget() theme.Theme {
	return h.toggleTarget
}

// toggleLabel names the target theme, never the current one: pressing t on a
// light screen should read "dark".
func (h *Header) toggleLabel() string {
	return "[t] " + h.toggleTarget.String()
}

// View renders the full header with navigation inline.
func (h *Header) View() string {
	s := h.styles

	brand := s.HeaderBrand.Render("< " + h.Brand + " >")

	var nav []string
	for _, p := range NavPages {
		if p == h.Active || (h.Active == PagePost && p == PagePosts) {
			nav = append(nav, s.NavActive.Render(p.String()))
		} else {
			nav = append(nav, s.NavItem.Render(p.String()))
		}
	}
	navLine := strings.Join(nav, "")

	toggle := s.ToggleHint.Render(h.toggleLabel())

	left := brand + " " + navLine
	gap := h.Width - lipgloss.Width(left) - lipgloss.Width(toggle) - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + toggle
	return s.Header.Width(h.Width).Render(line)
}

// ViewCompact renders a single-line header for narrow terminals: brand, the
// menu button, and the toggle hint. Navigation moves into the Menu panel.
func (h *Header) ViewCompact(menuOpen bool) string {
	s := h.styles

	brand := s.HeaderBrand.Render("<" + h.Brand + ">")

	menuLabel := "[m] menu"
	if menuOpen {
		menuLabel = "[m] close"
	}
	menu := s.MenuButton.Render(menuLabel)

	toggle := s.ToggleHint.Render(h.toggleLabel())

	left := brand + " " + menu
	gap := h.Width - lipgloss.Width(left) - lipgloss.Width(toggle) - 2
	if gap < 1 {
		gap = 1
	}

	return s.Header.Width(h.Width).Render(left + strings.Repeat(" ", gap) + toggle)
}
