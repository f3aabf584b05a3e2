// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// CONSENT BANNER COMPONENT - analytics opt-in prompt
// =============================================================================

// consentText is the prompt body. Analytics stay off until the user accepts,
// and a decline is recorded so the banner never comes back.
const consentText = "folio can record anonymous usage events (pages viewed, " +
	"posts opened) in a local database to show reading stats. Nothing leaves " +
	"this machine. Accept to enable local analytics, or decline to keep them " +
	"off."

// ConsentAcceptedMsg signals that the user accepted analytics.
type ConsentAcceptedMsg struct{}

// ConsentDeclinedMsg signals that the user declined analytics.
type ConsentDeclinedMsg struct{}

// ConsentBanner is the analytics consent prompt. It renders as a boxed
// overlay above the page content until the user picks accept or decline.
type ConsentBanner struct {
	width int

	// cursor: 0 = accept, 1 = decline
	cursor int

	styles *styles.Styles
}

// NewConsentBanner creates a banner with accept preselected.
func NewConsentBanner(s *styles.Styles) *ConsentBanner {
	return &ConsentBanner{width: 80, styles: s}
}

// SetStyles swaps in the styles for a newly applied theme.
func (c *ConsentBanner) SetStyles(s *styles.Styles) {
	c.styles = s
}

// SetWidth updates the banner width.
func (c *ConsentBanner) SetWidth(width int) {
	c.width = width
}

// Update handles banner keys. It returns a ConsentAcceptedMsg or
// ConsentDeclinedMsg command once the user confirms a choice.
func (c *ConsentBanner) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "left", "h", "tab", "right", "l":
		c.cursor = 1 - c.cursor
	case "a", "y":
		return func() tea.Msg { return ConsentAcceptedMsg{} }
	case "d", "n":
		return func() tea.Msg { return ConsentDeclinedMsg{} }
	case "enter":
		if c.cursor == 0 {
			return func() tea.Msg { return ConsentAcceptedMsg{} }
		}
		return func() tea.Msg { return ConsentDeclinedMsg{} }
	}
	return nil
}

// View renders the banner box.
func (c *ConsentBanner) View() string {
	s := c.styles

	inner := c.width - 8
	if inner > 70 {
		inner = 70
	}
	if inner < 24 {
		inner = 24
	}

	title := s.ConsentTitle.Render("Local analytics")
	body := s.ConsentText.Width(inner).Render(consentText)

	accept := s.ConsentButton.Render("Accept")
	decline := s.ConsentButton.Render("Decline")
	if c.cursor == 0 {
		accept = s.ConsentButtonActive.Render("Accept")
	} else {
		decline = s.ConsentButtonActive.Render("Decline")
	}
	buttons := accept + decline

	hint := s.ShortcutDesc.Render("a/y accept  d/n decline  tab switch  enter confirm")

	content := strings.Join([]string{title, "", body, "", buttons, hint}, "\n")
	box := s.ConsentBox.Render(content)

	return lipgloss.PlaceHorizontal(c.width, lipgloss.Center, box)
}
