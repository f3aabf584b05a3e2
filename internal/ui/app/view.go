// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/ui/components"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// Project is one entry on the projects page.
type Project struct {
	Name        string
	Description string
	Tags        []string
}

// DefaultProjects populate the projects page until the site owner replaces
// them.
var DefaultProjects = []Project{
	{
		Name:        "folio",
		Description: "This site: a portfolio and blog that lives in the terminal.",
		Tags:        []string{"go", "bubbletea"},
	},
	{
		Name:        "rigrun",
		Description: "Local-first LLM router with cost-aware cloud fallback.",
		Tags:        []string{"go", "llm"},
	},
	{
		Name:        "mosaic",
		Description: "Terminal RSS reader with adaptive layouts.",
		Tags:        []string{"go", "rss"},
	},
}

// View renders the whole screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	narrow := m.styles.GetLayoutMode() == styles.LayoutNarrow

	var header string
	if narrow {
		header = m.header.ViewCompact(m.menu.IsOpen())
	} else {
		header = m.header.View()
	}

	var body string
	switch {
	case m.menu.IsOpen():
		body = m.menu.View()
	case m.consentPending:
		body = m.consent.View() + "\n" + m.pageView()
	default:
		body = m.pageView()
	}

	// Pad the body so the status bar sits at the bottom.
	headerLines := lipgloss.Height(header)
	statusLines := 1
	bodyHeight := m.height - headerLines - statusLines
	if bodyHeight > 0 {
		body = lipgloss.NewStyle().Height(bodyHeight).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.status.View())
}

// pageView renders the current page content.
func (m *Model) pageView() string {
	switch m.page {
	case components.PagePosts:
		return m.postList.View()
	case components.PagePost:
		return m.postView.View()
	case components.PageProjects:
		return m.projectsView()
	case components.PageAbout:
		return m.aboutView()
	default:
		return m.homeView()
	}
}

// revealStyle returns the style for home section i at the current tick. With
// the animation off, everything renders fully revealed.
func (m *Model) revealStyle(i int) lipgloss.Style {
	if !m.revealOn {
		return m.styles.Reveal[len(m.styles.Reveal)-1]
	}
	return m.styles.Reveal[m.reveal.StageAt(i, m.revealTick)]
}

// homeView renders the landing page: hero, logo strip, recent posts. The
// three sections fade in staggered when the reveal animation is on.
func (m *Model) homeView() string {
	s := m.styles

	hero := s.HeaderBrand.Render(m.cfg.Site.Title) + "\n" +
		m.revealStyle(0).Render(m.cfg.Site.Description)

	logoTitle := s.PostTitle.Render("Stack")
	logosBlock := logoTitle + "\n" + m.revealStyle(1).Render(m.logos.View(m.width-4))

	recentTitle := s.PostTitle.Render("Recent posts")
	var recent []string
	for i, e := range m.index.All() {
		if i >= 3 {
			break
		}
		recent = append(recent, s.PostDate.Render(e.Date)+"  "+e.Title)
	}
	if len(recent) == 0 {
		recent = append(recent, s.PostSummary.Render("Nothing published yet."))
	}
	recentBlock := recentTitle + "\n" + m.revealStyle(2).Render(strings.Join(recent, "\n"))

	return s.Container.Render(hero + "\n\n" + logosBlock + "\n\n" + recentBlock)
}

// projectsView renders the project cards.
func (m *Model) projectsView() string {
	s := m.styles

	var cards []string
	for _, p := range DefaultProjects {
		var tags []string
		for _, t := range p.Tags {
			tags = append(tags, s.TagBadge.Render(t))
		}
		card := s.ProjectTitle.Render(p.Name) + "\n" +
			s.ProjectDesc.Render(p.Description) + "\n" +
			strings.Join(tags, " ")
		cards = append(cards, s.ProjectCard.Width(m.cardWidth()).Render(card))
	}

	return s.Container.Render(strings.Join(cards, "\n"))
}

// cardWidth sizes project cards to the layout.
func (m *Model) cardWidth() int {
	w := m.width - 6
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

// aboutView renders the about page.
func (m *Model) aboutView() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.PostTitle.Render("About") + "\n\n")
	if m.cfg.Site.Author != "" {
		b.WriteString(s.ConsentText.Render(m.cfg.Site.Author) + "\n")
	}
	if m.cfg.Site.Description != "" {
		b.WriteString(s.PostSummary.Render(m.cfg.Site.Description) + "\n")
	}
	if m.cfg.Site.BaseURL != "" {
		b.WriteString(s.InfoStyle.Render(m.cfg.Site.BaseURL) + "\n")
	}
	b.WriteString("\n" + s.ShortcutDesc.Render("folio "+m.version))

	return s.Container.Render(b.String())
}
