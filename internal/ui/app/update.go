// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"os/user"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/ui/components"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// Update is the root message handler.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ThemeAppliedMsg:
		m.applyTheme(msg.Theme)
		return m, nil

	case ToggleTargetMsg:
		m.header.SetToggleTarget(msg.Target)
		return m, nil

	case PostsReloadedMsg:
		return m.handlePostsReloaded(msg)

	case revealTickMsg:
		m.revealTick++
		if m.reveal.Done(homeSections, m.revealTick) {
			return m, nil
		}
		return m, m.revealCmd()

	case clearStatusMsg:
		m.status.Message = ""
		return m, nil

	case components.ConsentAcceptedMsg:
		return m.handleConsent(true)

	case components.ConsentDeclinedMsg:
		return m.handleConsent(false)
	}

	return m, nil
}

// handleResize adjusts every component to the new terminal size.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.styles.SetSize(msg.Width, msg.Height)

	contentHeight := m.height - chromeLines
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.header.SetWidth(msg.Width)
	m.postList.SetSize(msg.Width, contentHeight)
	m.postView.SetSize(msg.Width, contentHeight)
	m.consent.SetWidth(msg.Width)
	m.status.Width = msg.Width

	// Inline navigation returns on wide layouts; the panel must not linger.
	if m.styles.GetLayoutMode() != styles.LayoutNarrow {
		m.menu.Close()
	}

	return m, nil
}

// chromeLines is the rows taken by the header and status bar.
const chromeLines = 4

// handleKey routes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The consent banner owns the keyboard until a decision is made,
	// except for quit and the theme toggle, which always work.
	if m.consentPending {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleTheme):
			return m.toggleTheme()
		}
		return m, m.consent.Update(msg)
	}

	// Open menu swallows navigation keys.
	if m.menu.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Back):
			m.menu.Close()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.menu.MoveUp()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.menu.MoveDown()
			return m, nil
		case key.Matches(msg, m.keys.Select):
			page := m.menu.Selected()
			m.menu.Close()
			return m.gotoPage(page)
		case key.Matches(msg, m.keys.ToggleTheme):
			return m.toggleTheme()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleTheme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.Menu):
		if m.styles.GetLayoutMode() == styles.LayoutNarrow {
			m.menu.Toggle()
		}
		return m, nil

	case key.Matches(msg, m.keys.GoHome):
		return m.gotoPage(components.PageHome)
	case key.Matches(msg, m.keys.GoPosts):
		return m.gotoPage(components.PagePosts)
	case key.Matches(msg, m.keys.GoProjects):
		return m.gotoPage(components.PageProjects)
	case key.Matches(msg, m.keys.GoAbout):
		return m.gotoPage(components.PageAbout)

	case key.Matches(msg, m.keys.Back):
		if m.page == components.PagePost {
			return m.gotoPage(components.PagePosts)
		}
		return m, nil
	}

	return m.handlePageKey(msg)
}

// handlePageKey routes keys that depend on the current page.
func (m *Model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.page {
	case components.PagePosts:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.postList.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.postList.MoveDown()
		case key.Matches(msg, m.keys.Select):
			return m.openSelectedPost()
		}
		return m, nil

	case components.PagePost:
		var cmd tea.Cmd
		*m.postView, cmd = m.postView.Update(msg)
		m.status.ScrollPercent = m.postView.ScrollPercent()
		return m, cmd
	}

	return m, nil
}

// toggleTheme flips the theme through the controller and repaints. The
// controller persists the new preference; persistence failures stay silent.
func (m *Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.ctrl.Toggle()
	applied := m.ctrl.Applied()
	m.applyTheme(applied)
	m.recorder.ThemeToggle(applied.String())
	return m, nil
}

// gotoPage switches pages and records the view.
func (m *Model) gotoPage(page components.Page) (tea.Model, tea.Cmd) {
	if page == components.PagePosts {
		m.postList.SetEntries(m.index.All())
	}
	m.page = page
	m.header.SetActive(page)
	m.status.Page = page
	m.status.ScrollPercent = -1
	m.recorder.PageView(page.String())
	return m, nil
}

// openSelectedPost loads the highlighted post into the post view.
func (m *Model) openSelectedPost() (tea.Model, tea.Cmd) {
	entry, ok := m.postList.Selected()
	if !ok {
		return m, nil
	}

	body, err := m.index.Body(entry)
	if err != nil {
		return m.setStatus("could not read " + entry.Slug)
	}

	m.postView.SetPost(entry, body)
	m.page = components.PagePost
	m.header.SetActive(components.PagePost)
	m.status.Page = components.PagePost
	m.status.ScrollPercent = 0
	m.recorder.PostOpen(entry.Slug)
	return m, nil
}

// handlePostsReloaded refreshes the list after a registry change on disk.
func (m *Model) handlePostsReloaded(msg PostsReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.setStatus("posts reload failed")
	}

	m.postList.SetEntries(m.index.All())

	// A reload can remove the post being read.
	if m.page == components.PagePost {
		if _, ok := m.index.BySlug(m.postView.Entry().Slug); !ok {
			m.page = components.PagePosts
			m.header.SetActive(components.PagePosts)
			m.status.Page = components.PagePosts
			m.status.ScrollPercent = -1
		}
	}

	return m.setStatus("posts reloaded")
}

// handleConsent records the decision, saves it, and unblocks the UI.
func (m *Model) handleConsent(accepted bool) (tea.Model, tea.Cmd) {
	m.consentPending = false

	m.cfg.Consent.Accepted = accepted
	m.cfg.Consent.Declined = !accepted
	m.cfg.Consent.DecidedAt = time.Now()
	if u, err := user.Current(); err == nil {
		m.cfg.Consent.DecidedBy = u.Username
	}

	if path, err := config.ConfigPathTOML(); err == nil {
		_ = config.SaveTOML(m.cfg, path)
	}

	if accepted {
		m.recorder.SetEnabled(true)
		return m.setStatus("analytics on")
	}
	m.recorder.SetEnabled(false)
	return m.setStatus("analytics off")
}

// setStatus shows a transient status bar notice.
func (m *Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.status.Message = text
	return m, tea.Tick(statusMessageTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
