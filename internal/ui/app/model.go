// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/posts"
	"github.com/jeranaias/folio-tui/internal/telemetry"
	"github.com/jeranaias/folio-tui/internal/theme"
	"github.com/jeranaias/folio-tui/internal/ui/components"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// ROOT MODEL
// =============================================================================

// Options bundle the dependencies for the root model.
type Options struct {
	Config     *config.Config
	Controller *theme.Controller
	State      *ThemeState
	Index      *posts.Index
	Recorder   *telemetry.Recorder
	Version    string
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	cfg      *config.Config
	ctrl     *theme.Controller
	state    *ThemeState
	index    *posts.Index
	recorder *telemetry.Recorder
	version  string

	// Styling, rebuilt on every theme change
	styles *styles.Styles

	// Dimensions
	width  int
	height int

	// Navigation
	page components.Page

	// Components
	header   *components.Header
	menu     *components.Menu
	postList *components.PostList
	postView *components.PostView
	logos    *components.LogoStrip
	consent  *components.ConsentBanner
	status   *components.StatusBar

	// Key bindings
	keys KeyMap

	// Consent banner visibility
	consentPending bool

	// Staged reveal animation
	reveal     styles.RevealConfig
	revealTick int
	revealOn   bool

	quitting bool
}

// homeSections is how many home page blocks take part in the reveal.
const homeSections = 3

// New creates the root model. The controller must already have applied the
// initial theme (via Init) so the first frame renders in the right palette.
func New(opts Options) *Model {
	applied := opts.State.Applied()
	s := styles.New(applied)

	m := &Model{
		cfg:      opts.Config,
		ctrl:     opts.Controller,
		state:    opts.State,
		index:    opts.Index,
		recorder: opts.Recorder,
		version:  opts.Version,
		styles:   s,
		width:    80,
		height:   24,
		page:     components.PageHome,
		header:   components.NewHeader(s, opts.Config.Site.Title),
		menu:     components.NewMenu(s),
		postList: components.NewPostList(s),
		postView: components.NewPostView(s),
		logos:    components.NewLogoStrip(s, nil, rand.New(rand.NewSource(time.Now().UnixNano()))),
		consent:  components.NewConsentBanner(s),
		status:   components.NewStatusBar(s),
		keys:     DefaultKeyMap(),
		reveal:   styles.DefaultReveal,
		revealOn: opts.Config.UI.Reveal,
	}

	m.header.SetToggleTarget(opts.State.Target())
	m.status.Theme = applied
	m.consentPending = opts.Config.Analytics.Enabled && !opts.Config.Consent.Decided()
	m.postList.SetEntries(opts.Index.All())

	return m
}

// Init starts the reveal animation when it is enabled.
func (m *Model) Init() tea.Cmd {
	if m.revealOn {
		return m.revealCmd()
	}
	return nil
}

// revealCmd schedules the next reveal tick.
func (m *Model) revealCmd() tea.Cmd {
	return tea.Tick(m.reveal.Interval, func(time.Time) tea.Msg {
		return revealTickMsg{}
	})
}

// applyTheme rebuilds the styles for t and pushes them into every component.
func (m *Model) applyTheme(t theme.Theme) {
	if m.styles != nil && m.styles.Theme == t {
		return
	}

	s := styles.New(t)
	s.SetSize(m.width, m.height)
	m.styles = s

	m.header.SetStyles(s)
	m.menu.SetStyles(s)
	m.postList.SetStyles(s)
	m.postView.SetStyles(s)
	m.logos.SetStyles(s)
	m.consent.SetStyles(s)
	m.status.SetStyles(s)

	m.status.Theme = t
	m.header.SetToggleTarget(t.Opposite())
}

// Page returns the current page, for tests and the status bar.
func (m *Model) Page() components.Page {
	return m.page
}

// Styles returns the active styles.
func (m *Model) Styles() *styles.Styles {
	return m.styles
}
