// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/folio-tui/internal/theme"
)

// Styles holds all the styled components for the application, built from the
// palette of the active theme. When the theme toggles, the app constructs a
// fresh Styles with New and repaints.
type Styles struct {
	// Theme is the effective theme these styles were built for.
	Theme theme.Theme

	// Palette the styles were built from.
	Palette Palette

	// Terminal capabilities
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderBrand lipgloss.Style
	NavItem     lipgloss.Style
	NavActive   lipgloss.Style

	// ToggleHint renders the theme toggle control. Its label always names the
	// theme a toggle would switch to, not the one currently applied.
	ToggleHint lipgloss.Style

	// ==========================================================================
	// MENU STYLES (collapsed navigation on narrow terminals)
	// ==========================================================================

	MenuButton   lipgloss.Style
	MenuPanel    lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style

	// ==========================================================================
	// POST LIST STYLES
	// ==========================================================================

	PostList         lipgloss.Style
	PostItem         lipgloss.Style
	PostItemSelected lipgloss.Style
	PostTitle        lipgloss.Style
	PostDate         lipgloss.Style
	PostSummary      lipgloss.Style
	TagBadge         lipgloss.Style

	// ==========================================================================
	// POST VIEW STYLES
	// ==========================================================================

	PostView       lipgloss.Style
	PostViewHeader lipgloss.Style
	PostViewMeta   lipgloss.Style

	// ==========================================================================
	// PROJECT / LOGO STRIP STYLES
	// ==========================================================================

	ProjectCard  lipgloss.Style
	ProjectTitle lipgloss.Style
	ProjectDesc  lipgloss.Style
	LogoBadge    lipgloss.Style

	// ==========================================================================
	// CONSENT BANNER STYLES
	// ==========================================================================

	ConsentBox          lipgloss.Style
	ConsentTitle        lipgloss.Style
	ConsentText         lipgloss.Style
	ConsentButton       lipgloss.Style
	ConsentButtonActive lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// FEEDBACK STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style

	// ==========================================================================
	// REVEAL STAGE STYLES
	// ==========================================================================

	// Reveal holds one style per reveal stage; Reveal[len-1] is fully shown.
	Reveal [4]lipgloss.Style

	// Spinner for post reloads
	Spinner lipgloss.Style
}

// New creates styles for the given effective theme.
func New(t theme.Theme) *Styles {
	colorProfile := termenv.ColorProfile()

	s := &Styles{
		Theme:        t,
		Palette:      PaletteFor(t),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	s.initStyles()
	return s
}

// initStyles initializes all the lip gloss styles from the palette.
func (s *Styles) initStyles() {
	p := s.Palette

	// App container
	s.App = lipgloss.NewStyle()
	s.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	s.Header = lipgloss.NewStyle().
		Background(p.SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	s.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Brand)

	s.NavItem = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Padding(0, 1)

	s.NavActive = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true).
		Underline(true).
		Padding(0, 1)

	s.ToggleHint = lipgloss.NewStyle().
		Foreground(p.Accent).
		Padding(0, 1)

	// Collapsed menu
	s.MenuButton = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Background(p.SurfaceBright).
		Padding(0, 1).
		Bold(true)

	s.MenuPanel = lipgloss.NewStyle().
		Background(p.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 2)

	s.MenuItem = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Padding(0, 1)

	s.MenuSelected = lipgloss.NewStyle().
		Background(p.Accent).
		Foreground(p.TextInverse).
		Bold(true).
		Padding(0, 1)

	// Post list
	s.PostList = lipgloss.NewStyle().
		Padding(0, 1)

	s.PostItem = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Padding(0, 1)

	s.PostItemSelected = lipgloss.NewStyle().
		Background(p.SurfaceBright).
		Foreground(p.Accent).
		Bold(true).
		Padding(0, 1)

	s.PostTitle = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Bold(true)

	s.PostDate = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	s.PostSummary = lipgloss.NewStyle().
		Foreground(p.TextSecondary)

	s.TagBadge = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.SurfaceBright).
		Padding(0, 1)

	// Post view
	s.PostView = lipgloss.NewStyle().
		Padding(0, 1)

	s.PostViewHeader = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Overlay)

	s.PostViewMeta = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	// Projects and logo strip
	s.ProjectCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 2)

	s.ProjectTitle = lipgloss.NewStyle().
		Foreground(p.Brand).
		Bold(true)

	s.ProjectDesc = lipgloss.NewStyle().
		Foreground(p.TextSecondary)

	s.LogoBadge = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.AccentDeep).
		Padding(0, 1).
		MarginRight(1).
		Bold(true)

	// Consent banner
	s.ConsentBox = lipgloss.NewStyle().
		Background(p.SurfaceBright).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Warning).
		Padding(1, 2)

	s.ConsentTitle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	s.ConsentText = lipgloss.NewStyle().
		Foreground(p.TextPrimary)

	s.ConsentButton = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Background(p.Overlay).
		Padding(0, 2).
		MarginRight(1)

	s.ConsentButtonActive = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.Accent).
		Bold(true).
		Padding(0, 2).
		MarginRight(1)

	// Status bar
	s.StatusBar = lipgloss.NewStyle().
		Background(p.SurfaceDim).
		Foreground(p.TextSecondary).
		Padding(0, 1)

	s.ShortcutKey = lipgloss.NewStyle().
		Foreground(p.Brand).
		Bold(true)

	s.ShortcutDesc = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Feedback
	s.SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Danger).
		Bold(true)

	s.WarningStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	s.InfoStyle = lipgloss.NewStyle().
		Foreground(p.Brand).
		Bold(true)

	// Reveal stages
	for i, c := range p.RevealDim {
		s.Reveal[i] = lipgloss.NewStyle().Foreground(c)
	}

	s.Spinner = lipgloss.NewStyle().
		Foreground(p.Accent)
}

// SetSize updates the style dimensions for responsive layouts.
func (s *Styles) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (s *Styles) GetLayoutMode() LayoutMode {
	if s.Width < 60 {
		return LayoutNarrow
	}
	if s.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
