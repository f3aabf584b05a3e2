// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/theme"
)

// Palette holds every color for one theme. Colors are concrete, never
// adaptive: the effective theme is resolved by the theme package, and a
// stored dark preference must win even on a light terminal background.
type Palette struct {
	// =========================================================================
	// ACCENT COLORS
	// =========================================================================

	// Accent - Primary accent, nav selection, links, the toggle hint
	Accent lipgloss.Color

	// AccentDeep - Darker accent for filled backgrounds
	AccentDeep lipgloss.Color

	// Brand - Site title, logo badges
	Brand lipgloss.Color

	// =========================================================================
	// SEMANTIC COLORS
	// =========================================================================

	// Success - Confirmation lines (consent accepted, config saved)
	Success lipgloss.Color

	// Warning - Draft markers, caution states
	Warning lipgloss.Color

	// Danger - Errors, consent declined
	Danger lipgloss.Color

	// =========================================================================
	// SURFACE COLORS
	// =========================================================================

	// Surface - Main background
	Surface lipgloss.Color

	// SurfaceDim - Header and status bar background
	SurfaceDim lipgloss.Color

	// SurfaceBright - Selected rows, banner backgrounds
	SurfaceBright lipgloss.Color

	// Overlay - Borders and separators
	Overlay lipgloss.Color

	// =========================================================================
	// TEXT COLORS
	// =========================================================================

	// TextPrimary - Main body text
	TextPrimary lipgloss.Color

	// TextSecondary - Labels, post summaries
	TextSecondary lipgloss.Color

	// TextMuted - Dates, hints, shortcut descriptions
	TextMuted lipgloss.Color

	// TextInverse - Text on accent backgrounds
	TextInverse lipgloss.Color

	// =========================================================================
	// REVEAL STAGES
	// =========================================================================

	// RevealDim colors content that has not finished its reveal animation,
	// darkest (index 0) to fully revealed. The final stage equals TextPrimary.
	RevealDim [4]lipgloss.Color
}

// LightPalette is the palette for the light theme.
var LightPalette = Palette{
	Accent:        lipgloss.Color("#7C3AED"),
	AccentDeep:    lipgloss.Color("#5B21B6"),
	Brand:         lipgloss.Color("#0891B2"),
	Success:       lipgloss.Color("#059669"),
	Warning:       lipgloss.Color("#D97706"),
	Danger:        lipgloss.Color("#E11D48"),
	Surface:       lipgloss.Color("#FFFFFF"),
	SurfaceDim:    lipgloss.Color("#F5F5F5"),
	SurfaceBright: lipgloss.Color("#FAFAFA"),
	Overlay:       lipgloss.Color("#E5E5E5"),
	TextPrimary:   lipgloss.Color("#1F2937"),
	TextSecondary: lipgloss.Color("#6B7280"),
	TextMuted:     lipgloss.Color("#9CA3AF"),
	TextInverse:   lipgloss.Color("#FFFFFF"),
	RevealDim: [4]lipgloss.Color{
		lipgloss.Color("#E5E7EB"),
		lipgloss.Color("#9CA3AF"),
		lipgloss.Color("#6B7280"),
		lipgloss.Color("#1F2937"),
	},
}

// DarkPalette is the palette for the dark theme.
var DarkPalette = Palette{
	Accent:        lipgloss.Color("#A78BFA"),
	AccentDeep:    lipgloss.Color("#4C1D95"),
	Brand:         lipgloss.Color("#22D3EE"),
	Success:       lipgloss.Color("#34D399"),
	Warning:       lipgloss.Color("#FBBF24"),
	Danger:        lipgloss.Color("#FB7185"),
	Surface:       lipgloss.Color("#1E1E2E"),
	SurfaceDim:    lipgloss.Color("#181825"),
	SurfaceBright: lipgloss.Color("#313244"),
	Overlay:       lipgloss.Color("#45475A"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	TextSecondary: lipgloss.Color("#A6ADC8"),
	TextMuted:     lipgloss.Color("#6C7086"),
	TextInverse:   lipgloss.Color("#1E1E2E"),
	RevealDim: [4]lipgloss.Color{
		lipgloss.Color("#313244"),
		lipgloss.Color("#45475A"),
		lipgloss.Color("#6C7086"),
		lipgloss.Color("#CDD6F4"),
	},
}

// PaletteFor returns the palette for a theme. Invalid themes get the light
// palette, matching the resolver's default.
func PaletteFor(t theme.Theme) Palette {
	if t == theme.Dark {
		return DarkPalette
	}
	return LightPalette
}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet contains text/shape indicators for status states.
// These symbols provide visual cues beyond color for colorblind accessibility.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
}

// StatusIndicators provides accessible shape indicators alongside colors.
// ASCII-only for maximum terminal compatibility.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
}
