// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math/rand"
	"strings"

	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// LOGO STRIP COMPONENT - shuffled technology badges on the home page
// =============================================================================

// DefaultLogos are the badges shown when the site config does not supply its
// own list.
var DefaultLogos = []string{
	"Go", "Rust", "Python", "TypeScript", "Postgres",
	"SQLite", "Docker", "Linux", "gRPC", "Terraform",
}

// LogoStrip renders a row of technology badges in a random order. The order
// is shuffled once per program start so the strip looks alive without
// flickering on every repaint.
type LogoStrip struct {
	logos  []string
	order  []int
	styles *styles.Styles
}

// NewLogoStrip creates a strip over the given badges, shuffled with rng.
// A nil rng keeps the original order, which the tests rely on.
func NewLogoStrip(s *styles.Styles, logos []string, rng *rand.Rand) *LogoStrip {
	if len(logos) == 0 {
		logos = DefaultLogos
	}

	order := make([]int, len(logos))
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	return &LogoStrip{logos: logos, order: order, styles: s}
}

// SetStyles swaps in the styles for a newly applied theme.
func (l *LogoStrip) SetStyles(s *styles.Styles) {
	l.styles = s
}

// Reshuffle randomizes the badge order again.
func (l *LogoStrip) Reshuffle(rng *rand.Rand) {
	rng.Shuffle(len(l.order), func(i, j int) {
		l.order[i], l.order[j] = l.order[j], l.order[i]
	})
}

// Ordered returns the badges in display order.
func (l *LogoStrip) Ordered() []string {
	out := make([]string, len(l.order))
	for i, idx := range l.order {
		out[i] = l.logos[idx]
	}
	return out
}

// View renders the strip, wrapping to the given width.
func (l *LogoStrip) View(width int) string {
	s := l.styles

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, logo := range l.Ordered() {
		badge := s.LogoBadge.Render(logo)
		w := len(logo) + 3 // padding plus margin
		if lineWidth > 0 && lineWidth+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		line.WriteString(badge)
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}
