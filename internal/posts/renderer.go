// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package posts

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/folio-tui/internal/theme"
)

// =============================================================================
// MARKDOWN RENDERER
// =============================================================================

// Renderer renders post bodies for terminal display, styled to match the
// effective theme. Rebuilt on theme toggle and on resize.
type Renderer struct {
	renderer *glamour.TermRenderer
	theme    theme.Theme
	width    int
}

// NewRenderer builds a glamour renderer for the given theme and wrap width.
func NewRenderer(t theme.Theme, width int) (*Renderer, error) {
	if width <= 0 {
		width = 80
	}

	style := glamour.WithStandardStyle("light")
	if t == theme.Dark {
		style = glamour.WithStandardStyle("dark")
	}

	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return &Renderer{renderer: r, theme: t, width: width}, nil
}

// Render renders markdown to styled terminal output. If rendering fails the
// raw markdown comes back instead: a plain post beats no post.
func (r *Renderer) Render(markdown string) string {
	if r == nil || r.renderer == nil {
		return markdown
	}
	out, err := r.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// Theme returns the theme the renderer was built for.
func (r *Renderer) Theme() theme.Theme {
	return r.theme
}

// Width returns the wrap width the renderer was built for.
func (r *Renderer) Width() int {
	return r.width
}
