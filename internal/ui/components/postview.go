// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/folio-tui/internal/posts"
	"github.com/jeranaias/folio-tui/internal/theme"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// POST VIEW COMPONENT - a single rendered post in a scrollable viewport
// =============================================================================

// PostView shows one post's markdown rendered through Glamour. The rendered
// body is cached; it is rebuilt when the post, the width, or the theme
// changes, since the Glamour style set is picked per theme.
type PostView struct {
	entry posts.Entry
	raw   string

	viewport viewport.Model
	renderer *posts.Renderer

	width  int
	height int

	styles *styles.Styles
}

// NewPostView creates an empty post view.
func NewPostView(s *styles.Styles) *PostView {
	vp := viewport.New(80, 20)
	return &PostView{
		viewport: vp,
		width:    80,
		height:   20,
		styles:   s,
	}
}

// SetStyles swaps in the styles for a newly applied theme and re-renders the
// body with the matching Glamour style set.
func (v *PostView) SetStyles(s *styles.Styles) {
	v.styles = s
	v.renderer = nil
	v.rebuild()
}

// SetSize updates the dimensions and re-wraps the rendered body.
func (v *PostView) SetSize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = height - headerLines
	v.renderer = nil
	v.rebuild()
}

// headerLines is the rows the post header occupies above the viewport.
const headerLines = 3

// SetPost loads a post body into the view and scrolls to the top.
func (v *PostView) SetPost(entry posts.Entry, raw string) {
	v.entry = entry
	v.raw = raw
	v.rebuild()
	v.viewport.GotoTop()
}

// Entry returns the post currently shown.
func (v *PostView) Entry() posts.Entry {
	return v.entry
}

// rebuild re-renders the cached body.
func (v *PostView) rebuild() {
	if v.raw == "" {
		v.viewport.SetContent("")
		return
	}

	if v.renderer == nil || v.renderer.Theme() != v.currentTheme() || v.renderer.Width() != v.width {
		r, err := posts.NewRenderer(v.currentTheme(), v.width)
		if err == nil {
			v.renderer = r
		}
	}

	if v.renderer != nil {
		v.viewport.SetContent(v.renderer.Render(v.raw))
	} else {
		v.viewport.SetContent(v.raw)
	}
}

func (v *PostView) currentTheme() theme.Theme {
	return v.styles.Theme
}

// Update handles scrolling keys.
func (v PostView) Update(msg tea.Msg) (PostView, tea.Cmd) {
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			v.viewport.LineUp(1)
			return v, nil
		case "down", "j":
			v.viewport.LineDown(1)
			return v, nil
		case "pgup":
			v.viewport.ViewUp()
			return v, nil
		case "pgdown", "pgdn", " ":
			v.viewport.ViewDown()
			return v, nil
		case "home", "g":
			v.viewport.GotoTop()
			return v, nil
		case "end", "G":
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the post header and the scrollable body.
func (v *PostView) View() string {
	s := v.styles

	title := s.PostViewHeader.Width(v.width).Render(v.entry.Title)

	var meta []string
	meta = append(meta, v.entry.Date)
	for _, tag := range v.entry.Tags {
		meta = append(meta, s.TagBadge.Render(tag))
	}
	metaLine := s.PostViewMeta.Render(strings.Join(meta, " "))

	return s.PostView.Render(title + "\n" + metaLine + "\n" + v.viewport.View())
}

// ScrollPercent reports how far the body has been scrolled, for the status bar.
func (v *PostView) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}
