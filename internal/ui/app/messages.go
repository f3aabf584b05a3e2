// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/folio-tui/internal/theme"
)

// =============================================================================
// BUBBLE TEA MESSAGES
// =============================================================================

// ThemeAppliedMsg signals that the effective theme changed.
type ThemeAppliedMsg struct {
	Theme theme.Theme
}

// ToggleTargetMsg signals that the toggle hint should advertise a new target
// theme. A system scheme change with no stored preference moves only this
// hint; the applied theme stays put.
type ToggleTargetMsg struct {
	Target theme.Theme
}

// PostsReloadedMsg signals that the registry watcher reloaded the index.
type PostsReloadedMsg struct {
	Skipped int
	Err     error
}

// revealTickMsg advances the staged reveal animation.
type revealTickMsg struct{}

// clearStatusMsg clears the transient status bar message.
type clearStatusMsg struct{}

// statusMessageTTL is how long transient notices stay in the status bar.
const statusMessageTTL = 3 * time.Second

// =============================================================================
// THEME STATE (the controller's Applier)
// =============================================================================

// ThemeState is the theme.Applier handed to the controller. It records the
// applied theme and toggle target so the model can be built in the right
// palette before the first frame, and forwards later changes to the running
// program as messages.
type ThemeState struct {
	mu      sync.Mutex
	applied theme.Theme
	target  theme.Theme
	notify  func(tea.Msg)
}

// NewThemeState creates a ThemeState primed with the default theme.
func NewThemeState() *ThemeState {
	return &ThemeState{
		applied: theme.Default,
		target:  theme.Default.Opposite(),
	}
}

// SetNotify wires the running program's Send. Until it is set, changes are
// only recorded, which is exactly right during pre-frame initialization.
func (ts *ThemeState) SetNotify(fn func(tea.Msg)) {
	ts.mu.Lock()
	ts.notify = fn
	ts.mu.Unlock()
}

// ApplyTheme records the applied theme and notifies the program.
func (ts *ThemeState) ApplyTheme(t theme.Theme) {
	ts.mu.Lock()
	ts.applied = t
	fn := ts.notify
	ts.mu.Unlock()

	if fn != nil {
		fn(ThemeAppliedMsg{Theme: t})
	}
}

// SetToggleTarget records the toggle target and notifies the program.
func (ts *ThemeState) SetToggleTarget(t theme.Theme) {
	ts.mu.Lock()
	ts.target = t
	fn := ts.notify
	ts.mu.Unlock()

	if fn != nil {
		fn(ToggleTargetMsg{Target: t})
	}
}

// Applied returns the currently applied theme.
func (ts *ThemeState) Applied() theme.Theme {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.applied
}

// Target returns the theme the toggle hint should advertise.
func (ts *ThemeState) Target() theme.Theme {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.target
}
