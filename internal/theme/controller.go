// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import "sync"

// =============================================================================
// PRESENTATION BOUNDARY
// =============================================================================

// Applier is the presentation side of theme application: the style palette
// the renderer consumes and the visible toggle control. The controller owns
// the resolution rules; the Applier only reflects them.
type Applier interface {
	// ApplyTheme sets the effective theme marker the styles are built from.
	// It is called for both values unconditionally.
	ApplyTheme(t Theme)

	// SetToggleTarget updates the toggle control so it advertises the theme
	// a press would switch to, never the one currently applied.
	SetToggleTarget(t Theme)
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns the applied theme and is the single writer of the
// preference store. All state lives behind this one instance rather than in
// package globals.
//
// The mutex matters: Toggle runs on the UI event loop while OnSystemChange
// arrives from the scheme watcher goroutine, and the explicit-preference-wins
// rule must hold under any interleaving of the two.
type Controller struct {
	mu       sync.Mutex
	store    PreferenceStore
	detector SchemeDetector
	applier  Applier
	applied  Theme
}

// NewController wires the store, detector, and presentation boundary
// together. Nothing is resolved or applied until Init.
func NewController(store PreferenceStore, detector SchemeDetector, applier Applier) *Controller {
	return &Controller{
		store:    store,
		detector: detector,
		applier:  applier,
	}
}

// Init resolves the initial theme and applies it. Call it synchronously
// before the first frame renders; applying any later paints a frame in the
// wrong palette first.
func (c *Controller) Init() Theme {
	t := c.ResolveInitial()
	c.Apply(t)
	return t
}

// ResolveInitial computes the startup theme:
//
//  1. A stored preference that parses as a recognized theme is returned
//     unchanged, regardless of the system scheme.
//  2. Otherwise the system scheme decides: dark background means Dark.
//  3. If detection is unavailable too, the default (light) applies.
//
// A store that is missing, unreadable, or holds garbage falls through to
// step 2; resolution itself can never fail.
func (c *Controller) ResolveInitial() Theme {
	if stored, ok := c.store.Load(); ok {
		return stored
	}
	if dark, ok := c.detector.IsDark(); ok {
		return FromDark(dark)
	}
	return Default
}

// Apply records t as the applied theme and pushes it to the presentation
// boundary. The toggle control is pointed at the opposite theme.
func (c *Controller) Apply(t Theme) {
	if !t.Valid() {
		t = Default
	}

	c.mu.Lock()
	c.applied = t
	c.mu.Unlock()

	c.applier.ApplyTheme(t)
	c.applier.SetToggleTarget(t.Opposite())
}

// Toggle flips the applied theme and persists the result. This is the only
// operation that writes the preference store; a failed write is dropped
// silently and the in-memory theme still flips.
func (c *Controller) Toggle() Theme {
	c.mu.Lock()
	next := c.applied.Opposite()
	c.applied = next
	c.mu.Unlock()

	c.applier.ApplyTheme(next)
	c.applier.SetToggleTarget(next.Opposite())

	// Best-effort: storage being unavailable must not surface to the user.
	_ = c.store.Save(next)

	return next
}

// Applied returns the currently applied theme.
func (c *Controller) Applied() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applied
}

// OnSystemChange handles an ambient scheme flip while the program is open.
// An explicit stored preference makes this a complete no-op. Without one,
// only the toggle control is refreshed to advertise the opposite of what the
// system now shows; the applied theme marker is never touched here.
func (c *Controller) OnSystemChange(isDark bool) {
	if _, ok := c.store.Load(); ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.applier.SetToggleTarget(FromDark(isDark).Opposite())
}
