// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app holds the root Bubble Tea model for the folio TUI.
//
// The model composes the components package into pages (home, posts, a single
// post, projects, about) and owns the keyboard handling, the responsive
// layout, and the wiring between the theme controller and the styles.
//
// Theme flow: main resolves and applies the effective theme through
// theme.Controller before the program starts, so the very first frame is
// already in the right palette. The controller's Applier is the ThemeState in
// this package; changes after startup (a toggle, or a system scheme change
// nudging the toggle hint) reach the model as messages and trigger a style
// rebuild or a header update.
package app
