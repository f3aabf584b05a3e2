// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package theme resolves, applies, and persists the folio display theme.
//
// The effective theme is always exactly one of "light" or "dark". It is
// resolved from two inputs with a fixed precedence:
//
//   - Stored Preference: the user's explicit choice, written only by an
//     explicit toggle and persisted in a one-key file store.
//   - System Scheme: the terminal's ambient light/dark background, read at
//     startup and polled for changes while the program runs.
//
// A valid stored preference always wins, including over later system scheme
// changes. Without one, the system scheme decides; if that cannot be
// detected either, the theme falls back to light.
//
// # Ordering
//
// The controller resolves and applies the initial theme synchronously in
// main() before the Bubble Tea program renders its first frame, so the first
// visible frame is already in the correct theme. Resolving later would flash
// the wrong palette.
//
// # Failure Semantics
//
// Store reads and writes are best-effort. A missing, unreadable, or
// corrupted preference degrades to system scheme detection; a failed write
// is dropped silently. No theme operation can fail the program.
//
// # Usage
//
//	store := theme.NewFileStore(path)
//	ctrl := theme.NewController(store, theme.NewTerminalDetector(), applier)
//	ctrl.Init() // resolve + apply, before the first frame
//
//	ctrl.Toggle()             // user pressed the toggle key
//	ctrl.OnSystemChange(dark) // scheme watcher callback
package theme
