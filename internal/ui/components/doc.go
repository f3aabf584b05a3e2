// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the folio TUI.
//
// Each component holds a pointer to the active styles.Styles and re-renders
// from it, so a theme toggle only has to swap the styles and repaint. The
// components are:
//
//   - Header: brand, page navigation, and the theme toggle hint. The hint
//     always names the theme a toggle would switch to.
//   - Menu: the collapsed navigation panel used on narrow terminals.
//   - PostList: the scrollable list of published posts.
//   - PostView: a single rendered post inside a viewport.
//   - LogoStrip: the shuffled strip of technology badges on the home page.
//   - ConsentBanner: the analytics consent prompt shown until the user
//     decides.
//   - StatusBar: shortcut hints and the current page at the bottom.
//
// Components that need keyboard handling follow the Bubble Tea pattern of a
// value-receiver Update returning the modified component plus a command.
package components
