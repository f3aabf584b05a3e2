// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the folio TUI.
//
// Unlike terminal applications that let Lip Gloss pick colors from the
// terminal background, folio resolves its effective theme explicitly (stored
// preference first, then system preference, then light). Every color
// therefore lives in an explicit Palette, one per theme, and all component
// styles are rebuilt from the active palette whenever the theme changes.
//
// The package has three parts:
//
//   - colors.go: the light and dark Palettes plus PaletteFor
//   - styles.go: the Styles struct holding every component style, built
//     from a palette via New
//   - animations.go: reveal stages, spinner frames, and progress rendering
//
// Styles also tracks terminal dimensions and derives a LayoutMode from the
// width, which components use to collapse navigation and trim metadata on
// narrow terminals.
package styles
