// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package theme resolves, applies, and persists the folio display theme.
package theme

import "strings"

// Theme is the light/dark palette selection applied to the program.
// The applied theme is always exactly one of the two values below; anything
// else read from storage is treated as absent.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is the theme of last resort, used when neither a stored preference
// nor the system scheme is available.
const Default = Light

// Parse returns the Theme named by s, case-insensitively and ignoring
// surrounding whitespace. The second return is false for every value other
// than exactly "light" or "dark".
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Valid reports whether t is one of the two recognized themes.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Opposite returns the other theme. The toggle control always advertises
// Opposite of the applied theme: the theme a press would switch to.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// String returns the theme name.
func (t Theme) String() string {
	return string(t)
}

// FromDark maps a system dark-background flag to a Theme.
func FromDark(isDark bool) Theme {
	if isDark {
		return Dark
	}
	return Light
}
