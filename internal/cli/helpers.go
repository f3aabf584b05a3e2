// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared output helpers for CLI commands.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// OUTPUT STYLES
// =============================================================================

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("35")).
		Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(14)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// =============================================================================
// JSON OUTPUT
// =============================================================================

// outputJSON prints data as indented JSON to stdout.
func outputJSON(data interface{}) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// =============================================================================
// FORMATTED OUTPUT
// =============================================================================

// printField prints an aligned "label: value" row.
func printField(label, value string) {
	fmt.Printf("  %s%s\n", labelStyle.Render(label+":"), value)
}

// plural returns singular for n == 1 and plural otherwise.
func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
