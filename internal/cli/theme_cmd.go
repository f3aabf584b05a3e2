// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// theme_cmd.go - "folio theme" inspects and edits the theme preference.
//
// Command: theme [show|set <name>|clear]
//
// "show" resolves the theme the TUI would start with and names the source:
// the stored preference, the terminal scheme, or the built-in default. "set"
// writes the preference file the same way the in-app toggle does; "clear"
// removes it, returning resolution to the terminal scheme.
//
// Examples:
//   folio theme              Show the effective theme
//   folio theme set dark     Prefer dark regardless of the terminal
//   folio theme clear        Follow the terminal scheme again

package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/folio-tui/internal/theme"
)

// HandleTheme implements "folio theme".
func HandleTheme(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleThemeShow(args)
	case "set":
		return handleThemeSet(args)
	case "clear":
		return handleThemeClear(args)
	default:
		return fmt.Errorf("unknown theme subcommand: %s\n\nValid subcommands:\n"+
			"  show   - Show the effective theme and its source\n"+
			"  set    - Store a preference (light or dark)\n"+
			"  clear  - Remove the stored preference", args.Subcommand)
	}
}

// handleThemeShow resolves and prints the effective theme.
func handleThemeShow(args Args) error {
	path, err := theme.DefaultStorePath()
	if err != nil {
		return fmt.Errorf("could not locate preference file: %w", err)
	}

	effective := theme.Default
	source := "default"

	if stored, ok := theme.NewFileStore(path).Load(); ok {
		effective = stored
		source = "preference"
	} else if isDark, ok := theme.NewTerminalDetector().IsDark(); ok {
		effective = theme.FromDark(isDark)
		source = "terminal"
	}

	if args.JSON {
		return outputJSON(map[string]string{
			"theme":  effective.String(),
			"source": source,
			"path":   path,
		})
	}

	fmt.Println()
	printField("Theme", effective.String())
	printField("Source", source)
	if source == "preference" {
		printField("File", path)
	}
	fmt.Println()

	return nil
}

// handleThemeSet stores an explicit preference.
func handleThemeSet(args Args) error {
	t, ok := theme.Parse(args.ConfigVal)
	if !ok {
		return fmt.Errorf("invalid theme %q (valid: light, dark)", args.ConfigVal)
	}

	path, err := theme.DefaultStorePath()
	if err != nil {
		return fmt.Errorf("could not locate preference file: %w", err)
	}
	if err := theme.NewFileStore(path).Save(t); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}

	if args.JSON {
		return outputJSON(map[string]string{"theme": t.String(), "path": path})
	}
	if !args.Quiet {
		fmt.Printf("%s theme preference set to %s\n", okStyle.Render("[OK]"), t)
	}
	return nil
}

// handleThemeClear removes the stored preference.
func handleThemeClear(args Args) error {
	path, err := theme.DefaultStorePath()
	if err != nil {
		return fmt.Errorf("could not locate preference file: %w", err)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear theme preference: %w", err)
	}

	if args.JSON {
		return outputJSON(map[string]bool{"cleared": true})
	}
	if !args.Quiet {
		fmt.Printf("%s theme preference cleared; the terminal scheme decides\n", okStyle.Render("[OK]"))
	}
	return nil
}
