// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Argument parsing and command dispatch for the folio CLI.
//
// The entry point is Parse, which splits os.Args into a Command and an Args
// struct. main dispatches on the Command; the Handle* functions in this
// package implement the non-interactive commands.

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// =============================================================================
// VERSION INFORMATION
// =============================================================================

// Version information, set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMANDS
// =============================================================================

// Command identifies which subcommand was requested.
type Command int

const (
	// CmdTUI launches the interactive terminal UI (the default)
	CmdTUI Command = iota
	// CmdPosts lists published posts
	CmdPosts
	// CmdFeed builds the RSS feed
	CmdFeed
	// CmdTheme shows or sets the theme preference
	CmdTheme
	// CmdConsent shows or changes the analytics consent decision
	CmdConsent
	// CmdConfig gets and sets configuration values
	CmdConfig
	// CmdStats shows local analytics aggregates
	CmdStats
	// CmdVersion prints version information
	CmdVersion
	// CmdHelp prints usage
	CmdHelp
)

// Args holds the parsed command arguments.
type Args struct {
	// Global flags
	JSON    bool // --json: machine-readable output
	Quiet   bool // --quiet: suppress informational output
	NoColor bool // --no-color: disable colored output

	// Subcommand within a command (e.g. "accept" for consent)
	Subcommand string

	// Config command
	ConfigKey string
	ConfigVal string

	// Posts command
	Tag string // --tag filter

	// Feed command
	Out string // --out path override

	// Stats command
	Limit int // --limit for top posts

	// Raw holds any remaining unparsed arguments
	Raw []string
}

// =============================================================================
// USAGE
// =============================================================================

const usageText = `folio - a portfolio and blog for the terminal

Usage:
  folio [command] [arguments]

Commands:
  (none)              Launch the interactive TUI
  posts               List published posts
  posts --tag <tag>   List posts carrying a tag
  feed                Build the RSS feed (stdout or feed.path)
  feed --out <path>   Build the feed to a specific file
  theme               Show the effective theme and where it came from
  theme set <name>    Store a theme preference (light or dark)
  theme clear         Remove the stored preference
  consent             Show the analytics consent decision
  consent accept      Accept local analytics
  consent revoke      Revoke consent and purge recorded events
  config list         List configuration keys and values
  config get <key>    Print one configuration value
  config set <key> <value>
                      Change a configuration value
  config path         Print the configuration file path
  stats               Show local analytics aggregates
  version             Print version information
  help                Print this help

Global flags:
  --json              Machine-readable JSON output
  --quiet             Suppress informational output
  --no-color          Disable colored output

Keyboard (TUI):
  1-4 pages, j/k move, enter open, esc back, t theme, q quit

Version: %s
`

// PrintUsage prints the usage message to stdout.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints detailed version information.
func PrintVersion() {
	fmt.Printf("folio %s\n", Version)
	fmt.Printf("  commit: %s\n", GitCommit)
	fmt.Printf("  built:  %s\n", BuildDate)
}

// =============================================================================
// PARSING
// =============================================================================

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses an argument slice. Split out from Parse for testing.
func ParseArgs(argv []string) (Command, Args) {
	args, rest := parseGlobalFlags(argv)

	if len(rest) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(rest[0])
	rest = rest[1:]
	args.Raw = rest

	switch cmd {
	case "posts":
		return CmdPosts, parsePostsArgs(args, rest)
	case "feed":
		return CmdFeed, parseFeedArgs(args, rest)
	case "theme":
		return CmdTheme, parseSubcommandArgs(args, rest)
	case "consent":
		return CmdConsent, parseSubcommandArgs(args, rest)
	case "config":
		return CmdConfig, parseConfigArgs(args, rest)
	case "stats":
		return CmdStats, parseStatsArgs(args, rest)
	case "version", "--version", "-v":
		return CmdVersion, args
	case "help", "--help", "-h":
		return CmdHelp, args
	default:
		// Unknown word: keep it visible and fall back to the TUI.
		args.Raw = append([]string{cmd}, rest...)
		return CmdTUI, args
	}
}

// parseGlobalFlags extracts global flags from anywhere in the argument list
// and returns the remaining positional arguments in order.
func parseGlobalFlags(argv []string) (Args, []string) {
	var args Args
	var rest []string

	for _, a := range argv {
		switch a {
		case "--json":
			args.JSON = true
		case "--quiet", "-q":
			args.Quiet = true
		case "--no-color":
			args.NoColor = true
		default:
			rest = append(rest, a)
		}
	}

	return args, rest
}

// parseSubcommandArgs fills Subcommand from the first positional argument.
// Used by commands whose shape is "folio <cmd> [subcommand] [value]".
func parseSubcommandArgs(args Args, rest []string) Args {
	if len(rest) > 0 {
		args.Subcommand = strings.ToLower(rest[0])
	}
	if len(rest) > 1 {
		args.ConfigVal = rest[1]
	}
	return args
}

// parsePostsArgs handles "folio posts [--tag <tag>]".
func parsePostsArgs(args Args, rest []string) Args {
	for i := 0; i < len(rest); i++ {
		if rest[i] == "--tag" && i+1 < len(rest) {
			args.Tag = rest[i+1]
			i++
		}
	}
	return args
}

// parseFeedArgs handles "folio feed [--out <path>]".
func parseFeedArgs(args Args, rest []string) Args {
	for i := 0; i < len(rest); i++ {
		if rest[i] == "--out" && i+1 < len(rest) {
			args.Out = rest[i+1]
			i++
		}
	}
	return args
}

// parseConfigArgs handles "folio config <get|set|list|path> [key] [value]".
func parseConfigArgs(args Args, rest []string) Args {
	if len(rest) > 0 {
		args.Subcommand = strings.ToLower(rest[0])
	}
	if len(rest) > 1 {
		args.ConfigKey = rest[1]
	}
	if len(rest) > 2 {
		args.ConfigVal = strings.Join(rest[2:], " ")
	}
	return args
}

// parseStatsArgs handles "folio stats [--limit <n>]".
func parseStatsArgs(args Args, rest []string) Args {
	for i := 0; i < len(rest); i++ {
		if rest[i] == "--limit" && i+1 < len(rest) {
			if n, err := strconv.Atoi(rest[i+1]); err == nil && n > 0 {
				args.Limit = n
			}
			i++
		}
	}
	return args
}

// =============================================================================
// TRIVIAL HANDLERS
// =============================================================================

// HandleVersion implements "folio version".
func HandleVersion(args Args) error {
	if args.JSON {
		return outputJSON(map[string]string{
			"version": Version,
			"commit":  GitCommit,
			"built":   BuildDate,
		})
	}
	PrintVersion()
	return nil
}

// HandleHelp implements "folio help".
func HandleHelp(args Args) error {
	PrintUsage()
	return nil
}
