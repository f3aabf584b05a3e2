// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the folio command-line interface.
//
// Running folio with no command starts the TUI. Everything else is a small
// non-interactive command that operates on the same state the TUI uses: the
// post registry, the theme preference file, the consent record in the config,
// and the local analytics database.
//
// Commands:
//
//	(none)    Launch the TUI
//	posts     List published posts
//	feed      Build the RSS feed
//	theme     Show or set the theme preference
//	consent   Show or change the analytics consent decision
//	config    Get and set configuration values
//	stats     Show local analytics aggregates
//	version   Print version information
//	help      Print usage
//
// Parsing is deliberately plain: global flags first, then the command word,
// then per-command arguments. Unknown commands fall through to the TUI so a
// bare typo does not strand the user at a usage screen.
package cli
