// folio TUI - A personal portfolio and blog for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/folio-tui/internal/cli"
	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/posts"
	"github.com/jeranaias/folio-tui/internal/telemetry"
	"github.com/jeranaias/folio-tui/internal/theme"
	"github.com/jeranaias/folio-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// registryDebounce coalesces bursts of registry writes into one reload.
const registryDebounce = 250 * time.Millisecond

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args)
	case cli.CmdPosts:
		err = cli.HandlePosts(args)
	case cli.CmdFeed:
		err = cli.HandleFeed(args)
	case cli.CmdTheme:
		err = cli.HandleTheme(args)
	case cli.CmdConsent:
		err = cli.HandleConsent(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdStats:
		err = cli.HandleStats(args)
	case cli.CmdVersion:
		err = cli.HandleVersion(args)
	case cli.CmdHelp:
		err = cli.HandleHelp(args)
	default:
		err = runTUI(args)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// TUI STARTUP
// =============================================================================

// runTUI wires the theme machinery, the post index, and analytics together
// and runs the Bubble Tea program.
func runTUI(args cli.Args) error {
	if err := cli.RequireTTY(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default configuration: %v\n", err)
		cfg = config.Default()
	}

	// Theme resolution. The preference file is authoritative; a hand-set
	// ui.theme in the config acts as the stored preference when no file
	// exists yet. Toggling always writes the file, never the config.
	storePath, err := theme.DefaultStorePath()
	if err != nil {
		return fmt.Errorf("could not locate theme preference file: %w", err)
	}
	store := newLayeredStore(theme.NewFileStore(storePath), cfg.UI.Theme)
	detector := theme.NewTerminalDetector()
	state := app.NewThemeState()
	ctrl := theme.NewController(store, detector, state)

	// Resolve and apply before the program starts so the first frame is
	// already in the right theme.
	ctrl.Init()

	// Post index. A broken registry is not fatal; the TUI shows an empty
	// list and the watcher picks up the fix.
	idx := posts.NewIndex(cfg.Posts.Dir, cfg.Posts.Registry)
	if skipped, err := idx.Reload(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load post registry: %v\n", err)
	} else {
		for _, e := range skipped {
			fmt.Fprintf(os.Stderr, "Warning: skipping registry entry: %v\n", e)
		}
	}

	// Local analytics, consent-gated. FOLIO_NO_ANALYTICS is the
	// environment-level kill switch.
	var recorder *telemetry.Recorder
	if cfg.Analytics.Enabled && os.Getenv("FOLIO_NO_ANALYTICS") == "" {
		dbPath := cfg.Analytics.DBPath
		var dbErr error
		if dbPath == "" {
			dbPath, dbErr = telemetry.DefaultDBPath()
		}
		if dbErr == nil {
			if eventStore, err := telemetry.Open(dbPath); err == nil {
				defer eventStore.Close()
				recorder = telemetry.NewRecorder(eventStore, cfg.Analytics.EventsPerSec, cfg.Analytics.Burst)
				recorder.SetEnabled(cfg.Consent.Accepted)
			}
		}
	}

	m := app.New(app.Options{
		Config:     cfg,
		Controller: ctrl,
		State:      state,
		Index:      idx,
		Recorder:   recorder,
		Version:    Version,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	// From here on, theme changes made outside Update (the scheme watcher)
	// reach the model as messages.
	state.SetNotify(p.Send)

	// Follow the terminal scheme while running. The controller ignores
	// these once a preference is stored.
	schemeWatcher := theme.NewSchemeWatcher(detector, 5*time.Second, ctrl.OnSystemChange)
	if err := schemeWatcher.Watch(); err == nil {
		defer schemeWatcher.Close()
	}

	// Reload the index when the registry changes on disk.
	if cfg.Posts.Watch {
		watcher, err := posts.NewWatcher(idx, registryDebounce, func(skipped []error, err error) {
			p.Send(app.PostsReloadedMsg{Skipped: len(skipped), Err: err})
		})
		if err == nil {
			if err := watcher.Watch(); err == nil {
				defer watcher.Close()
			}
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run folio: %w", err)
	}
	return nil
}

// =============================================================================
// LAYERED PREFERENCE STORE
// =============================================================================

// layeredStore reads the preference file first and falls back to the
// config's ui.theme. Saves always go to the file, so an in-app toggle
// overrides a hand-configured theme from then on.
type layeredStore struct {
	file     *theme.FileStore
	fallback theme.Theme
	ok       bool
}

func newLayeredStore(file *theme.FileStore, configTheme string) *layeredStore {
	t, ok := theme.Parse(configTheme) // "auto" and junk both parse as absent
	return &layeredStore{file: file, fallback: t, ok: ok}
}

func (s *layeredStore) Load() (theme.Theme, bool) {
	if t, ok := s.file.Load(); ok {
		return t, true
	}
	return s.fallback, s.ok
}

func (s *layeredStore) Save(t theme.Theme) error {
	return s.file.Save(t)
}
