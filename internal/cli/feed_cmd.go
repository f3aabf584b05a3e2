// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// feed_cmd.go - "folio feed" builds the RSS document from the post registry.
//
// Command: feed [--out <path>]
//
// Output goes to --out when given, otherwise to feed.path from the config,
// otherwise to stdout. Building the feed requires site.base_url so item links
// resolve somewhere real.
//
// Examples:
//   folio feed                      Print the feed to stdout
//   folio feed --out public/rss.xml Write the feed to a file

package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/feed"
	"github.com/jeranaias/folio-tui/internal/posts"
	"github.com/jeranaias/folio-tui/internal/telemetry"
)

// HandleFeed implements "folio feed".
func HandleFeed(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	if cfg.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url is not set; run `folio config set site.base_url https://example.com`")
	}

	idx := posts.NewIndex(cfg.Posts.Dir, cfg.Posts.Registry)
	if _, err := idx.Reload(); err != nil {
		return fmt.Errorf("failed to load post registry %s: %w", cfg.Posts.Registry, err)
	}

	opts := feed.Options{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		BaseURL:     cfg.Site.BaseURL,
		Limit:       cfg.Feed.Limit,
	}

	out := args.Out
	if out == "" {
		out = cfg.Feed.Path
	}

	entries := idx.All()

	if out == "" {
		data, err := feed.Build(entries, opts)
		if err != nil {
			return fmt.Errorf("failed to build feed: %w", err)
		}
		os.Stdout.Write(data)
	} else {
		if err := feed.Write(out, entries, opts); err != nil {
			return fmt.Errorf("failed to write feed to %s: %w", out, err)
		}
		if !args.Quiet {
			n := len(entries)
			if opts.Limit > 0 && n > opts.Limit {
				n = opts.Limit
			}
			fmt.Printf("%s %s (%d %s)\n", okStyle.Render("[OK]"), out, n, plural(n, "item", "items"))
		}
	}

	recordFeedBuild(cfg)
	return nil
}

// recordFeedBuild records a feed_build event when analytics is enabled and
// consented. Best-effort; a missing or locked database is not worth a warning.
func recordFeedBuild(cfg *config.Config) {
	if !cfg.Analytics.Enabled || !cfg.Consent.Accepted {
		return
	}

	path := cfg.Analytics.DBPath
	if path == "" {
		var err error
		if path, err = telemetry.DefaultDBPath(); err != nil {
			return
		}
	}

	store, err := telemetry.Open(path)
	if err != nil {
		return
	}
	defer store.Close()

	rec := telemetry.NewRecorder(store, cfg.Analytics.EventsPerSec, cfg.Analytics.Burst)
	rec.SetEnabled(true)
	rec.FeedBuild()
}
