// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// stats_cmd.go - "folio stats" shows aggregates from the local event store.
//
// Command: stats [--limit <n>] [--json]
//
// Everything printed here comes from the SQLite database on this machine;
// nothing is fetched or sent anywhere. Without accepted consent the database
// never receives events, so this command mostly prints zeroes then.
//
// Examples:
//   folio stats              Totals, per-kind counts, top posts
//   folio stats --limit 3    Only the top 3 posts
//   folio stats --json       Aggregates as JSON

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/telemetry"
)

// DefaultTopPosts is how many top posts stats shows without --limit.
const DefaultTopPosts = 5

// HandleStats implements "folio stats".
func HandleStats(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	path := cfg.Analytics.DBPath
	if path == "" {
		if path, err = telemetry.DefaultDBPath(); err != nil {
			return fmt.Errorf("could not locate analytics database: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if args.JSON {
			return outputJSON(map[string]interface{}{"total": 0, "by_kind": map[string]int{}, "top_posts": []interface{}{}})
		}
		fmt.Println("No events recorded yet.")
		if !cfg.Consent.Accepted {
			fmt.Println("Analytics need consent: `folio consent accept`.")
		}
		return nil
	}

	store, err := telemetry.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open analytics database %s: %w", path, err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	total, err := store.TotalEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to read analytics database: %w", err)
	}
	byKind, err := store.CountByKind(ctx)
	if err != nil {
		return fmt.Errorf("failed to read analytics database: %w", err)
	}

	limit := args.Limit
	if limit <= 0 {
		limit = DefaultTopPosts
	}
	top, err := store.TopPosts(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to read analytics database: %w", err)
	}

	if args.JSON {
		kinds := make(map[string]int, len(byKind))
		for k, n := range byKind {
			kinds[k.String()] = n
		}
		type topJSON struct {
			Slug  string `json:"slug"`
			Count int    `json:"count"`
		}
		topOut := make([]topJSON, 0, len(top))
		for _, p := range top {
			topOut = append(topOut, topJSON{Slug: p.Slug, Count: p.Count})
		}
		return outputJSON(map[string]interface{}{
			"total":     total,
			"by_kind":   kinds,
			"top_posts": topOut,
			"path":      path,
		})
	}

	fmt.Println()
	printField("Events", fmt.Sprintf("%d", total))
	for _, k := range []telemetry.EventKind{
		telemetry.EventPageView,
		telemetry.EventPostOpen,
		telemetry.EventThemeToggle,
		telemetry.EventFeedBuild,
	} {
		if n, ok := byKind[k]; ok {
			printField(k.String(), fmt.Sprintf("%d", n))
		}
	}

	if len(top) > 0 {
		fmt.Println()
		fmt.Println("  Top posts:")
		for i, p := range top {
			fmt.Printf("  %d. %-24s %d %s\n", i+1, p.Slug, p.Count, plural(p.Count, "open", "opens"))
		}
	}

	fmt.Println()
	fmt.Println(dimStyle.Render("  local data only: " + path))
	fmt.Println()

	return nil
}
