// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// posts_cmd.go - "folio posts" lists published posts from the registry.
//
// Command: posts [--tag <tag>] [--json]
//
// Examples:
//   folio posts                List all published posts, newest first
//   folio posts --tag go       List posts tagged "go"
//   folio posts --json         Registry entries as JSON

package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/posts"
)

// HandlePosts implements "folio posts".
func HandlePosts(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	idx := posts.NewIndex(cfg.Posts.Dir, cfg.Posts.Registry)
	skipped, err := idx.Reload()
	if err != nil {
		return fmt.Errorf("failed to load post registry %s: %w", cfg.Posts.Registry, err)
	}

	entries := idx.All()
	if args.Tag != "" {
		entries = idx.WithTag(args.Tag)
	}

	if args.JSON {
		type postJSON struct {
			Slug    string   `json:"slug"`
			Title   string   `json:"title"`
			Date    string   `json:"date"`
			Summary string   `json:"summary,omitempty"`
			Tags    []string `json:"tags,omitempty"`
		}
		out := make([]postJSON, 0, len(entries))
		for _, e := range entries {
			out = append(out, postJSON{
				Slug:    e.Slug,
				Title:   e.Title,
				Date:    e.Date,
				Summary: e.Summary,
				Tags:    e.Tags,
			})
		}
		return outputJSON(out)
	}

	if len(entries) == 0 {
		if args.Tag != "" {
			fmt.Printf("No posts tagged %q.\n", args.Tag)
		} else {
			fmt.Println("No posts yet.")
		}
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-24s %s", e.Date, e.Slug, e.Title)
		if len(e.Tags) > 0 {
			line += dimStyle.Render("  [" + strings.Join(e.Tags, ", ") + "]")
		}
		fmt.Println(line)
	}

	if !args.Quiet {
		fmt.Println()
		fmt.Printf("%d %s", len(entries), plural(len(entries), "post", "posts"))
		if n := len(skipped); n > 0 {
			fmt.Printf(", %d skipped (invalid registry %s)", n, plural(n, "entry", "entries"))
		}
		fmt.Println()
	}

	return nil
}
