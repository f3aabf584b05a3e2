// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package posts loads and renders the blog index.
//
// The source of truth is a JSON registry (posts.json) listing post metadata,
// with post bodies in markdown files alongside it. The package mirrors the
// registry's role on the original site: the index page is rendered from the
// registry alone, bodies are loaded lazily when a post is opened.
//
// # Key Types
//
//   - Entry: one registry record (slug, title, date, summary, tags, file)
//   - Index: the loaded, validated, date-sorted collection
//   - Renderer: glamour-backed markdown rendering themed to match the UI
//   - Watcher: fsnotify-based registry reload with debounce
//
// # Failure Semantics
//
// A registry that cannot be read yields an empty index and an error the
// caller can surface; individual malformed entries are skipped, never fatal.
// Draft entries are excluded from the index and the feed.
package posts
