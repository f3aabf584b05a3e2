// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for folio.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - SiteConfig: Site identity (title, author, base URL)
//   - PostsConfig: Blog index location and watch behavior
//   - AnalyticsConfig / ConsentConfig: Consent-gated local analytics
//   - FeedConfig: RSS generation settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (FOLIO_*)
//   - ~/.folio/config.toml
//   - ~/.folio/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	title := cfg.Site.Title
//	registry := cfg.Posts.Registry
package config
