// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

const (
	// SchemaVersion tracks the database schema version for migrations
	SchemaVersion = 1
)

// SQLite schema for the local event store
const Schema = `
-- Metadata table for schema version and store state
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
) WITHOUT ROWID;

-- Events table: one row per recorded usage event
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,        -- UUID
    kind TEXT NOT NULL,         -- page_view, post_open, theme_toggle, feed_build
    page TEXT,                  -- page name for page_view
    slug TEXT,                  -- post slug for post_open
    theme TEXT,                 -- resulting theme for theme_toggle
    created_at INTEGER NOT NULL -- Unix timestamp
);

CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
CREATE INDEX IF NOT EXISTS idx_events_slug ON events(slug);
CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at);
`

// InitMetadata initializes the metadata table with default values
const InitMetadata = `
INSERT OR IGNORE INTO metadata (key, value) VALUES ('schema_version', '1');
INSERT OR IGNORE INTO metadata (key, value) VALUES ('created_at', strftime('%s', 'now'));
`

// =============================================================================
// EVENT KINDS
// =============================================================================

// EventKind classifies a usage event.
type EventKind string

const (
	EventPageView    EventKind = "page_view"
	EventPostOpen    EventKind = "post_open"
	EventThemeToggle EventKind = "theme_toggle"
	EventFeedBuild   EventKind = "feed_build"
)

// String returns the string representation of the kind.
func (k EventKind) String() string {
	return string(k)
}

// IsValid checks if the event kind is known.
func (k EventKind) IsValid() bool {
	switch k {
	case EventPageView, EventPostOpen, EventThemeToggle, EventFeedBuild:
		return true
	}
	return false
}
