// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feed builds the RSS 2.0 feed from the post index.
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/folio-tui/internal/posts"
	"github.com/jeranaias/folio-tui/internal/util"
)

// DefaultLimit caps the feed when the config does not set one.
const DefaultLimit = 20

// Options configure feed generation.
type Options struct {
	Title       string
	Description string
	BaseURL     string // absolute site URL, no trailing slash needed
	Limit       int    // max items; <= 0 means DefaultLimit
}

// rss is the document root.
type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	LastBuildDate string `xml:"lastBuildDate,omitempty"`
	Items         []item `xml:"item"`
}

type item struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description,omitempty"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category,omitempty"`
}

// Build renders the feed XML for the given entries. Entries are expected
// newest-first, as the index returns them; Build just truncates to the limit.
func Build(entries []posts.Entry, opts Options) ([]byte, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("feed: base URL is required")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	base := strings.TrimRight(opts.BaseURL, "/")

	ch := channel{
		Title:       opts.Title,
		Link:        base,
		Description: opts.Description,
	}
	if len(entries) > 0 {
		ch.LastBuildDate = entries[0].PublishedAt().UTC().Format(time.RFC1123Z)
	}

	for _, e := range entries {
		link := base + "/posts/" + e.Slug
		ch.Items = append(ch.Items, item{
			Title:       e.Title,
			Link:        link,
			GUID:        link,
			Description: e.Summary,
			PubDate:     e.PublishedAt().UTC().Format(time.RFC1123Z),
			Categories:  e.Tags,
		})
	}

	out, err := xml.MarshalIndent(rss{Version: "2.0", Channel: ch}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// Write builds the feed and writes it atomically to path.
func Write(path string, entries []posts.Entry, opts Options) error {
	data, err := Build(entries, opts)
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(path, data, 0644)
}
