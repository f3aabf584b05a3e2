// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package feed

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/folio-tui/internal/posts"
)

func sampleEntries() []posts.Entry {
	return []posts.Entry{
		{Slug: "second", Title: "Second Post", Date: "2024-02-01", Summary: "the follow-up", Tags: []string{"go", "tui"}},
		{Slug: "first", Title: "First Post", Date: "2024-01-01"},
	}
}

func defaultOpts() Options {
	return Options{
		Title:       "folio",
		Description: "a terminal portfolio",
		BaseURL:     "https://example.com/",
	}
}

func TestBuild_ProducesValidRSS(t *testing.T) {
	data, err := Build(sampleEntries(), defaultOpts())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var doc struct {
		XMLName xml.Name `xml:"rss"`
		Version string   `xml:"version,attr"`
		Channel struct {
			Title string `xml:"title"`
			Link  string `xml:"link"`
			Items []struct {
				Title   string   `xml:"title"`
				Link    string   `xml:"link"`
				GUID    string   `xml:"guid"`
				PubDate string   `xml:"pubDate"`
				Cats    []string `xml:"category"`
			} `xml:"item"`
		} `xml:"channel"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("feed is not valid XML: %v", err)
	}

	if doc.Version != "2.0" {
		t.Errorf("rss version = %q, want 2.0", doc.Version)
	}
	if doc.Channel.Link != "https://example.com" {
		t.Errorf("channel link = %q, trailing slash should be trimmed", doc.Channel.Link)
	}
	if len(doc.Channel.Items) != 2 {
		t.Fatalf("feed has %d items, want 2", len(doc.Channel.Items))
	}
	if doc.Channel.Items[0].Link != "https://example.com/posts/second" {
		t.Errorf("item link = %q", doc.Channel.Items[0].Link)
	}
	if doc.Channel.Items[0].GUID != doc.Channel.Items[0].Link {
		t.Error("guid should equal the item link")
	}
	if len(doc.Channel.Items[0].Cats) != 2 {
		t.Errorf("item categories = %v, want tags carried through", doc.Channel.Items[0].Cats)
	}
	if doc.Channel.Items[0].PubDate == "" {
		t.Error("item missing pubDate")
	}
}

func TestBuild_RespectsLimit(t *testing.T) {
	opts := defaultOpts()
	opts.Limit = 1

	data, err := Build(sampleEntries(), opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := strings.Count(string(data), "<item>"); got != 1 {
		t.Errorf("feed has %d items, want 1", got)
	}
	// Newest entry survives the cut.
	if !strings.Contains(string(data), "Second Post") {
		t.Error("limited feed should keep the newest entry")
	}
}

func TestBuild_RequiresBaseURL(t *testing.T) {
	if _, err := Build(sampleEntries(), Options{Title: "x"}); err == nil {
		t.Error("Build without a base URL should fail")
	}
}

func TestBuild_EmptyEntries(t *testing.T) {
	data, err := Build(nil, defaultOpts())
	if err != nil {
		t.Fatalf("Build with no entries failed: %v", err)
	}
	if strings.Contains(string(data), "<item>") {
		t.Error("empty feed should have no items")
	}
	if strings.Contains(string(data), "lastBuildDate") {
		t.Error("empty feed should omit lastBuildDate")
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.xml")
	if err := Write(path, sampleEntries(), defaultOpts()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading feed failed: %v", err)
	}
	if !strings.HasPrefix(string(data), xml.Header) {
		t.Error("feed file missing XML header")
	}
}
