// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package posts

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"time"

	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// REGISTRY SCHEMA
// =============================================================================

// DateLayout is the registry date format, a bare calendar date.
const DateLayout = "2006-01-02"

// slugPattern constrains slugs to URL-safe lowercase tokens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Entry is one record of the JSON post registry.
type Entry struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Date    string   `json:"date"` // YYYY-MM-DD
	Summary string   `json:"summary,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	File    string   `json:"file"` // markdown file, relative to the posts dir
	Draft   bool     `json:"draft,omitempty"`
}

// registryDoc is the top-level registry document.
type registryDoc struct {
	Posts []Entry `json:"posts"`
}

// Validate checks one entry for the fields the index requires. The date must
// parse; published entries additionally need slug, title, and file.
func (e Entry) Validate() error {
	if !slugPattern.MatchString(e.Slug) {
		return fmt.Errorf("invalid slug %q", e.Slug)
	}
	if e.Title == "" {
		return fmt.Errorf("post %q: missing title", e.Slug)
	}
	if e.File == "" {
		return fmt.Errorf("post %q: missing file", e.Slug)
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("post %q: invalid date %q: %w", e.Slug, e.Date, err)
	}
	return nil
}

// PublishedAt returns the entry date as a time. Call only after Validate.
func (e Entry) PublishedAt() time.Time {
	t, _ := time.Parse(DateLayout, e.Date)
	return t
}

// =============================================================================
// REGISTRY LOADING
// =============================================================================

// LoadRegistry reads and parses the registry file. Entries that fail
// validation or share a slug with an earlier entry are dropped; the skipped
// slice reports them so callers can warn without failing.
func LoadRegistry(path string) (entries []Entry, skipped []error, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read post registry: %w", err)
	}

	var doc registryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse post registry: %w", err)
	}

	seen := make(map[string]bool, len(doc.Posts))
	for _, e := range doc.Posts {
		if err := e.Validate(); err != nil {
			skipped = append(skipped, err)
			continue
		}
		if seen[e.Slug] {
			skipped = append(skipped, fmt.Errorf("post %q: duplicate slug", e.Slug))
			continue
		}
		seen[e.Slug] = true
		entries = append(entries, e.normalized())
	}

	return entries, skipped, nil
}

// normalized returns the entry with its display text in NFC form. Editors
// disagree on composed vs decomposed accents and the width math in the list
// view only behaves on composed runes.
func (e Entry) normalized() Entry {
	e.Title = norm.NFC.String(e.Title)
	e.Summary = norm.NFC.String(e.Summary)
	for i, tag := range e.Tags {
		e.Tags[i] = norm.NFC.String(tag)
	}
	return e
}
