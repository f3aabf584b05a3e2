// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DefaultEventsPerSec and DefaultBurst bound the write rate when the config
// does not say otherwise.
const (
	DefaultEventsPerSec = 5
	DefaultBurst        = 10
)

// recordTimeout bounds each database write so a wedged disk cannot stall the
// UI goroutine that fired the event.
const recordTimeout = 2 * time.Second

// Recorder is the consent-gated front of the event store. Every record call
// is best effort: without consent, over the rate limit, or on any store
// error the event is silently dropped. A nil Recorder no-ops, so callers
// never need to guard.
type Recorder struct {
	mu      sync.Mutex
	store   *Store
	limiter *rate.Limiter
	enabled bool
}

// NewRecorder creates a recorder over store. Recording stays off until
// SetEnabled(true), which the app calls once consent is accepted.
func NewRecorder(store *Store, eventsPerSec float64, burst int) *Recorder {
	if eventsPerSec <= 0 {
		eventsPerSec = DefaultEventsPerSec
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &Recorder{
		store:   store,
		limiter: rate.NewLimiter(rate.Limit(eventsPerSec), burst),
	}
}

// SetEnabled turns recording on or off.
func (r *Recorder) SetEnabled(enabled bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.enabled = enabled
	r.mu.Unlock()
}

// Enabled reports whether events are being recorded.
func (r *Recorder) Enabled() bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// record applies the consent and rate gates, then writes.
func (r *Recorder) record(e Event) {
	if r == nil || r.store == nil {
		return
	}
	r.mu.Lock()
	enabled := r.enabled
	r.mu.Unlock()
	if !enabled {
		return
	}
	if !r.limiter.Allow() {
		return
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	_ = r.store.Record(ctx, e)
}

// PageView records a page navigation.
func (r *Recorder) PageView(page string) {
	r.record(Event{Kind: EventPageView, Page: page})
}

// PostOpen records a post being opened.
func (r *Recorder) PostOpen(slug string) {
	r.record(Event{Kind: EventPostOpen, Slug: slug})
}

// ThemeToggle records a theme switch and the theme it landed on.
func (r *Recorder) ThemeToggle(to string) {
	r.record(Event{Kind: EventThemeToggle, Theme: to})
}

// FeedBuild records a feed generation.
func (r *Recorder) FeedBuild() {
	r.record(Event{Kind: EventFeedBuild})
}
