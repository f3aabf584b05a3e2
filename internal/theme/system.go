// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// SYSTEM SCHEME DETECTION
// =============================================================================

// SchemeDetector reads the ambient light/dark preference supplied by the
// terminal. It may change while the program runs (terminal theme switch,
// OS appearance schedule); SchemeWatcher delivers those changes.
type SchemeDetector interface {
	// IsDark reports whether a dark background is preferred. ok is false
	// when detection is unavailable (not a terminal, dumb terminal), in
	// which case callers fall back to the default theme.
	IsDark() (dark bool, ok bool)
}

// TerminalDetector detects the scheme from the terminal background color
// via termenv. Detection needs a real TTY; piped output reports unavailable.
type TerminalDetector struct{}

// NewTerminalDetector returns the termenv-backed detector.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{}
}

// IsDark implements SchemeDetector.
func (d *TerminalDetector) IsDark() (bool, bool) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false, false
	}
	return termenv.HasDarkBackground(), true
}

// =============================================================================
// SCHEME WATCHER
// =============================================================================

// SchemeWatcher polls a SchemeDetector and invokes a callback when the
// ambient scheme flips while the program is open. Terminals deliver no push
// notification for background changes, so polling at a coarse interval is
// the subscription mechanism.
type SchemeWatcher struct {
	detector SchemeDetector
	interval time.Duration
	onChange func(isDark bool)

	mu       sync.Mutex
	last     bool
	haveLast bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// DefaultWatchInterval is how often the ambient scheme is re-read.
const DefaultWatchInterval = 5 * time.Second

// NewSchemeWatcher creates a watcher that calls onChange with the new dark
// flag each time the detected scheme changes. onChange runs on the watcher
// goroutine; callers route it onto their own event loop.
func NewSchemeWatcher(detector SchemeDetector, interval time.Duration, onChange func(isDark bool)) *SchemeWatcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &SchemeWatcher{
		detector: detector,
		interval: interval,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Watch starts the polling goroutine. The first reading seeds the baseline
// without firing the callback.
func (w *SchemeWatcher) Watch() error {
	if dark, ok := w.detector.IsDark(); ok {
		w.mu.Lock()
		w.last = dark
		w.haveLast = true
		w.mu.Unlock()
	}

	go w.poll()
	return nil
}

// Close stops the watcher and waits for the polling goroutine to exit.
func (w *SchemeWatcher) Close() error {
	w.cancel()
	<-w.done
	return nil
}

func (w *SchemeWatcher) poll() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.check()
		}
	}
}

func (w *SchemeWatcher) check() {
	dark, ok := w.detector.IsDark()
	if !ok {
		return
	}

	w.mu.Lock()
	changed := !w.haveLast || dark != w.last
	w.last = dark
	w.haveLast = true
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange(dark)
	}
}
