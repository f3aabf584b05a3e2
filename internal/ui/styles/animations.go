// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"time"
)

// =============================================================================
// REVEAL ANIMATION
// =============================================================================

// RevealConfig drives the staged reveal of page sections: each section steps
// through the Reveal styles one tick at a time, and sections start offset
// from each other by Stagger ticks.
type RevealConfig struct {
	// Stages is how many ticks a section takes to fully appear. Matches the
	// number of Reveal styles.
	Stages int

	// Interval between reveal ticks.
	Interval time.Duration

	// Stagger is the tick offset between consecutive sections.
	Stagger int
}

// DefaultReveal is the reveal used by the home and posts pages.
var DefaultReveal = RevealConfig{
	Stages:   4,
	Interval: 60 * time.Millisecond,
	Stagger:  2,
}

// StageAt returns the reveal stage for the section at index when tick ticks
// have elapsed, clamped to the final stage. Sections later in the page reveal
// later.
func (r RevealConfig) StageAt(index, tick int) int {
	stage := tick - index*r.Stagger
	if stage < 0 {
		return 0
	}
	if stage >= r.Stages {
		return r.Stages - 1
	}
	return stage
}

// Done reports whether every one of n sections is fully revealed at tick.
func (r RevealConfig) Done(n, tick int) bool {
	if n == 0 {
		return true
	}
	return r.StageAt(n-1, tick) == r.Stages-1
}

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// LineSpinner - Simple line rotation, shown while the registry reloads
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// DotsSpinner - Classic three-dot animation
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// Progress bar characters (ASCII-safe).
var (
	ProgressFull    = "#"
	ProgressEmpty   = "-"
	ProgressPartial = []string{".", ":", "+"}
)

// RenderProgressBar creates a progress bar string.
// width: total width of the bar in characters
// percent: 0-100 percentage complete
func RenderProgressBar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filledWidth := float64(width) * percent / 100
	fullBlocks := int(filledWidth)
	partialIndex := int((filledWidth - float64(fullBlocks)) * float64(len(ProgressPartial)+1))

	var sb strings.Builder
	sb.Grow(width)

	for i := 0; i < fullBlocks && i < width; i++ {
		sb.WriteString(ProgressFull)
	}

	if fullBlocks < width && partialIndex > 0 {
		sb.WriteString(ProgressPartial[partialIndex-1])
		fullBlocks++
	}

	for i := fullBlocks; i < width; i++ {
		sb.WriteString(ProgressEmpty)
	}

	return sb.String()
}

// =============================================================================
// TYPING ANIMATION
// =============================================================================

// TypingCursor characters for the blinking cursor on the home page tagline.
var TypingCursor = []string{"_", " "}

// CursorBlinkRate is the rate at which the cursor blinks.
var CursorBlinkRate = 530 * time.Millisecond
