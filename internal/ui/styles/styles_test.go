// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/jeranaias/folio-tui/internal/theme"
)

func TestPaletteFor(t *testing.T) {
	if got := PaletteFor(theme.Light); got.Surface != LightPalette.Surface {
		t.Errorf("PaletteFor(Light) returned the wrong palette")
	}
	if got := PaletteFor(theme.Dark); got.Surface != DarkPalette.Surface {
		t.Errorf("PaletteFor(Dark) returned the wrong palette")
	}
	// Anything invalid falls back to light.
	if got := PaletteFor(theme.Theme("solarized")); got.Surface != LightPalette.Surface {
		t.Errorf("PaletteFor(invalid) should return the light palette")
	}
}

func TestPalettesDiffer(t *testing.T) {
	if LightPalette.Surface == DarkPalette.Surface {
		t.Error("light and dark surfaces must differ")
	}
	if LightPalette.TextPrimary == DarkPalette.TextPrimary {
		t.Error("light and dark text colors must differ")
	}
}

func TestNew_TracksTheme(t *testing.T) {
	for _, th := range []theme.Theme{theme.Light, theme.Dark} {
		s := New(th)
		if s.Theme != th {
			t.Errorf("New(%s).Theme = %s", th, s.Theme)
		}
		if s.Palette.Surface != PaletteFor(th).Surface {
			t.Errorf("New(%s) built from the wrong palette", th)
		}
	}
}

func TestGetLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{0, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	s := New(theme.Light)
	for _, tt := range tests {
		s.SetSize(tt.width, 40)
		if got := s.GetLayoutMode(); got != tt.want {
			t.Errorf("GetLayoutMode() at width %d = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestRevealStageAt(t *testing.T) {
	r := RevealConfig{Stages: 4, Stagger: 2}

	tests := []struct {
		index, tick, want int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 3, 3},
		{0, 99, 3},  // clamped at the final stage
		{1, 0, 0},   // staggered sections start later
		{1, 2, 0},
		{1, 3, 1},
		{2, 4, 0},
		{2, 7, 3},
	}
	for _, tt := range tests {
		if got := r.StageAt(tt.index, tt.tick); got != tt.want {
			t.Errorf("StageAt(%d, %d) = %d, want %d", tt.index, tt.tick, got, tt.want)
		}
	}
}

func TestRevealDone(t *testing.T) {
	r := DefaultReveal

	if !r.Done(0, 0) {
		t.Error("zero sections should always be done")
	}
	if r.Done(3, 0) {
		t.Error("Done(3, 0) should be false")
	}
	// Last section index 2 starts at tick 4 and needs Stages-1 more ticks.
	lastTick := 2*r.Stagger + r.Stages - 1
	if !r.Done(3, lastTick) {
		t.Errorf("Done(3, %d) should be true", lastTick)
	}
	if r.Done(3, lastTick-1) {
		t.Errorf("Done(3, %d) should be false", lastTick-1)
	}
}

func TestRenderProgressBar(t *testing.T) {
	if got := RenderProgressBar(10, 0); got != "----------" {
		t.Errorf("0%% bar = %q", got)
	}
	if got := RenderProgressBar(10, 100); got != "##########" {
		t.Errorf("100%% bar = %q", got)
	}
	if got := RenderProgressBar(0, 50); got != "" {
		t.Errorf("zero-width bar = %q", got)
	}
	// Out-of-range percents clamp.
	if got := RenderProgressBar(4, 150); got != "####" {
		t.Errorf("clamped bar = %q", got)
	}
	if got := RenderProgressBar(10, 50); len(got) != 10 {
		t.Errorf("bar length = %d, want 10", len(got))
	}
}

func TestSpinnerDuration(t *testing.T) {
	if LineSpinner.Duration() <= 0 {
		t.Error("spinner duration must be positive")
	}
}
