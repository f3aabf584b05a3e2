// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"errors"
	"testing"
)

// =============================================================================
// TEST FAKES
// =============================================================================

// fakeStore is an in-memory PreferenceStore with controllable failure modes.
type fakeStore struct {
	value   string // raw stored value, validated through Parse like FileStore
	present bool
	saveErr error
	saves   []Theme
}

func (s *fakeStore) Load() (Theme, bool) {
	if !s.present {
		return "", false
	}
	return Parse(s.value)
}

func (s *fakeStore) Save(t Theme) error {
	s.saves = append(s.saves, t)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.value = t.String()
	s.present = true
	return nil
}

// fakeDetector is a SchemeDetector with a fixed reading.
type fakeDetector struct {
	dark bool
	ok   bool
}

func (d *fakeDetector) IsDark() (bool, bool) { return d.dark, d.ok }

// fakeApplier records every theme application and toggle-target update.
type fakeApplier struct {
	applied []Theme
	targets []Theme
}

func (a *fakeApplier) ApplyTheme(t Theme)      { a.applied = append(a.applied, t) }
func (a *fakeApplier) SetToggleTarget(t Theme) { a.targets = append(a.targets, t) }

func (a *fakeApplier) lastApplied() Theme {
	if len(a.applied) == 0 {
		return ""
	}
	return a.applied[len(a.applied)-1]
}

func (a *fakeApplier) lastTarget() Theme {
	if len(a.targets) == 0 {
		return ""
	}
	return a.targets[len(a.targets)-1]
}

func newTestController(store *fakeStore, det *fakeDetector) (*Controller, *fakeApplier) {
	applier := &fakeApplier{}
	return NewController(store, det, applier), applier
}

// =============================================================================
// INITIAL RESOLUTION
// =============================================================================

func TestResolveInitial_StoredPreferenceWins(t *testing.T) {
	// Stored dark beats a light system scheme, and vice versa.
	tests := []struct {
		name       string
		stored     string
		systemDark bool
		want       Theme
	}{
		{"stored dark over light system", "dark", false, Dark},
		{"stored light over dark system", "light", true, Light},
		{"stored dark matching system", "dark", true, Dark},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, _ := newTestController(
				&fakeStore{value: tc.stored, present: true},
				&fakeDetector{dark: tc.systemDark, ok: true},
			)
			if got := ctrl.ResolveInitial(); got != tc.want {
				t.Errorf("ResolveInitial() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveInitial_CorruptedStoreFallsBackToSystem(t *testing.T) {
	// Anything other than exactly "light" or "dark" is ignored.
	for _, garbage := range []string{"", "auto", "DARKMODE", "0", "null", "☼"} {
		ctrl, _ := newTestController(
			&fakeStore{value: garbage, present: true},
			&fakeDetector{dark: true, ok: true},
		)
		if got := ctrl.ResolveInitial(); got != Dark {
			t.Errorf("stored %q: ResolveInitial() = %q, want dark from system", garbage, got)
		}
	}
}

func TestResolveInitial_AbsentStoreUsesSystem(t *testing.T) {
	ctrl, _ := newTestController(&fakeStore{}, &fakeDetector{dark: true, ok: true})
	if got := ctrl.ResolveInitial(); got != Dark {
		t.Errorf("ResolveInitial() = %q, want dark", got)
	}

	ctrl, _ = newTestController(&fakeStore{}, &fakeDetector{dark: false, ok: true})
	if got := ctrl.ResolveInitial(); got != Light {
		t.Errorf("ResolveInitial() = %q, want light", got)
	}
}

func TestResolveInitial_NothingAvailableDefaultsToLight(t *testing.T) {
	ctrl, _ := newTestController(&fakeStore{}, &fakeDetector{ok: false})
	if got := ctrl.ResolveInitial(); got != Light {
		t.Errorf("ResolveInitial() = %q, want the light default", got)
	}
}

func TestInit_AppliesBeforeReturning(t *testing.T) {
	ctrl, applier := newTestController(&fakeStore{}, &fakeDetector{dark: true, ok: true})

	got := ctrl.Init()
	if got != Dark {
		t.Fatalf("Init() = %q, want dark", got)
	}
	if applier.lastApplied() != Dark {
		t.Error("Init() must apply the resolved theme")
	}
	if applier.lastTarget() != Light {
		t.Error("toggle control must advertise the opposite theme")
	}
	if ctrl.Applied() != Dark {
		t.Error("Applied() should report the applied theme")
	}
}

// =============================================================================
// TOGGLE
// =============================================================================

func TestToggle_FlipsAppliesAndPersists(t *testing.T) {
	store := &fakeStore{}
	ctrl, applier := newTestController(store, &fakeDetector{dark: false, ok: true})
	ctrl.Init() // light

	got := ctrl.Toggle()
	if got != Dark {
		t.Fatalf("Toggle() = %q, want dark", got)
	}
	if applier.lastApplied() != Dark {
		t.Error("Toggle() must apply the new theme")
	}
	if applier.lastTarget() != Light {
		t.Error("after toggling to dark the control must advertise light")
	}
	if stored, ok := store.Load(); !ok || stored != Dark {
		t.Errorf("store = (%q, %v), want dark preference persisted", stored, ok)
	}
}

func TestToggle_TwiceRoundTrips(t *testing.T) {
	store := &fakeStore{}
	ctrl, _ := newTestController(store, &fakeDetector{dark: false, ok: true})
	initial := ctrl.Init()

	ctrl.Toggle()
	second := ctrl.Toggle()

	if second != initial {
		t.Errorf("two toggles ended on %q, want original %q", second, initial)
	}
	if ctrl.Applied() != initial {
		t.Error("applied theme should be back to the original")
	}
	if stored, ok := store.Load(); !ok || stored != second {
		t.Errorf("store = (%q, %v), want the second toggle's result %q", stored, ok, second)
	}
	if len(store.saves) != 2 {
		t.Errorf("store written %d times, want once per toggle", len(store.saves))
	}
}

func TestToggle_SaveFailureIsSilent(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("storage disabled")}
	ctrl, applier := newTestController(store, &fakeDetector{dark: false, ok: true})
	ctrl.Init()

	got := ctrl.Toggle()
	if got != Dark {
		t.Fatalf("Toggle() = %q, want dark despite write failure", got)
	}
	if applier.lastApplied() != Dark {
		t.Error("the in-memory theme must still flip when the write fails")
	}
}

// =============================================================================
// SYSTEM SCHEME CHANGES
// =============================================================================

func TestOnSystemChange_NoOpWithStoredPreference(t *testing.T) {
	store := &fakeStore{}
	ctrl, applier := newTestController(store, &fakeDetector{dark: false, ok: true})
	ctrl.Init()    // light
	ctrl.Toggle()  // dark, persisted

	appliedBefore := len(applier.applied)
	targetsBefore := len(applier.targets)

	ctrl.OnSystemChange(false)
	ctrl.OnSystemChange(true)

	if len(applier.applied) != appliedBefore {
		t.Error("system changes must never re-apply the theme")
	}
	if len(applier.targets) != targetsBefore {
		t.Error("an explicit preference makes system changes a complete no-op")
	}
	if ctrl.Applied() != Dark {
		t.Errorf("applied theme drifted to %q", ctrl.Applied())
	}
}

func TestOnSystemChange_UpdatesToggleTargetOnly(t *testing.T) {
	ctrl, applier := newTestController(&fakeStore{}, &fakeDetector{dark: false, ok: true})
	ctrl.Init() // light applied, control advertises dark

	appliedBefore := len(applier.applied)

	ctrl.OnSystemChange(true)

	if len(applier.applied) != appliedBefore {
		t.Error("system change must not touch the applied theme marker")
	}
	// System now shows dark, so the control advertises switching to light.
	if applier.lastTarget() != Light {
		t.Errorf("toggle target = %q, want light", applier.lastTarget())
	}
	if ctrl.Applied() != Light {
		t.Errorf("applied theme = %q, want light untouched", ctrl.Applied())
	}
}

// =============================================================================
// END-TO-END SCENARIO
// =============================================================================

func TestScenario_ToggleSurvivesReload(t *testing.T) {
	// Store empty, system light: first run resolves light.
	store := &fakeStore{}
	det := &fakeDetector{dark: false, ok: true}

	ctrl, _ := newTestController(store, det)
	if got := ctrl.Init(); got != Light {
		t.Fatalf("first run resolved %q, want light", got)
	}

	// User toggles: dark applied, "dark" persisted.
	if got := ctrl.Toggle(); got != Dark {
		t.Fatalf("toggle produced %q, want dark", got)
	}
	if stored, ok := store.Load(); !ok || stored != Dark {
		t.Fatalf("store = (%q, %v), want dark", stored, ok)
	}

	// "Reload": a fresh controller over the same store resolves dark even
	// though the system still prefers light.
	ctrl2, _ := newTestController(store, det)
	if got := ctrl2.Init(); got != Dark {
		t.Errorf("after reload resolved %q, want dark from store", got)
	}
}
