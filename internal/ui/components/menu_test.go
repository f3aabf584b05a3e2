// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
)

func TestMenu_ToggleAndClose(t *testing.T) {
	m := NewMenu(testStyles())

	if m.IsOpen() {
		t.Fatal("menu should start closed")
	}
	if m.View() != "" {
		t.Error("closed menu should render nothing")
	}

	m.Toggle()
	if !m.IsOpen() {
		t.Fatal("Toggle should open the menu")
	}
	if m.View() == "" {
		t.Error("open menu should render")
	}

	m.Close()
	if m.IsOpen() {
		t.Error("Close should collapse the menu")
	}
}

func TestMenu_CursorMovement(t *testing.T) {
	m := NewMenu(testStyles())
	m.Toggle()

	if m.Selected() != PageHome {
		t.Errorf("initial selection = %v, want Home", m.Selected())
	}

	m.MoveUp() // already at top
	if m.Selected() != PageHome {
		t.Error("MoveUp at top should not move")
	}

	m.MoveDown()
	if m.Selected() != PagePosts {
		t.Errorf("after MoveDown selection = %v, want Posts", m.Selected())
	}

	// Run past the bottom.
	for i := 0; i < 10; i++ {
		m.MoveDown()
	}
	if m.Selected() != NavPages[len(NavPages)-1] {
		t.Errorf("MoveDown past bottom = %v, want %v", m.Selected(), NavPages[len(NavPages)-1])
	}
}

func TestMenu_ToggleResetsCursor(t *testing.T) {
	m := NewMenu(testStyles())
	m.Toggle()
	m.MoveDown()
	m.MoveDown()

	m.Toggle() // close
	m.Toggle() // reopen
	if m.Selected() != PageHome {
		t.Errorf("reopened menu selection = %v, want Home", m.Selected())
	}
}

func TestMenu_ViewListsAllPages(t *testing.T) {
	m := NewMenu(testStyles())
	m.Toggle()

	got := m.View()
	for _, p := range NavPages {
		if !strings.Contains(got, p.String()) {
			t.Errorf("menu missing page %s", p)
		}
	}
}
