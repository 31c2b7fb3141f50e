package ui

import (
	"strings"
	"testing"
)

func TestViewListsPackages(t *testing.T) {
	h := NewHarness(newTestModel(nil))
	view := h.View()
	for _, name := range []string{"bash", "vim", "zsh"} {
		if !strings.Contains(view, name) {
			t.Fatalf("expected %s in view", name)
		}
	}
	if !strings.Contains(view, "packages 3") || !strings.Contains(view, "upgradable 2") {
		t.Fatalf("expected counts in view, got %q", view)
	}
}

func TestViewShowsNoMatchesMessage(t *testing.T) {
	h := NewHarness(newTestModel(nil))
	h.SendKey("/")
	for _, r := range "nosuchpkg" {
		h.SendKey(string(r))
	}
	if view := h.View(); !strings.Contains(view, "No matches") {
		t.Fatalf("expected no-matches message, got %q", view)
	}
}

func TestViewShowsUpgradableFilter(t *testing.T) {
	h := NewHarness(newTestModel(nil))
	h.SendKey("alt+u")
	if view := h.View(); !strings.Contains(view, "showing upgradable only") {
		t.Fatalf("expected filter indicator, got %q", view)
	}
	if n := h.Model().List().Len(); n != 2 {
		t.Fatalf("expected only upgradable rows, got %d", n)
	}
}

func TestViewMarksSelection(t *testing.T) {
	h := NewHarness(newTestModel(nil))
	h.SendKey("x")
	if view := h.View(); !strings.Contains(view, "✔ bash") {
		t.Fatalf("expected selection marker on bash, got %q", view)
	}
}

func TestViewSyncConfirmation(t *testing.T) {
	h := NewHarness(newTestModel(nil))
	h.SendKey("X")
	h.SendKey("S")
	view := h.View()
	if !strings.Contains(view, "Sync packages?") {
		t.Fatalf("expected confirmation prompt, got %q", view)
	}
	if !strings.Contains(view, "vim") || !strings.Contains(view, "zsh") {
		t.Fatalf("expected pending package names, got %q", view)
	}
}

func TestViewEmptyWithoutDimensions(t *testing.T) {
	source := &fakeSource{packages: testPackages()}
	m := NewModel(source, source.packages, nil, Options{PacmanBin: "pacman"})
	if view := m.View(); view != "" {
		t.Fatalf("expected empty view before a window size arrives, got %q", view)
	}
}
