package state

import "testing"

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := NewSelection()
	s.Toggle("vim")
	if !s.Contains("vim") || s.Len() != 1 {
		t.Fatalf("expected vim selected")
	}
	s.Toggle("vim")
	if s.Contains("vim") || !s.Empty() {
		t.Fatalf("expected second toggle to restore the empty set")
	}
}

func TestToggleUpgradablesBulkCycle(t *testing.T) {
	s := NewSelection()
	upgradables := []string{"a", "c"}

	s.ToggleUpgradables(upgradables)
	if s.Len() != 2 || !s.Contains("a") || !s.Contains("c") {
		t.Fatalf("expected a and c selected, got %d members", s.Len())
	}
	if s.Contains("b") {
		t.Fatalf("did not expect non-upgradable b")
	}

	s.ToggleUpgradables(upgradables)
	if !s.Empty() {
		t.Fatalf("expected second bulk toggle to empty the set, got %d", s.Len())
	}
}

func TestToggleUpgradablesActsAsBulkRemoveWhenNonEmpty(t *testing.T) {
	s := NewSelection()
	s.Toggle("manual")
	s.ToggleUpgradables([]string{"a", "c"})
	if s.Contains("a") || s.Contains("c") {
		t.Fatalf("expected bulk toggle on a non-empty set to remove, not add")
	}
	if !s.Contains("manual") {
		t.Fatalf("expected unrelated selection to survive")
	}
}

func TestCleanupDropsStaleNames(t *testing.T) {
	s := NewSelection()
	s.Toggle("kept")
	s.Toggle("gone")
	s.Cleanup(func(name string) bool { return name == "kept" })
	if !s.Contains("kept") || s.Contains("gone") {
		t.Fatalf("expected only kept to survive cleanup")
	}
}

func TestNamesReturnsSourceOrderAndSkipsStale(t *testing.T) {
	l := newTestList(pkg("alpha", true), pkg("beta", false), pkg("gamma", true))
	s := NewSelection()
	s.Toggle("gamma")
	s.Toggle("alpha")
	s.Toggle("stale")
	names := s.Names(l)
	if len(names) != 2 || names[0] != "alpha" || names[1] != "gamma" {
		t.Fatalf("expected [alpha gamma], got %v", names)
	}
}

func TestClear(t *testing.T) {
	s := NewSelection()
	s.Toggle("a")
	s.Toggle("b")
	s.Clear()
	if !s.Empty() {
		t.Fatalf("expected cleared set")
	}
}
