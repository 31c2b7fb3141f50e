package state

// Selection tracks the set of package names picked for the next sync. Names
// survive filter changes because indices do not.
type Selection struct {
	members map[string]struct{}
}

// NewSelection returns an empty selection set.
func NewSelection() *Selection {
	return &Selection{members: make(map[string]struct{})}
}

// Contains reports whether the named package is selected.
func (s *Selection) Contains(name string) bool {
	if s == nil || s.members == nil {
		return false
	}
	_, ok := s.members[name]
	return ok
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool {
	return s.Len() == 0
}

// Len returns the number of selected packages.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Toggle flips membership for the given name.
func (s *Selection) Toggle(name string) {
	if name == "" {
		return
	}
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	if _, ok := s.members[name]; ok {
		delete(s.members, name)
	} else {
		s.members[name] = struct{}{}
	}
}

// ToggleUpgradables bulk-toggles the provided upgradable names: when the set
// is empty they are all added, otherwise they are all removed.
func (s *Selection) ToggleUpgradables(names []string) {
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	if len(s.members) == 0 {
		for _, name := range names {
			s.members[name] = struct{}{}
		}
		return
	}
	for _, name := range names {
		delete(s.members, name)
	}
}

// Cleanup drops selections that no longer exist in the package table.
func (s *Selection) Cleanup(exists func(string) bool) {
	if s == nil || len(s.members) == 0 || exists == nil {
		return
	}
	for name := range s.members {
		if !exists(name) {
			delete(s.members, name)
		}
	}
}

// Clear removes every selected name.
func (s *Selection) Clear() {
	for name := range s.members {
		delete(s.members, name)
	}
}

// Names returns the selected packages present in the list's table, in the
// table's source order. Stale names are skipped.
func (s *Selection) Names(l *List) []string {
	if s.Len() == 0 || l == nil {
		return nil
	}
	names := make([]string, 0, s.Len())
	for _, pkg := range l.full {
		if s.Contains(pkg.Name) {
			names = append(names, pkg.Name)
		}
	}
	return names
}
