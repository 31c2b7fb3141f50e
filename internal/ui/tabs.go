package ui

import "github.com/atomicstack/pacsift/internal/pacman"

// DepTab selects which dependency list of the current package is shown in
// the detail pane.
type DepTab int

const (
	TabDepends DepTab = iota
	TabOptional
	TabConflicts
	TabReplaces
)

// Next advances to the following tab, saturating at the last one.
func (t DepTab) Next() DepTab {
	if t >= TabReplaces {
		return t
	}
	return t + 1
}

// Previous retreats to the preceding tab, saturating at the first one.
func (t DepTab) Previous() DepTab {
	if t <= TabDepends {
		return t
	}
	return t - 1
}

// Title returns the display name of the tab.
func (t DepTab) Title() string {
	switch t {
	case TabDepends:
		return "dependencies"
	case TabOptional:
		return "optional deps"
	case TabConflicts:
		return "conflicts with"
	case TabReplaces:
		return "replaces"
	}
	return "unknown"
}

// Lines returns the dependency entries of the package for this tab.
func (t DepTab) Lines(p pacman.Package) []string {
	switch t {
	case TabDepends:
		return p.Depends
	case TabOptional:
		return p.OptDepends
	case TabConflicts:
		return p.Conflicts
	case TabReplaces:
		return p.Replaces
	}
	return nil
}

// AllTabs lists the tabs in display order.
func AllTabs() []DepTab {
	return []DepTab{TabDepends, TabOptional, TabConflicts, TabReplaces}
}
