package state

import (
	"strings"

	"github.com/atomicstack/pacsift/internal/pacman"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// PageJump is the cursor distance covered by PageUp/PageDown.
const PageJump = 25

// Row is one visible entry of the filtered package list.
type Row struct {
	Name       string
	Upgradable bool
}

// List is the filtered package list view model. Rows is recomputed from the
// full package table on every query or filter change and indexed directly,
// so the package under the cursor is never re-derived by re-filtering.
type List struct {
	full   []pacman.Package
	byName map[string]int

	Rows            []Row
	Query           string
	UpgradablesOnly bool
	Cursor          int
	ViewportOffset  int
}

// NewList constructs a list over the provided packages.
func NewList(packages []pacman.Package) *List {
	l := &List{}
	l.SetPackages(packages)
	return l
}

// SetPackages replaces the underlying package table, preserving the query
// and filter flag. The cursor is re-clamped against the new rows.
func (l *List) SetPackages(packages []pacman.Package) {
	l.full = append([]pacman.Package(nil), packages...)
	l.byName = make(map[string]int, len(l.full))
	for i, pkg := range l.full {
		l.byName[pkg.Name] = i
	}
	l.rebuild()
}

// SetQuery updates the fuzzy query and recomputes the rows. A non-empty
// query moves the cursor to the first match.
func (l *List) SetQuery(query string) {
	l.Query = query
	l.rebuild()
	if strings.TrimSpace(query) != "" {
		l.Cursor = 0
	}
}

// ToggleUpgradableFilter flips the upgradable-only flag and recomputes the
// rows.
func (l *List) ToggleUpgradableFilter() {
	l.UpgradablesOnly = !l.UpgradablesOnly
	l.rebuild()
}

func (l *List) rebuild() {
	query := strings.TrimSpace(l.Query)
	l.Rows = l.Rows[:0]
	for _, pkg := range l.full {
		if l.UpgradablesOnly && !pkg.Upgradable() {
			continue
		}
		if query != "" && !fuzzy.MatchNormalizedFold(query, pkg.Name) {
			continue
		}
		l.Rows = append(l.Rows, Row{Name: pkg.Name, Upgradable: pkg.Upgradable()})
	}
	l.clampCursor()
}

func (l *List) clampCursor() {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
	if l.ViewportOffset > len(l.Rows)-1 {
		l.ViewportOffset = 0
	}
}

// Len returns the number of visible rows.
func (l *List) Len() int {
	return len(l.Rows)
}

// Total returns the size of the underlying package table.
func (l *List) Total() int {
	return len(l.full)
}

// UpgradableCount returns how many packages in the table have an upgrade.
func (l *List) UpgradableCount() int {
	count := 0
	for _, pkg := range l.full {
		if pkg.Upgradable() {
			count++
		}
	}
	return count
}

// UpgradableNames returns the names of all upgradable packages in source
// order, regardless of the current filter.
func (l *List) UpgradableNames() []string {
	var names []string
	for _, pkg := range l.full {
		if pkg.Upgradable() {
			names = append(names, pkg.Name)
		}
	}
	return names
}

// CurrentName returns the package name under the cursor.
func (l *List) CurrentName() (string, bool) {
	if len(l.Rows) == 0 || l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return "", false
	}
	return l.Rows[l.Cursor].Name, true
}

// CurrentPackage returns the full package record under the cursor.
func (l *List) CurrentPackage() (pacman.Package, bool) {
	name, ok := l.CurrentName()
	if !ok {
		return pacman.Package{}, false
	}
	return l.Package(name)
}

// Package looks up a package by name in the underlying table.
func (l *List) Package(name string) (pacman.Package, bool) {
	idx, ok := l.byName[name]
	if !ok {
		return pacman.Package{}, false
	}
	return l.full[idx], true
}

// Contains reports whether the named package exists in the table.
func (l *List) Contains(name string) bool {
	_, ok := l.byName[name]
	return ok
}
