package pacman

import "time"

// Package describes one installed package as reported by pacman. The browser
// treats every field as read-only display data; Name is the identity key.
type Package struct {
	Name         string
	Version      string
	NewVersion   string
	Description  string
	Architecture string
	URL          string
	Licenses     []string
	Provides     []string
	Depends      []string
	OptDepends   []string
	Conflicts    []string
	Replaces     []string
	Size         uint64
	Packager     string
	InstallDate  time.Time
}

// Upgradable reports whether a newer version is available from the sync
// databases.
func (p Package) Upgradable() bool {
	return p.NewVersion != ""
}

// Source supplies the installed package table. The UI re-queries it after a
// completed sync; implementations must return packages in a stable order.
type Source interface {
	Packages() ([]Package, error)
}
