package pacman

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// dateLayouts covers pacman's date renderings: the C-locale asctime form
// produced under LC_ALL=C, plus the long en_US form in case the
// environment override did not take.
var dateLayouts = []string{
	time.ANSIC,
	"Mon 02 Jan 2006 03:04:05 PM MST",
}

// CLI queries the local package database through the pacman binary.
type CLI struct {
	Bin string
}

// NewCLI returns a Source backed by the given pacman binary. An empty path
// falls back to "pacman" on $PATH.
func NewCLI(bin string) *CLI {
	if strings.TrimSpace(bin) == "" {
		bin = "pacman"
	}
	return &CLI{Bin: bin}
}

// Packages loads every installed package and merges in available upgrades.
func (c *CLI) Packages() ([]Package, error) {
	info, err := c.run("-Qi")
	if err != nil {
		return nil, fmt.Errorf("query installed packages: %w", err)
	}
	packages := ParseInfo(info)

	// -Qu exits 1 when nothing is upgradable; only a failure to run the
	// binary at all is fatal here.
	upgrades, err := c.run("-Qu")
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("query upgradable packages: %w", err)
		}
	}
	MergeUpgrades(packages, ParseUpgrades(upgrades))
	return packages, nil
}

func (c *CLI) run(args ...string) (string, error) {
	cmd := exec.Command(c.Bin, args...)
	cmd.Env = append(cmd.Environ(), "LC_ALL=C")
	out, err := cmd.Output()
	return string(out), err
}

// ParseInfo parses `pacman -Qi` output into packages, preserving the
// database order pacman reports.
func ParseInfo(out string) []Package {
	var (
		packages []Package
		current  Package
		field    string
		started  bool
	)
	flush := func() {
		if started && current.Name != "" {
			packages = append(packages, current)
		}
		current = Package{}
		started = false
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			field = ""
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			// continuation of the previous field
			applyField(&current, field, strings.TrimSpace(line))
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		field = strings.TrimSpace(key)
		started = true
		applyField(&current, field, strings.TrimSpace(value))
	}
	flush()
	return packages
}

func applyField(p *Package, field, value string) {
	switch field {
	case "Name":
		p.Name = value
	case "Version":
		p.Version = value
	case "Description":
		if p.Description != "" {
			value = p.Description + " " + value
		}
		p.Description = value
	case "Architecture":
		p.Architecture = noneToEmpty(value)
	case "URL":
		p.URL = noneToEmpty(value)
	case "Licenses":
		p.Licenses = append(p.Licenses, splitList(value)...)
	case "Provides":
		p.Provides = append(p.Provides, splitList(value)...)
	case "Depends On":
		p.Depends = append(p.Depends, splitList(value)...)
	case "Optional Deps":
		if v := noneToEmpty(value); v != "" {
			p.OptDepends = append(p.OptDepends, v)
		}
	case "Conflicts With":
		p.Conflicts = append(p.Conflicts, splitList(value)...)
	case "Replaces":
		p.Replaces = append(p.Replaces, splitList(value)...)
	case "Installed Size":
		if size, err := humanize.ParseBytes(value); err == nil {
			p.Size = size
		}
	case "Packager":
		p.Packager = noneToEmpty(value)
	case "Install Date":
		if t, ok := parseDate(value); ok {
			p.InstallDate = t
		}
	}
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func noneToEmpty(value string) string {
	if value == "None" {
		return ""
	}
	return value
}

// splitList splits a whitespace-separated pacman field value. "None" marks
// an empty field.
func splitList(value string) []string {
	if value == "" || value == "None" {
		return nil
	}
	return strings.Fields(value)
}

// ParseUpgrades parses `pacman -Qu` lines of the form
// "name oldver -> newver" into a name-to-new-version map.
func ParseUpgrades(out string) map[string]string {
	upgrades := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[2] != "->" {
			continue
		}
		if strings.Contains(line, "[ignored]") {
			continue
		}
		upgrades[fields[0]] = fields[3]
	}
	return upgrades
}

// MergeUpgrades fills NewVersion on every package present in the upgrade map.
func MergeUpgrades(packages []Package, upgrades map[string]string) {
	if len(upgrades) == 0 {
		return
	}
	for i := range packages {
		if v, ok := upgrades[packages[i].Name]; ok {
			packages[i].NewVersion = v
		}
	}
}
