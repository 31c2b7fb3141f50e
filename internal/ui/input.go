package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Translate maps one key press to a semantic command. The mapping is total
// and pure: a given key always yields the same command (or none), no matter
// what mode the session is in. Unmapped keys return ok=false so text-entry
// widgets can consume the raw message instead.
func Translate(msg tea.KeyMsg) (Command, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		return Command{Kind: KindQuit}, true
	case "esc":
		return Command{Kind: KindBack}, true
	case "enter":
		return Command{Kind: KindConfirm}, true
	case "/":
		return Command{Kind: KindToggleSearch}, true
	case "alt+u":
		return Command{Kind: KindToggleFilter}, true
	case "x":
		return Command{Kind: KindToggleSelect}, true
	case "X":
		return Command{Kind: KindToggleSelectAllUpgradable}, true
	case "S":
		return Command{Kind: KindStartSync}, true
	case "tab":
		return Command{Kind: KindTabCycle, Move: MoveNext}, true
	case "shift+tab":
		return Command{Kind: KindTabCycle, Move: MovePrevious}, true
	case "j", "down":
		return Command{Kind: KindNavigate, Move: MoveNext}, true
	case "k", "up":
		return Command{Kind: KindNavigate, Move: MovePrevious}, true
	case "g", "home":
		return Command{Kind: KindNavigate, Move: MoveFirst}, true
	case "G", "end":
		return Command{Kind: KindNavigate, Move: MoveLast}, true
	case "ctrl+d", "pgdown":
		return Command{Kind: KindNavigate, Move: MovePageDown}, true
	case "ctrl+u", "pgup":
		return Command{Kind: KindNavigate, Move: MovePageUp}, true
	}
	return Command{}, false
}
