package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTranslateMapsKeys(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want Command
	}{
		{"q", runeKey('q'), Command{Kind: KindQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, Command{Kind: KindQuit}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, Command{Kind: KindBack}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, Command{Kind: KindConfirm}},
		{"slash", runeKey('/'), Command{Kind: KindToggleSearch}},
		{"alt+u", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}, Alt: true}, Command{Kind: KindToggleFilter}},
		{"x", runeKey('x'), Command{Kind: KindToggleSelect}},
		{"X", runeKey('X'), Command{Kind: KindToggleSelectAllUpgradable}},
		{"S", runeKey('S'), Command{Kind: KindStartSync}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, Command{Kind: KindTabCycle, Move: MoveNext}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, Command{Kind: KindTabCycle, Move: MovePrevious}},
		{"j", runeKey('j'), Command{Kind: KindNavigate, Move: MoveNext}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, Command{Kind: KindNavigate, Move: MoveNext}},
		{"k", runeKey('k'), Command{Kind: KindNavigate, Move: MovePrevious}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, Command{Kind: KindNavigate, Move: MovePrevious}},
		{"g", runeKey('g'), Command{Kind: KindNavigate, Move: MoveFirst}},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, Command{Kind: KindNavigate, Move: MoveFirst}},
		{"G", runeKey('G'), Command{Kind: KindNavigate, Move: MoveLast}},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, Command{Kind: KindNavigate, Move: MoveLast}},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, Command{Kind: KindNavigate, Move: MovePageDown}},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, Command{Kind: KindNavigate, Move: MovePageDown}},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, Command{Kind: KindNavigate, Move: MovePageUp}},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, Command{Kind: KindNavigate, Move: MovePageUp}},
	}
	for _, tc := range cases {
		got, ok := Translate(tc.msg)
		if !ok {
			t.Fatalf("%s: expected key to translate", tc.name)
		}
		if got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestTranslateUnmappedKeysFallThrough(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		runeKey('a'),
		runeKey('Z'),
		runeKey('1'),
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyLeft},
	} {
		if cmd, ok := Translate(msg); ok {
			t.Fatalf("expected %q to be unmapped, got %+v", msg.String(), cmd)
		}
	}
}

func TestTranslateIsStable(t *testing.T) {
	msg := runeKey('x')
	first, _ := Translate(msg)
	second, _ := Translate(msg)
	if first != second {
		t.Fatalf("translation changed between calls: %+v vs %+v", first, second)
	}
}
