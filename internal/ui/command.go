package ui

// Kind enumerates the semantic commands the key translator can produce.
type Kind int

const (
	KindQuit Kind = iota
	KindBack
	KindConfirm
	KindToggleSearch
	KindToggleFilter
	KindToggleSelect
	KindToggleSelectAllUpgradable
	KindStartSync
	KindNavigate
	KindTabCycle
)

// Move is the direction payload carried by Navigate and TabCycle commands.
type Move int

const (
	MoveFirst Move = iota
	MoveLast
	MoveNext
	MovePrevious
	MovePageUp
	MovePageDown
)

// Command is one semantic input command. How a command is interpreted
// depends on the current session mode; producing it does not.
type Command struct {
	Kind Kind
	Move Move
}
