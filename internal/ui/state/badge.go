package state

// Badge classifies how a list row renders its selection state.
type Badge int

const (
	// BadgePlain rows carry no selection decoration.
	BadgePlain Badge = iota
	// BadgeSelected rows are members of the selection set.
	BadgeSelected
	// BadgeDimmed rows are upgradable but unselected while other packages
	// are selected; the view de-emphasizes them.
	BadgeDimmed
)

// BadgeFor derives the row badge from the three selection-relevant facts.
// Selected rows always win; once any selection exists, upgradable rows that
// were passed over render dimmed.
func BadgeFor(upgradable, selected, selectionEmpty bool) Badge {
	switch {
	case selected:
		return BadgeSelected
	case upgradable && !selectionEmpty:
		return BadgeDimmed
	default:
		return BadgePlain
	}
}
