package state

// MoveCursorFirst moves the cursor to the first row.
func (l *List) MoveCursorFirst() bool {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorLast moves the cursor to the last row.
func (l *List) MoveCursorLast() bool {
	n := len(l.Rows)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveCursorNext moves the cursor one row down, clamped at the end.
func (l *List) MoveCursorNext() bool {
	return l.moveCursorBy(1)
}

// MoveCursorPrevious moves the cursor one row up, clamped at the start.
func (l *List) MoveCursorPrevious() bool {
	return l.moveCursorBy(-1)
}

// MoveCursorPageUp jumps the cursor up by PageJump rows.
func (l *List) MoveCursorPageUp() bool {
	return l.moveCursorBy(-PageJump)
}

// MoveCursorPageDown jumps the cursor down by PageJump rows.
func (l *List) MoveCursorPageDown() bool {
	return l.moveCursorBy(PageJump)
}

func (l *List) moveCursorBy(delta int) bool {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
	return l.Cursor != old
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays within
// the visible window.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.clampCursor()
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
