package state

import (
	"fmt"
	"testing"

	"github.com/atomicstack/pacsift/internal/pacman"
)

func listOfSize(n int) *List {
	packages := make([]pacman.Package, n)
	for i := range packages {
		packages[i] = pkg(fmt.Sprintf("pkg-%03d", i), false)
	}
	return NewList(packages)
}

func TestMoveCursorFirstAndLast(t *testing.T) {
	l := newTestList(pkg("a", false), pkg("b", false), pkg("c", false))
	l.Cursor = 1
	if !l.MoveCursorLast() {
		t.Fatalf("expected movement to last")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorFirst() {
		t.Fatalf("expected movement to first")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestList()
	if empty.MoveCursorFirst() || empty.MoveCursorLast() {
		t.Fatalf("expected no movement for empty list")
	}
}

func TestMoveCursorClampsWithoutWraparound(t *testing.T) {
	l := newTestList(pkg("a", false), pkg("b", false))
	if l.MoveCursorPrevious() {
		t.Fatalf("expected no movement above the first row")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor pinned at 0, got %d", l.Cursor)
	}
	if !l.MoveCursorNext() {
		t.Fatalf("expected movement to second row")
	}
	if l.MoveCursorNext() {
		t.Fatalf("expected no movement past the last row")
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor pinned at 1, got %d", l.Cursor)
	}
}

func TestMoveCursorPageJumps(t *testing.T) {
	l := listOfSize(60)
	if !l.MoveCursorPageDown() {
		t.Fatalf("expected page down to move")
	}
	if l.Cursor != PageJump {
		t.Fatalf("expected cursor %d, got %d", PageJump, l.Cursor)
	}
	l.MoveCursorPageDown()
	l.MoveCursorPageDown()
	if l.Cursor != 59 {
		t.Fatalf("expected page down clamped to last row, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp() {
		t.Fatalf("expected page up to move")
	}
	if l.Cursor != 59-PageJump {
		t.Fatalf("expected cursor %d, got %d", 59-PageJump, l.Cursor)
	}
	l.MoveCursorPageUp()
	l.MoveCursorPageUp()
	if l.Cursor != 0 {
		t.Fatalf("expected page up clamped to 0, got %d", l.Cursor)
	}
}

func TestCursorStaysInBoundsUnderNavigationSequences(t *testing.T) {
	l := listOfSize(7)
	moves := []func() bool{
		l.MoveCursorNext, l.MoveCursorPageDown, l.MoveCursorLast,
		l.MoveCursorNext, l.MoveCursorPageUp, l.MoveCursorPrevious,
		l.MoveCursorFirst, l.MoveCursorPrevious, l.MoveCursorPageDown,
	}
	for i, move := range moves {
		move()
		if l.Cursor < 0 || l.Cursor >= l.Len() {
			t.Fatalf("cursor %d out of bounds after move %d", l.Cursor, i)
		}
	}
}

func TestEnsureCursorVisibleTracksViewport(t *testing.T) {
	l := listOfSize(30)
	l.Cursor = 20
	l.EnsureCursorVisible(10)
	if l.ViewportOffset != 11 {
		t.Fatalf("expected offset 11, got %d", l.ViewportOffset)
	}
	l.Cursor = 5
	l.EnsureCursorVisible(10)
	if l.ViewportOffset != 5 {
		t.Fatalf("expected offset 5, got %d", l.ViewportOffset)
	}
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset without viewport, got %d", l.ViewportOffset)
	}
}
