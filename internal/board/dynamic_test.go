package board

import "testing"

func TestSetGrowsRightAndDown(t *testing.T) {
	b := NewDynamic(3, 3)
	if err := b.Set(5, 4, Alive); err != nil {
		t.Fatalf("growing write failed: %v", err)
	}
	if b.Width() != 6 || b.Height() != 5 {
		t.Fatalf("board grew to %dx%d, want 6x5", b.Width(), b.Height())
	}
	if b.Get(5, 4) != Alive {
		t.Fatal("written cell not alive after growth")
	}
	if b.CellsAlive() != 1 {
		t.Fatalf("cellsAlive = %d, want 1", b.CellsAlive())
	}
}

func TestSetGrowsLeftAndShiftsCells(t *testing.T) {
	b := NewDynamic(3, 3)
	b.Set(1, 1, Alive)

	// A write at a negative column inserts columns on the left; the write
	// itself lands in the new column 0 and existing cells shift right.
	if err := b.Set(-2, 1, Alive); err != nil {
		t.Fatalf("left-growing write failed: %v", err)
	}
	if b.Width() != 5 {
		t.Fatalf("width = %d after left growth, want 5", b.Width())
	}
	if b.Get(0, 1) != Alive {
		t.Fatal("left-growing write did not land at column 0")
	}
	if b.Get(3, 1) != Alive {
		t.Fatal("existing cell did not shift right by the inserted amount")
	}
}

func TestEdgeWritesFlagRuntimeExpansion(t *testing.T) {
	b := NewDynamic(4, 4)
	b.Set(0, 2, Alive)

	if !b.pendLeft {
		t.Fatal("live write at column 0 must flag the left edge")
	}

	b.ExpandDuringRuntime()
	if b.Width() != 5 {
		t.Fatalf("width = %d after runtime expansion, want 5", b.Width())
	}
	if b.Get(1, 2) != Alive {
		t.Fatal("live cell did not shift one column right")
	}
	if !b.HasExpandedLeft() {
		t.Fatal("left expansion must set the occurred flag")
	}
	if b.HasExpandedLeft() {
		t.Fatal("occurred flag must clear on read")
	}

	// The pending flag was consumed; a second pass must not grow again.
	b.ExpandDuringRuntime()
	if b.Width() != 5 {
		t.Fatalf("width = %d after second pass, want 5", b.Width())
	}
}

func TestExpandDuringRuntimeAllEdges(t *testing.T) {
	b := NewDynamic(3, 3)
	b.Set(0, 1, Alive)
	b.Set(2, 1, Alive)
	b.Set(1, 0, Alive)
	b.Set(1, 2, Alive)

	b.ExpandDuringRuntime()
	if b.Width() != 5 || b.Height() != 5 {
		t.Fatalf("board = %dx%d after all-edge expansion, want 5x5", b.Width(), b.Height())
	}
	if !b.HasExpandedLeft() || !b.HasExpandedUp() {
		t.Fatal("left/up occurred flags not set")
	}
	// All four cells shifted by the left/up insertions.
	for _, c := range [][2]int{{1, 2}, {3, 2}, {2, 1}, {2, 3}} {
		if b.Get(c[0], c[1]) != Alive {
			t.Fatalf("cell (%d,%d) not alive after expansion", c[0], c[1])
		}
	}
}

func TestWritePastDrawLimit(t *testing.T) {
	b := NewDynamic(MaxDrawSize, 1)
	clone := b.Clone()

	if err := b.Set(MaxDrawSize+1, 0, Alive); err != ErrEdgeLimit {
		t.Fatalf("write past MaxDrawSize returned %v, want ErrEdgeLimit", err)
	}
	if b.Width() != clone.Width() || b.CellsAlive() != clone.CellsAlive() {
		t.Fatal("rejected write mutated the board")
	}
}

func TestRuntimeExpansionRespectsLimit(t *testing.T) {
	b := NewDynamic(RuntimeExpansionLimit, 3)
	b.Set(RuntimeExpansionLimit-1, 1, Alive)
	b.Set(1, 0, Alive)

	b.ExpandDuringRuntime()
	if b.Width() != RuntimeExpansionLimit {
		t.Fatalf("width grew past the runtime limit to %d", b.Width())
	}
	if b.Height() != 4 {
		t.Fatalf("height = %d, want 4; the other axis is still below the limit", b.Height())
	}
}

func TestSetNonExpandableFreezesGrid(t *testing.T) {
	b := NewDynamic(3, 3)
	b.Set(0, 0, Alive)
	b.SetNonExpandable()

	b.Set(10, 10, Alive)
	b.ExpandDuringRuntime()
	if b.Width() != 3 || b.Height() != 3 {
		t.Fatalf("frozen board grew to %dx%d", b.Width(), b.Height())
	}
	if b.CellsAlive() != 1 {
		t.Fatalf("cellsAlive = %d on frozen board, want 1", b.CellsAlive())
	}
}

func TestResize(t *testing.T) {
	b := NewDynamic(4, 7)
	b.Set(1, 1, Alive)

	b.Resize(0)
	if b.Width() != 4 || b.Height() != 7 {
		t.Fatal("Resize(0) must be a no-op")
	}

	b.Resize(5)
	if b.Width() != 5 || b.Height() != 5 {
		t.Fatalf("board = %dx%d after Resize(5), want 5x5", b.Width(), b.Height())
	}
	if b.CellsAlive() != 0 {
		t.Fatalf("cellsAlive = %d after resize, want 0", b.CellsAlive())
	}
}

func TestOversizedBoardAllowedAtConstruction(t *testing.T) {
	b := NewDynamic(MaxDrawSize+200, 2)
	if b.Width() != MaxDrawSize+200 {
		t.Fatalf("width = %d, want %d", b.Width(), MaxDrawSize+200)
	}
	// In-bounds writes still work on an oversized board.
	if err := b.Set(MaxDrawSize+100, 1, Alive); err != nil {
		t.Fatalf("in-bounds write on oversized board failed: %v", err)
	}
	// Growth is exhausted, so an out-of-range write reports the limit.
	if err := b.Set(MaxDrawSize+200, 0, Alive); err != ErrEdgeLimit {
		t.Fatalf("out-of-range write on oversized board returned %v, want ErrEdgeLimit", err)
	}
}
