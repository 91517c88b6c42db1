package board

// Growth ceilings. A user-driven write may grow the board up to MaxDrawSize;
// growth triggered by a running simulation stops at the tighter
// RuntimeExpansionLimit so a runaway pattern cannot exhaust memory. A pattern
// file larger than either limit may still be loaded at its declared size.
const (
	MaxDrawSize           = 1900
	RuntimeExpansionLimit = 1200
)

// DynamicBoard is a board that grows on demand. A write outside the current
// grid expands it just far enough to include the target, subject to
// MaxDrawSize. Live cells written on an outer edge flag that edge for a
// one-cell expansion on the next ExpandDuringRuntime pass.
//
// Growing left or up renumbers every existing column or row; consumers that
// anchor coordinates to the board origin reconcile through the read-and-clear
// HasExpandedLeft and HasExpandedUp flags.
type DynamicBoard struct {
	w, h  int
	cells []uint8
	alive int

	expandable bool

	// Pending one-cell expansions, set by live writes on an edge and
	// consumed by ExpandDuringRuntime.
	pendLeft, pendRight, pendUp, pendDown bool

	// Expansions that shifted the origin, read-and-clear by the consumer.
	expandedLeft, expandedUp bool
}

var _ Board = (*DynamicBoard)(nil)

// NewDynamic allocates an all-dead expandable board. The constructor applies
// no growth limit, so a loaded pattern may exceed MaxDrawSize.
func NewDynamic(w, h int) *DynamicBoard {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &DynamicBoard{w: w, h: h, cells: make([]uint8, w*h), expandable: true}
}

// Get returns the state at (x, y), or Dead outside the grid.
func (b *DynamicBoard) Get(x, y int) uint8 {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return Dead
	}
	return b.cells[y*b.w+x]
}

// Set writes state at (x, y), growing the grid when the target lies outside
// it. Writes past the MaxDrawSize ceiling return ErrEdgeLimit with the board
// unchanged. A write that lands beyond a frozen (non-expandable) grid is a
// no-op. Live writes on the current outer edge flag that edge for runtime
// expansion.
func (b *DynamicBoard) Set(x, y int, state uint8) error {
	if state > Alive {
		return nil
	}

	if b.pastDrawLimit(x, b.w) || b.pastDrawLimit(y, b.h) {
		return ErrEdgeLimit
	}

	col, row := x, y
	if x >= b.w && b.expandable {
		b.growRight(x - b.w + 1)
	} else if x < 0 && b.expandable {
		b.growLeft(-x)
		col = 0
	}
	if y >= b.h && b.expandable {
		b.growDown(y - b.h + 1)
	} else if y < 0 && b.expandable {
		b.growUp(-y)
		row = 0
	}

	if col < 0 || col >= b.w || row < 0 || row >= b.h {
		return nil
	}

	idx := row*b.w + col
	b.alive += int(state) - int(b.cells[idx])
	b.cells[idx] = state

	if state == Alive {
		b.markEdges(col, row)
	}
	return nil
}

// pastDrawLimit reports whether a coordinate on an axis of the given extent
// lies outside the grid and beyond what MaxDrawSize allows the axis to grow.
func (b *DynamicBoard) pastDrawLimit(i, extent int) bool {
	if i >= 0 && i < extent {
		return false
	}
	return extent > MaxDrawSize || outOfBounds(i, extent) > MaxDrawSize-extent
}

// outOfBounds returns how far outside [0, extent) the coordinate lies,
// or 0 when it is inside.
func outOfBounds(i, extent int) int {
	switch {
	case i < 0:
		return -i
	case i >= extent:
		return i - extent + 1
	}
	return 0
}

// markEdges flags any outer edge the live cell at (x, y) touches.
func (b *DynamicBoard) markEdges(x, y int) {
	if x == 0 {
		b.pendLeft = true
	}
	if x == b.w-1 {
		b.pendRight = true
	}
	if y == 0 {
		b.pendUp = true
	}
	if y == b.h-1 {
		b.pendDown = true
	}
}

// ExpandDuringRuntime grows each flagged edge by exactly one row or column,
// provided the axis is still below RuntimeExpansionLimit and the board is
// expandable. Called once per generation before the rule is applied, so
// unbounded patterns cost one extra row/column scan per tick at most.
func (b *DynamicBoard) ExpandDuringRuntime() {
	if (b.w >= RuntimeExpansionLimit && b.h >= RuntimeExpansionLimit) || !b.expandable {
		return
	}

	if b.w < RuntimeExpansionLimit {
		if b.pendLeft {
			b.growLeft(1)
			b.expandedLeft = true
			b.pendLeft = false
		}
		if b.pendRight {
			b.growRight(1)
			b.pendRight = false
		}
	}

	if b.h < RuntimeExpansionLimit {
		if b.pendUp {
			b.growUp(1)
			b.expandedUp = true
			b.pendUp = false
		}
		if b.pendDown {
			b.growDown(1)
			b.pendDown = false
		}
	}
}

// HasExpandedLeft reports whether the grid grew on the left since the last
// call, then clears the flag. Consumers use it to re-anchor coordinates.
func (b *DynamicBoard) HasExpandedLeft() bool {
	v := b.expandedLeft
	b.expandedLeft = false
	return v
}

// HasExpandedUp reports whether the grid grew upward since the last call,
// then clears the flag.
func (b *DynamicBoard) HasExpandedUp() bool {
	v := b.expandedUp
	b.expandedUp = false
	return v
}

// SetNonExpandable freezes the grid dimensions permanently.
func (b *DynamicBoard) SetNonExpandable() { b.expandable = false }

// Resize replaces the grid with a fresh all-dead square of the given size.
// No-op for sizes below 1.
func (b *DynamicBoard) Resize(size int) {
	if size <= 0 {
		return
	}
	b.w, b.h = size, size
	b.cells = make([]uint8, size*size)
	b.alive = 0
	b.pendLeft, b.pendRight, b.pendUp, b.pendDown = false, false, false, false
}

func (b *DynamicBoard) growRight(n int) {
	next := make([]uint8, (b.w+n)*b.h)
	for y := 0; y < b.h; y++ {
		copy(next[y*(b.w+n):], b.cells[y*b.w:(y+1)*b.w])
	}
	b.cells = next
	b.w += n
}

func (b *DynamicBoard) growLeft(n int) {
	next := make([]uint8, (b.w+n)*b.h)
	for y := 0; y < b.h; y++ {
		copy(next[y*(b.w+n)+n:], b.cells[y*b.w:(y+1)*b.w])
	}
	b.cells = next
	b.w += n
}

func (b *DynamicBoard) growDown(n int) {
	b.cells = append(b.cells, make([]uint8, b.w*n)...)
	b.h += n
}

func (b *DynamicBoard) growUp(n int) {
	next := make([]uint8, b.w*(b.h+n))
	copy(next[b.w*n:], b.cells)
	b.cells = next
	b.h += n
}

// Width returns the current board width.
func (b *DynamicBoard) Width() int { return b.w }

// Height returns the current board height.
func (b *DynamicBoard) Height() int { return b.h }

// CellsAlive returns the number of live cells.
func (b *DynamicBoard) CellsAlive() int { return b.alive }

// Cells exposes the row-major state buffer for reading.
func (b *DynamicBoard) Cells() []uint8 { return b.cells }

// Clone returns a deep copy. Pending-expansion bookkeeping is not carried
// over; the copy starts with clean flags.
func (b *DynamicBoard) Clone() Board {
	c := &DynamicBoard{
		w:          b.w,
		h:          b.h,
		cells:      make([]uint8, len(b.cells)),
		alive:      b.alive,
		expandable: b.expandable,
	}
	copy(c.cells, b.cells)
	return c
}

// BoundingBox returns the extent of the live cells.
func (b *DynamicBoard) BoundingBox() (minX, maxX, minY, maxY int) {
	return boundingBox(b.cells, b.w, b.h)
}
