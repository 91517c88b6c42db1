package board

// FixedBoard is a dense board of constant dimensions. Writes outside the
// grid, and writes of invalid states, are silent no-ops.
type FixedBoard struct {
	w, h  int
	cells []uint8
	alive int
}

var _ Board = (*FixedBoard)(nil)

// NewFixed allocates an all-dead board with the given dimensions.
func NewFixed(w, h int) *FixedBoard {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FixedBoard{w: w, h: h, cells: make([]uint8, w*h)}
}

// Get returns the state at (x, y), or Dead outside the grid.
func (b *FixedBoard) Get(x, y int) uint8 {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return Dead
	}
	return b.cells[y*b.w+x]
}

// Set writes state at (x, y), keeping the live-cell counter in step.
func (b *FixedBoard) Set(x, y int, state uint8) error {
	if state > Alive || x < 0 || x >= b.w || y < 0 || y >= b.h {
		return nil
	}
	idx := y*b.w + x
	b.alive += int(state) - int(b.cells[idx])
	b.cells[idx] = state
	return nil
}

// Width returns the board width.
func (b *FixedBoard) Width() int { return b.w }

// Height returns the board height.
func (b *FixedBoard) Height() int { return b.h }

// CellsAlive returns the number of live cells.
func (b *FixedBoard) CellsAlive() int { return b.alive }

// Cells exposes the row-major state buffer for reading.
func (b *FixedBoard) Cells() []uint8 { return b.cells }

// Clone returns a deep copy.
func (b *FixedBoard) Clone() Board {
	c := &FixedBoard{w: b.w, h: b.h, cells: make([]uint8, len(b.cells)), alive: b.alive}
	copy(c.cells, b.cells)
	return c
}

// BoundingBox returns the extent of the live cells.
func (b *FixedBoard) BoundingBox() (minX, maxX, minY, maxY int) {
	return boundingBox(b.cells, b.w, b.h)
}
