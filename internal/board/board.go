// Package board holds the playing-board abstraction for the game: a fixed
// dense implementation and a dynamically growing one that expands toward
// whichever edge a live pattern is pushing against.
package board

import "errors"

// Cell states. Mutators reject anything else.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// ErrEdgeLimit reports a write outside the board's configured growth limits.
// The board is left unchanged; the condition is recoverable.
var ErrEdgeLimit = errors.New("cell outside board growth limits")

// Board is the capability contract shared by the fixed and dynamic variants.
// Reads outside the grid return Dead. All mutation goes through Set so that
// the live-cell counter stays exact; the slice returned by Cells is a
// read-only view for renderers and tests.
type Board interface {
	Get(x, y int) uint8
	Set(x, y int, state uint8) error
	Width() int
	Height() int
	CellsAlive() int
	Cells() []uint8
	Clone() Board
	// BoundingBox returns the minimal rectangle containing every live
	// cell. With no live cells it returns the degenerate (0, -1, 0, -1).
	BoundingBox() (minX, maxX, minY, maxY int)
}

// boundingBox scans a row-major grid for the extent of its live cells.
func boundingBox(cells []uint8, w, h int) (minX, maxX, minY, maxY int) {
	minX, minY = w, h
	maxX, maxY = -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y*w+x] != Alive {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return 0, -1, 0, -1
	}
	return minX, maxX, minY, maxY
}
