package board

// Translate moves every live cell by (dx, dy), used for repositioning a
// pattern on the board. The move is all-or-nothing: it reports false and
// leaves the board unchanged if it would push the bounding box outside the
// current grid.
func Translate(b Board, dx, dy int) bool {
	if b.CellsAlive() == 0 {
		return true
	}
	minX, maxX, minY, maxY := b.BoundingBox()
	if minX+dx < 0 || maxX+dx >= b.Width() || minY+dy < 0 || maxY+dy >= b.Height() {
		return false
	}

	type cell struct{ x, y int }
	live := make([]cell, 0, b.CellsAlive())
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if b.Get(x, y) == Alive {
				live = append(live, cell{x, y})
				b.Set(x, y, Dead)
			}
		}
	}
	for _, c := range live {
		b.Set(c.x+dx, c.y+dy, Alive)
	}
	return true
}
