package rule

import "github.com/V1adau/GameOfLife/internal/board"

// Step advances the board by one generation under the rule. Every read comes
// from a snapshot of the previous generation, so a cell's new state never
// leaks into a neighbor's count within the same tick. Cells outside the grid
// count as dead; there is no wraparound.
func (r Rule) Step(b board.Board) {
	prev := b.Clone()
	w, h := b.Width(), b.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if prev.Get(x+dx, y+dy) == board.Alive {
						neighbors++
					}
				}
			}
			next := board.Dead
			if prev.Get(x, y) == board.Alive {
				if r.Survives(neighbors) {
					next = board.Alive
				}
			} else if r.Born(neighbors) {
				next = board.Alive
			}
			b.Set(x, y, next)
		}
	}
}
