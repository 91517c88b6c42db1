package rule

import (
	"testing"

	"github.com/V1adau/GameOfLife/internal/board"
)

func assertLiveCells(t *testing.T, b board.Board, expects map[[2]int]bool) {
	t.Helper()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			alive := b.Get(x, y) == board.Alive
			if alive != expects[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, expects[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	b := board.NewFixed(5, 5)
	b.Set(2, 1, board.Alive)
	b.Set(2, 2, board.Alive)
	b.Set(2, 3, board.Alive)

	r := Default()
	r.Step(b)
	assertLiveCells(t, b, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	r.Step(b)
	assertLiveCells(t, b, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})
}

func TestGliderTranslatesInFourGenerations(t *testing.T) {
	b := board.NewFixed(8, 8)
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, c := range glider {
		b.Set(c[0], c[1], board.Alive)
	}

	r := Default()
	for i := 0; i < 4; i++ {
		r.Step(b)
	}

	expects := map[[2]int]bool{}
	for _, c := range glider {
		expects[[2]int{c[0] + 1, c[1] + 1}] = true
	}
	assertLiveCells(t, b, expects)
	if b.CellsAlive() != 5 {
		t.Fatalf("cellsAlive = %d after four generations, want 5", b.CellsAlive())
	}
}

func TestNoWraparound(t *testing.T) {
	// A blinker against the right edge must not see phantom neighbors on
	// the left edge.
	b := board.NewFixed(3, 5)
	b.Set(2, 1, board.Alive)
	b.Set(2, 2, board.Alive)
	b.Set(2, 3, board.Alive)

	Default().Step(b)
	assertLiveCells(t, b, map[[2]int]bool{{1, 2}: true, {2, 2}: true})
}

func TestSeedsKillsEveryLiveCell(t *testing.T) {
	b := board.NewFixed(6, 6)
	b.Set(2, 2, board.Alive)
	b.Set(3, 2, board.Alive)

	seeds, err := Parse("Seeds")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	seeds.Step(b)

	// The original pair dies; dead cells with exactly two neighbors are
	// born above and below it.
	expects := map[[2]int]bool{
		{2, 1}: true, {3, 1}: true,
		{2, 3}: true, {3, 3}: true,
	}
	assertLiveCells(t, b, expects)
}

func TestStepOnDynamicBoardFlagsEdges(t *testing.T) {
	// A glider walking into the corner keeps flagging edges; the runtime
	// expansion pass before each step gives it room to keep moving.
	b := board.NewDynamic(4, 4)
	for _, c := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		b.Set(c[0], c[1], board.Alive)
	}

	r := Default()
	for i := 0; i < 12; i++ {
		b.ExpandDuringRuntime()
		r.Step(b)
	}

	if b.Width() <= 4 || b.Height() <= 4 {
		t.Fatalf("board stayed %dx%d; expected growth ahead of the glider", b.Width(), b.Height())
	}
	if b.CellsAlive() != 5 {
		t.Fatalf("cellsAlive = %d, want 5 for an unobstructed glider", b.CellsAlive())
	}
}
