// Package sim owns the running simulation: the active board, the active
// rule, the generation counter, and pattern loading. Ownership is exclusive
// to a single orchestrating goroutine; a concurrent host must serialize all
// calls into a Clock.
package sim

import (
	"github.com/V1adau/GameOfLife/internal/board"
	"github.com/V1adau/GameOfLife/internal/rle"
	"github.com/V1adau/GameOfLife/internal/rule"
	"github.com/V1adau/GameOfLife/pkg/rng"
)

// Clock holds the current board and rule and advances them one generation
// at a time.
type Clock struct {
	board board.Board
	rule  rule.Rule
	gen   int
}

// New constructs a clock over the given board and rule at generation zero.
func New(b board.Board, r rule.Rule) *Clock {
	return &Clock{board: b, rule: r}
}

// Board returns the active board.
func (c *Clock) Board() board.Board { return c.board }

// Rule returns the active rule.
func (c *Clock) Rule() rule.Rule { return c.rule }

// Generation returns how many generations have been computed since the last
// pattern install or reset.
func (c *Clock) Generation() int { return c.gen }

// Advance computes one generation. A dynamic board first runs its pending
// one-cell edge expansions so growing patterns get room before the rule is
// applied.
func (c *Clock) Advance() {
	if db, ok := c.board.(*board.DynamicBoard); ok {
		db.ExpandDuringRuntime()
	}
	c.rule.Step(c.board)
	c.gen++
}

// SetRule installs a new rule. Callers validate through rule.Parse first; a
// failed parse must leave the previous rule installed, which falls out of
// only calling SetRule on success.
func (c *Clock) SetRule(r rule.Rule) { c.rule = r }

// SetPattern installs a loaded pattern wholesale, replacing board and rule
// and resetting the generation counter.
func (c *Clock) SetPattern(p *rle.Pattern) {
	c.board = p.Board
	c.rule = p.Rule
	c.gen = 0
}

// Reset kills every cell and returns the counter to zero. Dimensions are
// kept.
func (c *Clock) Reset() {
	for y := 0; y < c.board.Height(); y++ {
		for x := 0; x < c.board.Width(); x++ {
			c.board.Set(x, y, board.Dead)
		}
	}
	c.gen = 0
}

// Randomize fills the board with a half-density random soup and returns the
// counter to zero. The same seed reproduces the same soup.
func (c *Clock) Randomize(seed int64) {
	r := rng.New(seed)
	for y := 0; y < c.board.Height(); y++ {
		for x := 0; x < c.board.Width(); x++ {
			state := board.Dead
			if r.Bool() {
				state = board.Alive
			}
			c.board.Set(x, y, state)
		}
	}
	c.gen = 0
}
