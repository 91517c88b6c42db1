//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/V1adau/GameOfLife/internal/app"
	"github.com/V1adau/GameOfLife/internal/board"
	"github.com/V1adau/GameOfLife/internal/rle"
	"github.com/V1adau/GameOfLife/internal/rule"
	"github.com/V1adau/GameOfLife/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	clock, err := buildClock(cfg)
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}

	game := app.New(clock, cfg.Scale, cfg.TPS)
	b := clock.Board()

	ebiten.SetWindowTitle("GameOfLife — " + clock.Rule().String())
	ebiten.SetWindowSize(b.Width()*cfg.Scale, b.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func buildClock(cfg *app.Config) (*sim.Clock, error) {
	var p *rle.Pattern
	var err error
	switch {
	case cfg.Pattern != "":
		p, err = sim.LoadFile(cfg.Pattern)
	case cfg.URL != "":
		p, err = sim.LoadURL(cfg.URL)
	}
	if err != nil {
		return nil, err
	}

	if p != nil {
		return sim.New(placed(p.Board, cfg.Size), p.Rule), nil
	}

	ru, err := rule.Parse(cfg.Rule)
	if err != nil {
		return nil, err
	}
	clock := sim.New(board.NewDynamic(cfg.Size, cfg.Size), ru)
	if cfg.Soup {
		clock.Randomize(cfg.Seed)
	}
	return clock, nil
}

// placed centers a small loaded pattern on a board of the configured size so
// it has room to evolve. Patterns at least as large as the configured size
// keep their own dimensions.
func placed(src *board.DynamicBoard, size int) *board.DynamicBoard {
	if src.Width() >= size || src.Height() >= size {
		return src
	}
	dst := board.NewDynamic(size, size)
	dx := (size - src.Width()) / 2
	dy := (size - src.Height()) / 2
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			if src.Get(x, y) == board.Alive {
				dst.Set(x+dx, y+dy, board.Alive)
			}
		}
	}
	return dst
}
