// Command liferun advances a pattern headlessly and writes the result back
// out in the interchange format.
//
//	liferun -in glider.rle -gens 100 > evolved.rle
//	liferun -url https://example.org/p/gosperglidergun.rle -gens 50
package main

import (
	"flag"
	"log"
	"os"

	"github.com/V1adau/GameOfLife/internal/rle"
	"github.com/V1adau/GameOfLife/internal/rule"
	"github.com/V1adau/GameOfLife/internal/sim"
)

func main() {
	var (
		in       = flag.String("in", "", "rle pattern file to load")
		url      = flag.String("url", "", "url of an rle pattern to fetch")
		ruleFlag = flag.String("rule", "", "override the pattern's rule")
		gens     = flag.Int("gens", 1, "generations to advance")
		stamp    = flag.Bool("date", false, "date-stamp the author line")
	)
	flag.Parse()

	var p *rle.Pattern
	var err error
	switch {
	case *in != "":
		p, err = sim.LoadFile(*in)
	case *url != "":
		p, err = sim.LoadURL(*url)
	default:
		p, err = rle.Parse(os.Stdin)
	}
	if err != nil {
		log.Fatalf("load failed: %v", err)
	}

	if *ruleFlag != "" {
		ru, err := rule.Parse(*ruleFlag)
		if err != nil {
			log.Fatalf("bad rule %q: %v", *ruleFlag, err)
		}
		p.Rule = ru
	}

	clock := sim.New(p.Board, p.Rule)
	for i := 0; i < *gens; i++ {
		clock.Advance()
	}

	if err := rle.Encode(os.Stdout, clock.Board(), clock.Rule(), p.Meta, rle.EncodeOptions{DateStamp: *stamp}); err != nil {
		log.Fatalf("encode failed: %v", err)
	}
}
