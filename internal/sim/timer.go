package sim

import "time"

// TPS bounds for the adjustable generation rate.
const (
	minTPS = 1
	maxTPS = 120
)

// Pacer decides when the clock should advance, decoupling the generation
// rate from the host's frame rate.
type Pacer struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given generations per second.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	p.accumulator = p.step
	return p
}

// TPS returns the current target rate.
func (p *Pacer) TPS() int { return p.tps }

// SetTPS changes the generation rate, clamped to [1, 120].
func (p *Pacer) SetTPS(tps int) {
	if tps < minTPS {
		tps = minTPS
	}
	if tps > maxTPS {
		tps = maxTPS
	}
	p.tps = tps
	p.step = time.Second / time.Duration(tps)
}

// Faster bumps the rate up one step.
func (p *Pacer) Faster() { p.SetTPS(p.tps + rateStep(p.tps)) }

// Slower bumps the rate down one step.
func (p *Pacer) Slower() { p.SetTPS(p.tps - rateStep(p.tps)) }

// rateStep grows with the rate so adjustment feels even across the range.
func rateStep(tps int) int {
	if tps >= 20 {
		return 5
	}
	return 1
}

// ShouldStep reports whether enough time has passed for one generation.
func (p *Pacer) ShouldStep() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		if p.accumulator > p.step {
			p.accumulator = p.step
		}
		return true
	}
	return false
}
