package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// PewGenerator generates a short falling laser chirp.
type PewGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewPewGenerator creates a pew sound generator
func NewPewGenerator(sr beep.SampleRate) *PewGenerator {
	return &PewGenerator{sr: sr}
}

func (g *PewGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sweep from 1400Hz down to 300Hz
		freq := 300 + 1100*math.Exp(-t*25)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Exp(-t * 18)
		sample := 0.3 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PewGenerator) Err() error {
	return nil
}

// TreadsGenerator generates a low mechanical rumble.
type TreadsGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

// NewTreadsGenerator creates a treads sound generator
func NewTreadsGenerator(sr beep.SampleRate) *TreadsGenerator {
	return &TreadsGenerator{sr: sr, seed: 0x2545f491}
}

func (g *TreadsGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Track links clatter at ~18Hz over a 55Hz hum
		clatter := 0.5 + 0.5*math.Sin(2*math.Pi*18*t)
		hum := math.Sin(2*math.Pi*55*t) + 0.5*math.Sin(2*math.Pi*110*t)
		noise := g.noise()

		sample := 0.12*hum + 0.08*clatter*noise

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TreadsGenerator) noise() float64 {
	g.seed ^= g.seed << 13
	g.seed ^= g.seed >> 17
	g.seed ^= g.seed << 5
	return float64(g.seed)/float64(math.MaxUint32)*2 - 1
}

func (g *TreadsGenerator) Err() error {
	return nil
}

// ThrustGenerator generates filtered engine noise.
type ThrustGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
	last float64
}

// NewThrustGenerator creates a thrust sound generator
func NewThrustGenerator(sr beep.SampleRate) *ThrustGenerator {
	return &ThrustGenerator{sr: sr, seed: 0x9e3779b9}
}

func (g *ThrustGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		// One-pole low-pass keeps the roar and drops the hiss
		g.last += 0.08 * (noise - g.last)
		sample := 0.5 * g.last

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThrustGenerator) Err() error {
	return nil
}
