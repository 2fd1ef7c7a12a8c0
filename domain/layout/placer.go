// Package layout picks canvas positions for label overlays.
package layout

import (
	"image"
	"math/rand/v2"
	"time"
)

// Placer draws independent, uniformly distributed points inside a region.
// Bounds are inclusive: a 400x400 region starting at the origin yields
// coordinates in [0,400].
type Placer struct {
	region image.Rectangle
	rng    *rand.Rand
}

// NewPlacer returns a Placer over region using src. A nil src seeds from the clock.
func NewPlacer(region image.Rectangle, src rand.Source) *Placer {
	if src == nil {
		src = NewSource(0)
	}
	return &Placer{region: region.Canon(), rng: rand.New(src)}
}

// NewSource returns a PCG source. Seed 0 means "pick one from the clock",
// any other value gives a reproducible sequence.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		now := uint64(time.Now().UnixNano())
		return rand.NewPCG(now, now>>1|1)
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Next returns a fresh random point inside the region.
func (p *Placer) Next() image.Point {
	return image.Pt(
		p.region.Min.X+p.rng.IntN(p.region.Dx()+1),
		p.region.Min.Y+p.rng.IntN(p.region.Dy()+1),
	)
}

// Place returns one point per item.
func (p *Placer) Place(n int) []image.Point {
	if n <= 0 {
		return nil
	}
	out := make([]image.Point, n)
	for i := range out {
		out[i] = p.Next()
	}
	return out
}
