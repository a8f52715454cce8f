package anim

import (
	"math/rand/v2"

	"github.com/iburimskiy/view-animation/internal/config"
)

// Particle is a small white disc drifting upwards.
type Particle struct {
	X, Y  float64
	Speed float64
}

// Field is a fixed set of particles sharing one random source.
type Field struct {
	Particles []Particle
	rng       *rand.Rand
}

// NewField scatters n particles over [0,width) x [0,height) with speeds in
// [0.5, 1.5).
func NewField(n, width, height int, rng *rand.Rand) *Field {
	f := &Field{
		Particles: make([]Particle, n),
		rng:       rng,
	}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:     float64(rng.IntN(width)),
			Y:     float64(rng.IntN(height)),
			Speed: config.ParticleMinSpeed + float64(rng.IntN(config.ParticleSpeedSteps))/config.ParticleSpeedSteps,
		}
	}
	return f
}

// Step moves every particle up by its speed. A particle that leaves the top
// edge reappears at the bottom with a new x in [0, 400), whatever the width.
func (f *Field) Step(height int) {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Y -= p.Speed
		if p.Y < 0 {
			p.Y = float64(height)
			p.X = float64(f.rng.IntN(config.ParticleWrapX))
		}
	}
}

// Positions returns a copy of the current particle centers.
func (f *Field) Positions() []Point {
	out := make([]Point, len(f.Particles))
	for i, p := range f.Particles {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
