package field

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is a single drifting point of the background.
type Particle struct {
	Pos  r2.Vec // Position, surface units
	Vel  r2.Vec // Velocity, units per frame
	size float64
}

// NewParticle builds a particle with a fixed radius.
func NewParticle(pos, vel r2.Vec, size float64) Particle {
	return Particle{Pos: pos, Vel: vel, size: size}
}

// Size is the radius chosen at creation.
func (p *Particle) Size() float64 { return p.size }

// randomParticle places a particle uniformly inside w x h with each velocity
// component in [-maxSpeed, maxSpeed] and a radius in [minR, maxR].
func randomParticle(rng *rand.Rand, w, h, maxSpeed, minR, maxR float64) Particle {
	return Particle{
		Pos: r2.Vec{X: rng.Float64() * w, Y: rng.Float64() * h},
		Vel: r2.Vec{
			X: (rng.Float64() - 0.5) * 2 * maxSpeed, // Slow movement
			Y: (rng.Float64() - 0.5) * 2 * maxSpeed,
		},
		size: minR + rng.Float64()*(maxR-minR),
	}
}

// update advances p by one frame: Euler step, bounce, then pointer pull.
func (p *Particle) update(w, h float64, pointer r2.Vec, hasPointer bool, radius, factor float64) {
	p.Pos = r2.Add(p.Pos, p.Vel)

	// Bounce. The position is not clamped; a zero-sized axis never reflects.
	if w > 0 && (p.Pos.X < 0 || p.Pos.X > w) {
		p.Vel.X = -p.Vel.X
	}
	if h > 0 && (p.Pos.Y < 0 || p.Pos.Y > h) {
		p.Vel.Y = -p.Vel.Y
	}

	if !hasPointer {
		return
	}
	delta := r2.Sub(pointer, p.Pos)
	if r2.Norm(delta) < radius {
		p.Pos = r2.Add(p.Pos, r2.Scale(factor, delta))
	}
}
