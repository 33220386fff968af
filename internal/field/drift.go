package field

import (
	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r2"
)

// drift nudges particles along a slowly evolving perlin flow field.
type drift struct {
	noise  *perlin.Perlin
	amount float64
	scale  float64
}

func newDrift(amount, scale float64, seed int64) *drift {
	return &drift{
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		amount: amount,
		scale:  scale,
	}
}

// offset is the nudge for a particle at pos on frame t. The second noise
// sample is taken far from the first so the axes are uncorrelated.
func (d *drift) offset(pos r2.Vec, t uint64) r2.Vec {
	x, y, z := pos.X*d.scale, pos.Y*d.scale, float64(t)*d.scale
	return r2.Scale(d.amount, r2.Vec{
		X: d.noise.Noise3D(x, y, z),
		Y: d.noise.Noise3D(x+97.3, y+31.7, z),
	})
}
