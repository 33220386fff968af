package field

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/interactive-bg/internal/config"
)

// Stats describes what the last frame drew.
type Stats struct {
	Particles    int
	Links        int
	PointerLinks int
}

// Field owns the particle collection. Frame, Particles and Len must be called
// from a single goroutine; pointer and resize events go through Input, which
// may be written from another one.
type Field struct {
	particles []Particle
	input     Input
	drift     *drift
	tick      uint64

	linkDistance, linkAlpha, linkFalloff          float64
	pointerDistance, pointerAlpha, pointerFalloff float64
	attractRadius, attractFactor                  float64
	lineWidth                                     float64

	particleColor, accentColor colorful.Color
	particlePaint              Paint
}

// New creates cfg.ParticleCount particles scattered over a w x h surface.
// A non-positive count yields an empty field. cfg is expected to have passed
// Validate; a colour that does not parse falls back to its default.
func New(cfg config.Config, w, h float64) *Field {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	f := newField(cfg, seed)
	f.input.Resize(w, h)
	w, h = f.input.Size()

	n := max(cfg.ParticleCount, 0)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = randomParticle(rng, w, h, cfg.MaxSpeed, cfg.MinRadius, cfg.MaxRadius)
	}
	return f
}

// FromParticles builds a field around an explicit particle layout. The slice
// is copied. cfg is treated as in New.
func FromParticles(cfg config.Config, w, h float64, ps []Particle) *Field {
	f := newField(cfg, cfg.Seed)
	f.input.Resize(w, h)
	f.particles = append([]Particle(nil), ps...)
	return f
}

func newField(cfg config.Config, seed int64) *Field {
	particle := parseColor(cfg.ParticleColor, config.ParticleColor)
	accent := parseColor(cfg.AccentColor, config.AccentColor)

	f := &Field{
		linkDistance:    cfg.LinkDistance,
		linkAlpha:       cfg.LinkAlpha,
		linkFalloff:     cfg.LinkFalloff,
		pointerDistance: cfg.PointerLinkDistance,
		pointerAlpha:    cfg.PointerLinkAlpha,
		pointerFalloff:  cfg.PointerLinkFalloff,
		attractRadius:   cfg.AttractRadius,
		attractFactor:   cfg.AttractFactor,
		lineWidth:       cfg.LineWidth,
		particleColor:   particle,
		accentColor:     accent,
		particlePaint:   NewPaint(particle, cfg.ParticleAlpha),
	}
	if cfg.Drift > 0 {
		f.drift = newDrift(cfg.Drift, cfg.DriftScale, seed)
	}
	return f
}

// parseColor parses hex, or fallback when hex is malformed.
func parseColor(hex, fallback string) colorful.Color {
	if c, err := colorful.Hex(hex); err == nil {
		return c
	}
	c, _ := colorful.Hex(fallback)
	return c
}

// Input returns the event sink for this field.
func (f *Field) Input() *Input { return &f.input }

// Resize is shorthand for f.Input().Resize. Particles keep their positions.
func (f *Field) Resize(w, h float64) { f.input.Resize(w, h) }

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Particles exposes the collection for inspection. Callers must not retain
// it across frames.
func (f *Field) Particles() []Particle { return f.particles }

// Frame advances and renders one tick onto s. The surface is cleared, then
// each particle in order is updated, drawn, linked to every later particle
// within range and finally linked to the pointer.
func (f *Field) Frame(s Surface) Stats {
	w, h := f.input.Size()
	pointer, hasPointer := f.input.Pointer()
	f.tick++

	st := Stats{Particles: len(f.particles)}
	s.Clear(w, h)

	for i := range f.particles {
		p := &f.particles[i]
		p.update(w, h, pointer, hasPointer, f.attractRadius, f.attractFactor)
		if f.drift != nil {
			p.Pos = r2.Add(p.Pos, f.drift.offset(p.Pos, f.tick))
		}

		s.FillCircle(p.Pos.X, p.Pos.Y, p.size, f.particlePaint)

		// Connect particles
		for j := i + 1; j < len(f.particles); j++ {
			q := &f.particles[j]
			d := r2.Norm(r2.Sub(p.Pos, q.Pos))
			if d < f.linkDistance {
				paint := NewPaint(f.particleColor, fade(f.linkAlpha, d, f.linkFalloff))
				s.StrokeLine(p.Pos.X, p.Pos.Y, q.Pos.X, q.Pos.Y, f.lineWidth, paint)
				st.Links++
			}
		}

		// Connect to pointer
		if hasPointer {
			d := r2.Norm(r2.Sub(p.Pos, pointer))
			if d < f.pointerDistance {
				paint := NewPaint(f.accentColor, fade(f.pointerAlpha, d, f.pointerFalloff))
				s.StrokeLine(p.Pos.X, p.Pos.Y, pointer.X, pointer.Y, f.lineWidth, paint)
				st.PointerLinks++
			}
		}
	}
	return st
}
