package field

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Surface is the 2D drawing target a frame is rendered onto.
type Surface interface {
	// Clear wipes the w x h rectangle anchored at the origin.
	Clear(w, h float64)
	FillCircle(x, y, r float64, p Paint)
	StrokeLine(x0, y0, x1, y1, width float64, p Paint)
}

// Paint is a colour plus opacity. Alpha is always kept in [0, 1].
type Paint struct {
	Color colorful.Color
	Alpha float64
}

// NewPaint clamps alpha into [0, 1]; NaN becomes 0.
func NewPaint(c colorful.Color, alpha float64) Paint {
	return Paint{Color: c, Alpha: clamp01(alpha)}
}

// NRGBA converts p for image-based drawing APIs.
func (p Paint) NRGBA() color.NRGBA {
	r, g, b := p.Color.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(p.Alpha)*255 + 0.5)}
}

// Over blends p onto an opaque background colour.
func (p Paint) Over(bg colorful.Color) colorful.Color {
	return bg.BlendRgb(p.Color, clamp01(p.Alpha))
}

// fade is the proximity opacity: base at d=0, falling by d/falloff, never negative.
func fade(base, d, falloff float64) float64 {
	return clamp01(base - d/falloff)
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
