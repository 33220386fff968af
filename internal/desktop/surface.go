package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/interactive-bg/internal/field"
)

// imageSurface draws onto an ebiten image with anti-aliased vector paths.
type imageSurface struct {
	dst        *ebiten.Image
	background color.NRGBA
}

func (s imageSurface) Clear(w, h float64) {
	s.dst.Fill(s.background)
}

func (s imageSurface) FillCircle(x, y, r float64, p field.Paint) {
	if p.Alpha <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), p.NRGBA(), true)
}

func (s imageSurface) StrokeLine(x0, y0, x1, y1, width float64, p field.Paint) {
	if p.Alpha <= 0 {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), p.NRGBA(), true)
}
