package field

import (
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r2"
)

// Input carries the pointer and surface size from event handlers to the
// frame goroutine. One writer and one frame reader may use it concurrently;
// writes become visible on the next frame.
type Input struct {
	pointer atomic.Pointer[r2.Vec] // nil while the pointer is outside the surface
	size    atomic.Pointer[r2.Vec]
}

// MovePointer records a pointer-move at surface coordinates x, y.
func (in *Input) MovePointer(x, y float64) {
	in.pointer.Store(&r2.Vec{X: x, Y: y})
}

// LeavePointer clears the pointer.
func (in *Input) LeavePointer() {
	in.pointer.Store(nil)
}

// Pointer returns the current pointer. Non-finite coordinates read as absent.
func (in *Input) Pointer() (r2.Vec, bool) {
	p := in.pointer.Load()
	if p == nil || !finite(p.X) || !finite(p.Y) {
		return r2.Vec{}, false
	}
	return *p, true
}

// Resize records new surface dimensions. Negative or non-finite values are
// stored as zero.
func (in *Input) Resize(w, h float64) {
	in.size.Store(&r2.Vec{X: dimension(w), Y: dimension(h)})
}

// Size returns the current surface dimensions.
func (in *Input) Size() (w, h float64) {
	s := in.size.Load()
	if s == nil {
		return 0, 0
	}
	return s.X, s.Y
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func dimension(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}
