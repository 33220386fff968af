package field

// OpKind identifies a recorded drawing primitive.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpCircle
	OpLine
)

// Op is one recorded drawing call. Circles use X0/Y0 as centre and R as
// radius; lines run from X0/Y0 to X1/Y1 with stroke Width; Clear stores the
// rectangle size in X1/Y1.
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64
	R, Width       float64
	Paint          Paint
}

// DisplayList is a Surface that records drawing calls so a frame can be
// computed in one place and replayed onto a real target later.
type DisplayList struct {
	ops []Op
}

// Reset drops recorded ops but keeps the backing storage.
func (d *DisplayList) Reset() { d.ops = d.ops[:0] }

func (d *DisplayList) Clear(w, h float64) {
	d.ops = append(d.ops, Op{Kind: OpClear, X1: w, Y1: h})
}

func (d *DisplayList) FillCircle(x, y, r float64, p Paint) {
	d.ops = append(d.ops, Op{Kind: OpCircle, X0: x, Y0: y, R: r, Paint: p})
}

func (d *DisplayList) StrokeLine(x0, y0, x1, y1, width float64, p Paint) {
	d.ops = append(d.ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Paint: p})
}

// Ops returns the recorded calls in order. The slice is reused after Reset.
func (d *DisplayList) Ops() []Op { return d.ops }

// Count returns how many ops of kind k were recorded.
func (d *DisplayList) Count(k OpKind) int {
	n := 0
	for _, op := range d.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Replay issues every recorded call on s in order.
func (d *DisplayList) Replay(s Surface) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpClear:
			s.Clear(op.X1, op.Y1)
		case OpCircle:
			s.FillCircle(op.X0, op.Y0, op.R, op.Paint)
		case OpLine:
			s.StrokeLine(op.X0, op.Y0, op.X1, op.Y1, op.Width, op.Paint)
		}
	}
}
