package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/interactive-bg/internal/field"
)

// One terminal cell covers CellWidth x CellHeight surface units, roughly the
// aspect ratio of a monospace glyph.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

const (
	glyphEmpty = ' '
	glyphLine  = '·'
	glyphDot   = '•'
	glyphBig   = '●'
)

type cell struct {
	glyph rune
	color colorful.Color
}

// cellSurface rasterises a frame into a grid of cells. Terminals have no
// alpha, so every primitive is blended over the colour already in its cell.
type cellSurface struct {
	cols, rows int
	cells      []cell
	background colorful.Color
}

func newCellSurface(bg colorful.Color) *cellSurface {
	return &cellSurface{background: bg}
}

// Clear sizes the grid to cover w x h surface units and blanks it.
func (s *cellSurface) Clear(w, h float64) {
	cols := int(math.Ceil(w / CellWidth))
	rows := int(math.Ceil(h / CellHeight))
	if n := cols * rows; cap(s.cells) < n {
		s.cells = make([]cell, n)
	} else {
		s.cells = s.cells[:n]
	}
	s.cols, s.rows = cols, rows
	for i := range s.cells {
		s.cells[i] = cell{glyph: glyphEmpty, color: s.background}
	}
}

func (s *cellSurface) FillCircle(x, y, r float64, p field.Paint) {
	c := s.at(toCell(x, y))
	if c == nil || p.Alpha <= 0 {
		return
	}
	c.color = p.Over(c.color)
	if r >= 2.5 {
		c.glyph = glyphBig
	} else if c.glyph != glyphBig {
		c.glyph = glyphDot
	}
}

// StrokeLine walks the cells between the endpoints with Bresenham's
// algorithm. Line width is ignored; a cell is the thinnest stroke available.
func (s *cellSurface) StrokeLine(x0, y0, x1, y1, _ float64, p field.Paint) {
	if p.Alpha <= 0 {
		return
	}
	cx0, cy0 := toCell(x0, y0)
	cx1, cy1 := toCell(x1, y1)

	dx := abs(cx1 - cx0)
	dy := -abs(cy1 - cy0)
	sx, sy := 1, 1
	if cx0 > cx1 {
		sx = -1
	}
	if cy0 > cy1 {
		sy = -1
	}
	err := dx + dy
	for {
		if c := s.at(cx0, cy0); c != nil {
			c.color = p.Over(c.color)
			if c.glyph == glyphEmpty {
				c.glyph = glyphLine
			}
		}
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			cx0 += sx
		}
		if e2 <= dx {
			err += dx
			cy0 += sy
		}
	}
}

// flush copies the grid to the screen. Empty cells show the background;
// marked cells use their blended colour as foreground.
func (s *cellSurface) flush(screen tcell.Screen) {
	bg := tcellColor(s.background)
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			c := s.cells[y*s.cols+x]
			style := tcell.StyleDefault.Background(bg).Foreground(tcellColor(c.color))
			screen.SetContent(x, y, c.glyph, nil, style)
		}
	}
	screen.Show()
}

func (s *cellSurface) at(cx, cy int) *cell {
	if cx < 0 || cy < 0 || cx >= s.cols || cy >= s.rows {
		return nil
	}
	return &s.cells[cy*s.cols+cx]
}

func toCell(x, y float64) (int, int) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return -1, -1
	}
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// cellCenter maps a terminal cell back to surface coordinates.
func cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * CellWidth, (float64(cy) + 0.5) * CellHeight
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
