// Package term hosts the particle field in a terminal. Frames are driven by
// a fixed-interval loop; tcell events feed the field's Input from a second
// goroutine.
package term

import (
	"context"
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/interactive-bg/internal/field"
	"github.com/olivierh59500/interactive-bg/internal/loop"
)

// Host renders a field onto a tcell screen.
type Host struct {
	screen  tcell.Screen
	field   *field.Field
	loop    *loop.Loop
	surface *cellSurface
	stats   field.Stats
}

// New binds f to an initialised screen.
func New(screen tcell.Screen, f *field.Field, fps int, background colorful.Color) *Host {
	h := &Host{
		screen:  screen,
		field:   f,
		loop:    loop.New(fps),
		surface: newCellSurface(background),
	}
	h.syncSize()
	return h
}

// SurfaceSize returns the surface dimensions covered by a cols x rows
// terminal.
func SurfaceSize(cols, rows int) (float64, float64) {
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

// Run draws frames until Stop, a quit key, or ctx cancellation. A quit is
// not an error.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go h.pollEvents(ctx)

	log.Printf("term: running at %v per frame", h.loop.Interval())
	err := h.loop.Run(ctx, h.Frame)
	log.Printf("term: stopped after %d frames", h.loop.Frames())
	if errors.Is(err, loop.ErrStopped) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Stop ends Run after the current frame.
func (h *Host) Stop() { h.loop.Stop() }

// Frame computes and shows one frame.
func (h *Host) Frame() {
	h.stats = h.field.Frame(h.surface)
	h.surface.flush(h.screen)
}

func (h *Host) pollEvents(ctx context.Context) {
	for ctx.Err() == nil {
		ev := h.screen.PollEvent()
		if ev == nil {
			return // screen finalised
		}
		h.handleEvent(ev)
	}
}

func (h *Host) handleEvent(ev tcell.Event) {
	in := h.field.Input()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			h.Stop()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			h.Stop()
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		cols, rows := h.screen.Size()
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			in.LeavePointer()
			return
		}
		in.MovePointer(cellCenter(cx, cy))
	case *tcell.EventFocus:
		if !ev.Focused {
			in.LeavePointer()
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.syncSize()
	}
}

func (h *Host) syncSize() {
	cols, rows := h.screen.Size()
	w, ht := SurfaceSize(cols, rows)
	h.field.Resize(w, ht)
	log.Printf("term: surface resized to %dx%d cells", cols, rows)
}
