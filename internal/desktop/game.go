// Package desktop hosts the particle field in an ebiten window. Frames are
// driven by the display refresh: Update computes one frame into a display
// list and Draw replays it.
package desktop

import (
	"fmt"
	"image/color"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/interactive-bg/internal/field"
)

// Game implements ebiten.Game around a field.
type Game struct {
	field      *field.Field
	frame      field.DisplayList
	stats      field.Stats
	background color.NRGBA

	Paused  bool
	ShowHUD bool

	width, height int
	stopped       atomic.Bool
}

// NewGame wraps f. The background colour fills the window before each frame.
func NewGame(f *field.Field, background color.NRGBA) *Game {
	return &Game{
		field:      f,
		background: background,
	}
}

// Stop makes the next Update end the run loop.
func (g *Game) Stop() { g.stopped.Store(true) }

// Update is called once per display refresh.
func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}
	g.handleInput()
	return g.step()
}

// step computes the next frame unless stopped or paused. While paused the
// previous display list is left intact so Draw keeps showing it.
func (g *Game) step() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}
	if g.Paused {
		return nil
	}
	g.frame.Reset()
	g.stats = g.field.Frame(&g.frame)
	return nil
}

// Draw replays the last computed frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Replay(imageSurface{dst: screen, background: g.background})

	if g.ShowHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.1f  particles %d  links %d  pointer %d",
			ebiten.ActualFPS(), g.stats.Particles, g.stats.Links, g.stats.PointerLinks))
	}
}

// Layout tracks the window size one to one and forwards changes as resize
// events.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.Resize(float64(outsideWidth), float64(outsideHeight))
		log.Printf("desktop: surface resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("desktop: escape pressed, stopping")
		g.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.ShowHUD = !g.ShowHUD
	}

	mx, my := ebiten.CursorPosition()
	g.trackPointer(mx, my, ebiten.IsFocused())
}

// trackPointer turns a polled cursor position into move/leave events.
func (g *Game) trackPointer(mx, my int, focused bool) {
	in := g.field.Input()
	if focused && mx >= 0 && my >= 0 && mx < g.width && my < g.height {
		in.MovePointer(float64(mx), float64(my))
		return
	}
	in.LeavePointer()
}
