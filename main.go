package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/interactive-bg/internal/app"
	"github.com/olivierh59500/interactive-bg/internal/desktop"
	"github.com/olivierh59500/interactive-bg/internal/field"
	"github.com/olivierh59500/interactive-bg/internal/logging"
)

func main() {
	var opts app.Options
	opts.Register(flag.CommandLine)
	flag.Parse()

	if f := logging.Setup(opts.Debug, logging.Dir); f != nil {
		defer f.Close()
	}

	cfg, err := opts.Config()
	if err != nil {
		log.Printf("config: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_, _, background, _ := cfg.Colors()

	// Initialize the field with the window size; Layout keeps it in sync.
	sim := field.New(cfg, float64(cfg.Width), float64(cfg.Height))
	game := desktop.NewGame(sim, field.NewPaint(background, 1).NRGBA())
	log.Printf("desktop: %d particles, %dx%d", sim.Len(), cfg.Width, cfg.Height)

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Interactive Background")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS) // One update per displayed frame

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("desktop: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Printf("desktop: closed")
}
