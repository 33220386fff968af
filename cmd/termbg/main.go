// Command termbg renders the interactive particle background in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/interactive-bg/internal/app"
	"github.com/olivierh59500/interactive-bg/internal/field"
	"github.com/olivierh59500/interactive-bg/internal/logging"
	"github.com/olivierh59500/interactive-bg/internal/term"
)

func main() {
	var opts app.Options
	opts.Register(flag.CommandLine)
	flag.Parse()

	if f := logging.Setup(opts.Debug, logging.Dir); f != nil {
		defer f.Close()
	}

	if err := run(opts); err != nil {
		log.Printf("termbg: %v", err)
		fmt.Fprintf(os.Stderr, "termbg: %v\n", err)
		os.Exit(1)
	}
}

func run(opts app.Options) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	_, _, background, err := cfg.Colors()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "termbg crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	w, h := term.SurfaceSize(screen.Size())
	sim := field.New(cfg, w, h)
	log.Printf("termbg: %d particles at %d fps", sim.Len(), cfg.FPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return term.New(screen, sim, cfg.FPS, background).Run(ctx)
}
