// Package logging routes the standard logger for the background hosts.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// Dir is where debug logs are written, relative to the working directory.
	Dir      = "logs"
	FileName = "interactive-bg.log"
	MaxSize  = 10 * 1024 * 1024 // Rotate beyond 10 MiB
)

// Setup discards all log output unless debug is set, in which case it
// appends to dir/FileName, rotating an oversized file first. The returned
// file is nil when logging is disabled or could not be opened; callers close
// it on exit.
func Setup(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "create log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxSize {
		rotated := filepath.Join(dir, fmt.Sprintf("interactive-bg-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "rotate log: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
