// Package app runs the command-line front of the overlay: settings, logging
// and the content server probe, before handing over to a launcher that
// builds the windows.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/mascot-overlay/internal/config"
	"github.com/stigoleg/mascot-overlay/internal/preflight"
)

// Exit codes returned by Main.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Launcher builds and runs the overlay once the environment is known to be
// usable. It returns when the overlay has shut down.
type Launcher func(ctx context.Context, cfg *config.Config) error

// Main parses args, prepares logging, probes the content server and calls
// launch. It returns the process exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer, version string, launch Launcher) int {
	cfg, err := config.ParseFlags(args, stdout)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, config.ErrVersion):
		fmt.Fprintln(stdout, config.VersionString(version))
		return ExitOK
	case err != nil:
		fmt.Fprintln(stderr, config.FormatError(err))
		return ExitFailure
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, config.AppName)
		if err != nil {
			fmt.Fprintln(stderr, config.FormatError(fmt.Errorf("open log file: %w", err)))
			return ExitFailure
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("starting %s", config.VersionString(version))
	if cfg.ConfigPath != "" {
		log.Printf("settings read from %s", cfg.ConfigPath)
	}

	if err := preflight.Check(ctx, cfg.Probe, preflight.DefaultTimeout); err != nil {
		log.Printf("preflight failed: %v", err)
		fmt.Fprintln(stderr, preflight.Guidance(cfg.Probe, err))
		return ExitFailure
	}

	if err := launch(ctx, cfg); err != nil {
		log.Printf("overlay failed: %v", err)
		fmt.Fprintln(stderr, config.FormatError(err))
		return ExitFailure
	}
	log.Printf("shutdown complete")
	return ExitOK
}
