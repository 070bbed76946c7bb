package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/stigoleg/mascot-overlay/internal/app"
	"github.com/stigoleg/mascot-overlay/internal/config"
	"github.com/stigoleg/mascot-overlay/internal/content"
	"github.com/stigoleg/mascot-overlay/internal/lifecycle"
	"github.com/stigoleg/mascot-overlay/internal/overlay"
	"github.com/stigoleg/mascot-overlay/internal/platform"
	"github.com/stigoleg/mascot-overlay/internal/pointer"
	"github.com/stigoleg/mascot-overlay/internal/ui"
	"github.com/stigoleg/mascot-overlay/internal/view"
)

const appVersion = "0.1.0"

var errShutdownTimeout = errors.New("event loop did not stop in time")

func init() {
	// The toolkit main loop must own the main OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main(context.Background(), os.Args[1:], os.Stdout, os.Stderr, appVersion, launch))
}

// launch builds the overlay and runs it until the web view closes, the
// user quits from the terminal, or a signal arrives. The web view runs on
// the main thread and the event loop on its own goroutine.
func launch(ctx context.Context, cfg *config.Config) error {
	platform.PrepareEnvironment()

	v, err := view.New(view.Options{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Debug:  cfg.Debug,
	})
	if err != nil {
		return err
	}

	// Toolkit teardown stays on the main thread, after every other step.
	defer v.Destroy()

	cleanup := lifecycle.NewManager(lifecycle.DefaultTimeout)
	defer cleanup.Execute()

	inbox := ui.NewInbox(ui.DefaultInboxSize)
	cleanup.RegisterFunc("inbox", func() error {
		if n := inbox.Dropped(); n > 0 {
			log.Printf("inbox dropped %d pointer samples", n)
		}
		inbox.Close()
		return nil
	})

	bridge := content.Bridge{
		OnPointer: func(ev overlay.NativeEvent) { inbox.Post(ui.NativeMsg(ev)) },
		OnReady:   func() { inbox.Post(ui.ReadyMsg{}) },
	}
	if err := bridge.Install(v); err != nil {
		return fmt.Errorf("install content bridge: %w", err)
	}

	popts := platform.Options{
		Title:         cfg.Title,
		Native:        v.Native(),
		Dispatch:      v.Dispatch,
		BeginMoveDrag: v.BeginMoveDrag,
		PollInterval:  cfg.Poll,
	}
	host := platform.NewHostWindow(popts)
	source := platform.NewPointerSource(popts)
	log.Printf("pointer backend: %s", source.Environment())
	cleanup.RegisterFunc("pointer source", func() error {
		source.Stop()
		return nil
	})

	broker := pointer.Global()
	win := overlay.New(overlay.Options{
		Title:     cfg.Title,
		URL:       cfg.URL,
		Position:  pointer.Point{X: cfg.X, Y: cfg.Y},
		Width:     cfg.Width,
		Height:    cfg.Height,
		Threshold: cfg.DragThreshold(),
		Scale:     cfg.Scale,
		Emit:      func(s pointer.Sample) { inbox.PostSample(s) },
	}, host, v, source, broker)

	p := tea.NewProgram(ui.NewModel(win, broker, inbox), programOptions(cfg)...)

	go inbox.Pump(p.Send)

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
		// Quitting from the terminal closes the web view too.
		v.Terminate()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			if isHangupForPlatform(sig) {
				log.Printf("terminal hung up, shutting down")
			} else {
				log.Printf("Received signal: %v", sig)
			}
		case <-ctx.Done():
		}
		// The loop closes the overlay itself before quitting.
		inbox.Post(ui.ShutdownMsg{})
	}()

	v.Run()
	inbox.Post(ui.ViewClosedMsg{})

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("event loop: %w", err)
		}
		return nil
	case <-time.After(lifecycle.DefaultTimeout):
		p.Kill()
		return errShutdownTimeout
	}
}

// programOptions selects the terminal status panel when stdout is a
// terminal, and a headless loop otherwise.
func programOptions(cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithoutSignalHandler()}
	if cfg.Headless || !isatty.IsTerminal(os.Stdout.Fd()) {
		log.Printf("running without status panel")
		return append(opts, tea.WithInput(nil), tea.WithoutRenderer())
	}
	return append(opts, tea.WithAltScreen())
}
