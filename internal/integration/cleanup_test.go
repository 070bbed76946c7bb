package integration

import (
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/mascot-overlay/internal/lifecycle"
	"github.com/stigoleg/mascot-overlay/internal/pointer"
	"github.com/stigoleg/mascot-overlay/internal/ui"
)

const (
	helperEnv    = "TEST_SHUTDOWN_HELPER"
	helperMarker = "TEST_SHUTDOWN_MARKER"
)

// runHelper starts this test binary as a helper that waits for a shutdown
// signal and records its teardown in a marker file.
func runHelper(t *testing.T, sig os.Signal) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("signals cannot be delivered to another process on Windows")
	}
	if testing.Short() {
		t.Skip("skipping shutdown test in short mode")
	}

	marker := filepath.Join(t.TempDir(), "teardown")
	ready := filepath.Join(t.TempDir(), "ready")
	cmd := exec.Command(os.Args[0], "-test.run=^TestShutdownHelper$")
	cmd.Env = append(os.Environ(), helperEnv+"=1", helperMarker+"="+marker, "TEST_SHUTDOWN_READY="+ready)
	require.NoError(t, cmd.Start(), "helper process should start")

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Stat(ready); err == nil {
			break
		}
		if time.Now().After(deadline) {
			cmd.Process.Kill()
			t.Fatal("helper never became ready")
		}
		time.Sleep(20 * time.Millisecond)
	}

	require.NoError(t, cmd.Process.Signal(sig))

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case err := <-done:
		assert.NoError(t, err, "helper should exit cleanly after %v", sig)
	case <-time.After(5 * time.Second):
		cmd.Process.Kill()
		t.Fatal("helper did not exit within timeout")
	}

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	return string(data)
}

func TestShutdownOnSIGINT(t *testing.T) {
	got := runHelper(t, syscall.SIGINT)
	assert.Equal(t, "overlay\nsource\ninbox\nview\n", got)
}

func TestShutdownOnSIGTERM(t *testing.T) {
	got := runHelper(t, syscall.SIGTERM)
	assert.Equal(t, "overlay\nsource\ninbox\nview\n", got)
}

// TestShutdownHelper mirrors the command: the loop closes the overlay, the
// manager stops the source and inbox, and the view goes last.
func TestShutdownHelper(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, shutdownSignals()...)

	listener := pointer.ListenerFunc(func(pointer.Sample) {})

	marker, err := os.Create(os.Getenv(helperMarker))
	require.NoError(t, err)
	defer marker.Close()
	record := func(name string) func() error {
		return func() error {
			_, err := marker.WriteString(name + "\n")
			return err
		}
	}

	inbox := ui.NewInbox(ui.DefaultInboxSize)
	broker := pointer.NewBroker()
	broker.Add(&listener)
	closed := make(chan error, 1)
	go inbox.Pump(func(msg tea.Msg) {
		// The event loop closes the overlay when asked to shut down.
		if _, ok := msg.(ui.ShutdownMsg); ok {
			broker.Remove(&listener)
			closed <- record("overlay")()
		}
	})

	cleanup := lifecycle.NewManager(time.Second)
	cleanup.RegisterFunc("inbox", func() error {
		inbox.Close()
		return record("inbox")()
	})
	cleanup.RegisterFunc("source", record("source"))

	require.NoError(t, os.WriteFile(os.Getenv("TEST_SHUTDOWN_READY"), nil, 0o600))

	<-sigChan
	inbox.Post(ui.ShutdownMsg{})
	require.NoError(t, <-closed)

	require.Empty(t, cleanup.Execute())
	// A second signal must not run teardown again.
	require.Empty(t, cleanup.Execute())
	require.Zero(t, broker.Len())
	require.NoError(t, record("view")())
}

func TestShutdownSignals(t *testing.T) {
	signals := shutdownSignals()
	require.NotEmpty(t, signals)
	names := make([]string, 0, len(signals))
	for _, s := range signals {
		names = append(names, s.String())
	}
	assert.Contains(t, strings.Join(names, ","), "interrupt")
}
