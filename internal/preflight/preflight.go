// Package preflight checks that the local content server is reachable before
// any window is created.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/mascot-overlay/internal/ui"
)

// DefaultTimeout bounds one probe.
const DefaultTimeout = 2 * time.Second

// ErrNotReady wraps every probe failure.
var ErrNotReady = errors.New("content server not reachable")

// Check opens and closes a TCP connection to addr.
func Check(ctx context.Context, addr string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w at %s: %w", ErrNotReady, addr, err)
	}
	return conn.Close()
}

// Guidance renders the operator message for a failed probe.
func Guidance(addr string, err error) string {
	port := addr
	if _, p, splitErr := net.SplitHostPort(addr); splitErr == nil {
		port = p
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF4040")).
		Render("The mascot content server is not running")

	lines := []string{
		fmt.Sprintf("Nothing accepted a connection on %s.", addr),
		"",
		"Start the local content server first, for example:",
		fmt.Sprintf("  python -m http.server %s", port),
		"from the directory that contains index.html, then run the overlay again.",
	}
	if err != nil {
		lines = append(lines, "", "Error: "+err.Error())
	}
	details := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#999999")).
		Render(strings.Join(lines, "\n"))

	box := ui.Current.Help.BorderForeground(lipgloss.Color("#FF4040"))
	return box.Render(header + "\n\n" + details)
}
