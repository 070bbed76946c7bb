package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseFlagsDefaults(t *testing.T) {
	isolate(t)

	cfg, err := ParseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)

	want := Defaults()
	assert.Equal(t, want.Title, cfg.Title)
	assert.Equal(t, want.URL, cfg.URL)
	assert.Equal(t, want.Probe, cfg.Probe)
	assert.Equal(t, 100, cfg.X)
	assert.Equal(t, 100, cfg.Y)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
	assert.Equal(t, 16*time.Millisecond, cfg.Poll)
	assert.Equal(t, "debug.log", cfg.LogFile)
	assert.False(t, cfg.Headless)
	assert.Empty(t, cfg.ConfigPath)
}

func TestParseFlagsExplicit(t *testing.T) {
	isolate(t)

	cfg, err := ParseFlags([]string{
		"-title", "Mascot",
		"-url", "http://localhost:9000/index.html",
		"-probe", "localhost:9000",
		"-x", "10", "-y", "-20",
		"-width", "300", "-height", "320",
		"-scale", "1.5",
		"-poll", "8",
		"-log", "",
		"-headless",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "Mascot", cfg.Title)
	assert.Equal(t, "http://localhost:9000/index.html", cfg.URL)
	assert.Equal(t, "localhost:9000", cfg.Probe)
	assert.Equal(t, 10, cfg.X)
	assert.Equal(t, -20, cfg.Y)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 320, cfg.Height)
	assert.Equal(t, 1.5, cfg.Scale)
	assert.Equal(t, 8*time.Millisecond, cfg.Poll)
	assert.Empty(t, cfg.LogFile)
	assert.True(t, cfg.Headless)
}

func TestParseFlagsConfigFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
title = "From file"
url = "http://127.0.0.1:8080"
width = 250
poll = "20ms"
`)

	cfg, err := ParseFlags([]string{"-config", path, "-width", "260"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "From file", cfg.Title)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.URL)
	assert.Equal(t, 260, cfg.Width, "flag overrides file")
	assert.Equal(t, 500, cfg.Height, "default kept")
	assert.Equal(t, 20*time.Millisecond, cfg.Poll)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestParseFlagsDefaultConfigFile(t *testing.T) {
	dir := isolate(t)
	path := DefaultPath()
	require.NotEmpty(t, path)
	require.True(t, filepath.IsAbs(path))
	require.Contains(t, path, dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("x = 42\n"), 0o600))

	cfg, err := ParseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.X)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestParseFlagsConfigErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown key", body: "colour = \"red\"\n", want: "unknown keys"},
		{name: "bad poll", body: "poll = \"soon\"\n", want: "poll"},
		{name: "bad syntax", body: "width = \n", want: "read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := ParseFlags([]string{"-config", path}, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseFlagsMissingExplicitConfig(t *testing.T) {
	isolate(t)

	_, err := ParseFlags([]string{"-config", filepath.Join(t.TempDir(), "absent.toml")}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.toml")
}

func TestParseFlagsHelpAndVersion(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	_, err := ParseFlags([]string{"-help"}, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "Usage: mascot")
	for _, f := range Flags {
		assert.Contains(t, out.String(), "-"+f.Name)
	}

	_, err = ParseFlags([]string{"-version"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrVersion)
	_, err = ParseFlags([]string{"-v"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrVersion)
}

func TestParseFlagsInvalid(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown flag", args: []string{"-duration", "5"}, want: "duration"},
		{name: "bad poll", args: []string{"-poll", "fast"}, want: "Valid formats"},
		{name: "zero poll", args: []string{"-poll", "0"}, want: "positive"},
		{name: "zero width", args: []string{"-width", "0"}, want: "window size"},
		{name: "negative scale", args: []string{"-scale", "-1"}, want: "scale"},
		{name: "empty title", args: []string{"-title", ""}, want: "title"},
		{name: "bad probe", args: []string{"-probe", "localhost"}, want: "host:port"},
		{name: "positional", args: []string{"extra"}, want: "unexpected arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDragThreshold(t *testing.T) {
	tests := []struct {
		scale float64
		want  int
	}{
		{scale: 1, want: 6},
		{scale: 1.25, want: 8},
		{scale: 2, want: 12},
		{scale: 0.1, want: 1},
	}
	for _, tt := range tests {
		cfg := Defaults()
		cfg.Scale = tt.scale
		assert.Equal(t, tt.want, cfg.DragThreshold(), "scale %v", tt.scale)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Width = 0
	cfg.Scale = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "scale")
}

func TestFormatError(t *testing.T) {
	boxed := FormatError(errors.New("invalid poll\n\nValid formats: 16ms"))
	assert.Contains(t, boxed, "invalid poll")
	assert.Contains(t, boxed, "Valid formats")

	plain := FormatError(errors.New("width must be positive"))
	assert.Contains(t, plain, "width must be positive")
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "Mascot Overlay Version: 1.2.3", VersionString("1.2.3"))
}
