package config

import (
	"errors"
	"fmt"
	"math"
	"net"
	"time"
)

// AppName is the binary and configuration directory name.
const AppName = "mascot"

// Config holds the overlay settings after merging defaults, the config file
// and command-line flags.
type Config struct {
	Title    string        `toml:"title"`
	URL      string        `toml:"url"`
	Probe    string        `toml:"probe"`
	X        int           `toml:"x"`
	Y        int           `toml:"y"`
	Width    int           `toml:"width"`
	Height   int           `toml:"height"`
	Scale    float64       `toml:"scale"`
	Poll     time.Duration `toml:"-"`
	PollText string        `toml:"poll"`
	LogFile  string        `toml:"log"`
	Headless bool          `toml:"headless"`
	Debug    bool          `toml:"debug"`

	// ConfigPath is the file the settings were read from, if any.
	ConfigPath string `toml:"-"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Title:   "Mascota Live2D",
		URL:     "http://127.0.0.1:8000",
		Probe:   "127.0.0.1:8000",
		X:       100,
		Y:       100,
		Width:   400,
		Height:  500,
		Scale:   1,
		Poll:    16 * time.Millisecond,
		LogFile: "debug.log",
	}
}

// dragThreshold is the drag threshold in device-independent pixels.
const dragThreshold = 6

// DragThreshold returns the drag threshold in device pixels.
func (c Config) DragThreshold() int {
	t := int(math.Round(dragThreshold * c.Scale))
	if t < 1 {
		return 1
	}
	return t
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Title == "" {
		errs = append(errs, errors.New("title must not be empty"))
	}
	if c.URL == "" {
		errs = append(errs, errors.New("url must not be empty"))
	}
	if _, _, err := net.SplitHostPort(c.Probe); err != nil {
		errs = append(errs, fmt.Errorf("probe must be host:port: %w", err))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %v must be positive", c.Scale))
	}
	if c.Poll <= 0 {
		errs = append(errs, fmt.Errorf("poll interval %v must be positive", c.Poll))
	}
	return errors.Join(errs...)
}
