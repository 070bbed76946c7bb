package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/stigoleg/mascot-overlay/internal/util"
)

// DefaultPath returns $XDG_CONFIG_HOME/mascot/config.toml or the platform
// equivalent. It returns an empty string when no config directory exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.toml")
}

// LoadFile overlays the settings in path onto c. A missing file is only an
// error when required is set.
func (c *Config) LoadFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	if md.IsDefined("poll") {
		d, err := util.ParseDuration(c.PollText)
		if err != nil {
			return fmt.Errorf("config %s: poll: %w", path, err)
		}
		c.Poll = d
	}
	c.ConfigPath = path
	return nil
}
