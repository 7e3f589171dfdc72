// Package config loads cardcycle settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up under the user config directory.
const FileName = "cardcycle.toml"

// Config holds all cardcycle settings.
type Config struct {
	Store    StoreConfig    `toml:"store"`
	Calendar CalendarConfig `toml:"calendar"`
	Review   ReviewConfig   `toml:"review"`
}

// StoreConfig locates the database.
type StoreConfig struct {
	Path string `toml:"path"` // empty = default data directory
}

// CalendarConfig decides what "today" means.
type CalendarConfig struct {
	Timezone  string `toml:"timezone"`   // IANA name, "Local" or empty for the system zone
	WeekStart string `toml:"week_start"` // weekday name the week view begins on
}

// ReviewConfig tunes review sessions.
type ReviewConfig struct {
	Shuffle bool `toml:"shuffle"`
}

// Defaults returns a Config with every default applied.
func Defaults() Config {
	return Config{
		Calendar: CalendarConfig{
			Timezone:  "Local",
			WeekStart: "monday",
		},
		Review: ReviewConfig{
			Shuffle: true,
		},
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// LoadDefault loads path when given, else the file in the user config
// directory if it exists, else the defaults.
func LoadDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	found, ok := DefaultPath()
	if !ok {
		cfg := Defaults()
		return &cfg, nil
	}
	if _, err := os.Stat(found); err != nil {
		cfg := Defaults()
		return &cfg, nil
	}
	return Load(found)
}

// DefaultPath returns $XDG_CONFIG_HOME/cardcycle/cardcycle.toml, falling
// back to ~/.config.
func DefaultPath() (string, bool) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "cardcycle", FileName), true
}

// ApplyEnv overrides settings from CARDCYCLE_* environment variables.
func (c *Config) ApplyEnv() {
	if p := os.Getenv("CARDCYCLE_DB"); p != "" {
		c.Store.Path = p
	}
	if tz := os.Getenv("CARDCYCLE_TIMEZONE"); tz != "" {
		c.Calendar.Timezone = tz
	}
	if ws := os.Getenv("CARDCYCLE_WEEK_START"); ws != "" {
		c.Calendar.WeekStart = ws
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("calendar.timezone: %w", err))
	}
	if _, err := c.WeekStartDay(); err != nil {
		errs = append(errs, fmt.Errorf("calendar.week_start: %w", err))
	}

	return errors.Join(errs...)
}

// Location resolves calendar.timezone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Calendar.Timezone {
	case "", "Local", "local":
		return time.Local, nil
	}
	return time.LoadLocation(c.Calendar.Timezone)
}

// WeekStartDay resolves calendar.week_start.
func (c *Config) WeekStartDay() (time.Weekday, error) {
	if c.Calendar.WeekStart == "" {
		return time.Monday, nil
	}
	return ParseWeekday(c.Calendar.WeekStart)
}

// ParseWeekday accepts full or three-letter English weekday names in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
