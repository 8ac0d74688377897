// Package config loads sortviz settings from a TOML file.
//
// The file is optional. Missing keys keep their defaults, unknown keys are
// rejected so typos do not go unnoticed. Command-line flags override
// whatever the file sets.
//
// Example config.toml:
//
//	size = 60
//	algorithm = "quick"
//	delay = "30ms"
//
//	[canvas]
//	width = 1024
//	height = 480
//	gap = 1
//
//	[palette]
//	primary = "#e06c75"
//	secondary = "#98c379"
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/render/bars"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

const (
	appName  = "sortviz"
	fileName = "config.toml"

	// DefaultSize is the array size used when neither flag nor file set one.
	DefaultSize = 50

	// DefaultAddr is the listen address of the HTTP server.
	DefaultAddr = "127.0.0.1:8080"
)

// Duration is a time.Duration written as a string ("20ms") in TOML.
type Duration struct{ time.Duration }

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Terminal sizes the live bar chart in character cells. Zero means "fit
// the terminal window".
type Terminal struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Server configures `sortviz serve`.
type Server struct {
	Addr string `toml:"addr"`
}

// Config is the full set of user settings.
type Config struct {
	Size      int          `toml:"size"`
	Algorithm string       `toml:"algorithm,omitempty"`
	Seed      uint64       `toml:"seed,omitempty"`
	Delay     Duration     `toml:"delay"`
	Canvas    bars.Config  `toml:"canvas"`
	Palette   bars.Palette `toml:"palette"`
	Terminal  Terminal     `toml:"terminal"`
	Server    Server       `toml:"server"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Size:    DefaultSize,
		Delay:   Duration{sorting.DefaultDelay},
		Canvas:  bars.DefaultConfig(),
		Palette: bars.DefaultPalette(),
		Server:  Server{Addr: DefaultAddr},
	}
}

// Validate checks value ranges. Size is not checked here; it is clamped
// where it is used.
func (c Config) Validate() error {
	if err := c.Canvas.Validate(); err != nil {
		return err
	}
	if c.Delay.Duration < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "delay cannot be negative")
	}
	if c.Terminal.Width < 0 || c.Terminal.Height < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "terminal size cannot be negative")
	}
	if c.Algorithm != "" {
		if _, err := sorting.ParseAlgorithm(c.Algorithm); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "algorithm")
		}
	}
	return nil
}

// Load reads the file at path on top of [Default]. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML to path, creating parent directories.
func Write(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/sortviz/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}
