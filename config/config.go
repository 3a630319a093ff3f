// Package config loads the TOML settings file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/survivor/constant"
)

// Config is the full settings tree
type Config struct {
	TickHz    int             `toml:"tick_hz"`
	Seed      int64           `toml:"seed"`
	Input     InputConfig     `toml:"input"`
	Audio     AudioConfig     `toml:"audio"`
	Log       LogConfig       `toml:"log"`
	Spectator SpectatorConfig `toml:"spectator"`
}

// InputConfig holds key hold timing and per-player intent → key overrides
// InitialHoldMs bridges the delay before the terminal's first auto-repeat
type InputConfig struct {
	HoldMs        int               `toml:"hold_ms"`
	InitialHoldMs int               `toml:"initial_hold_ms"`
	Player1       map[string]string `toml:"player1"`
	Player2       map[string]string `toml:"player2"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// SpectatorConfig controls the websocket feed; empty Addr disables it
type SpectatorConfig struct {
	Addr   string `toml:"addr"`
	RateHz int    `toml:"rate_hz"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		TickHz: constant.DefaultTickRate,
		Seed:   0,
		Input: InputConfig{
			HoldMs:        int(constant.DefaultKeyHold / time.Millisecond),
			InitialHoldMs: int(constant.DefaultKeyInitialHold / time.Millisecond),
		},
		Audio: AudioConfig{Enabled: true},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   "survivor.log",
		},
		Spectator: SpectatorConfig{
			Addr:   "",
			RateHz: constant.DefaultSpectatorRate,
		},
	}
}

// DefaultPath returns $HOME/.config/survivor/config.toml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "survivor", "config.toml")
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.TickHz < 1 || c.TickHz > 240 {
		return fmt.Errorf("tick_hz %d out of range 1..240", c.TickHz)
	}
	if c.Input.HoldMs < 20 || c.Input.HoldMs > 2000 {
		return fmt.Errorf("input.hold_ms %d out of range 20..2000", c.Input.HoldMs)
	}
	if c.Input.InitialHoldMs < c.Input.HoldMs || c.Input.InitialHoldMs > 2000 {
		return fmt.Errorf("input.initial_hold_ms %d out of range %d..2000", c.Input.InitialHoldMs, c.Input.HoldMs)
	}
	if c.Spectator.RateHz < 1 || c.Spectator.RateHz > 60 {
		return fmt.Errorf("spectator.rate_hz %d out of range 1..60", c.Spectator.RateHz)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q must be text or json", c.Log.Format)
	}
	return nil
}

// Save writes the config as TOML, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

// Hold returns the key hold timeout between auto-repeats
func (c *Config) Hold() time.Duration {
	return time.Duration(c.Input.HoldMs) * time.Millisecond
}

// InitialHold returns the key hold timeout after a fresh press
func (c *Config) InitialHold() time.Duration {
	return time.Duration(c.Input.InitialHoldMs) * time.Millisecond
}
