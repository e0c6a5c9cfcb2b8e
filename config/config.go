package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the top-level host configuration
type Config struct {
	Arena ArenaConfig `toml:"arena"`
	Game  GameConfig  `toml:"game"`
	Audio AudioConfig `toml:"audio"`
	Log   LogConfig   `toml:"log"`
}

// ArenaConfig sizes the play field in arena units
type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// GameConfig controls simulation behavior
type GameConfig struct {
	// Seed feeds gameplay RNGs; zero picks a time-based seed at startup
	Seed uint64 `toml:"seed"`
}

// AudioConfig controls sound playback
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

// LogConfig controls structured logging output
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  160,
			Height: 90,
		},
		Game: GameConfig{
			Seed: 0,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.7,
		},
		Log: LogConfig{
			Level: "info",
			Path:  "",
		},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena dimensions must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("master_volume must be in [0, 1], got %g", c.Audio.MasterVolume)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
