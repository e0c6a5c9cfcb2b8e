package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	data := `
[arena]
width = 200.0
height = 120.0

[game]
seed = 42

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena.Width != 200 || cfg.Arena.Height != 120 {
		t.Errorf("arena = %+v", cfg.Arena)
	}
	if cfg.Game.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Game.Seed)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	// Untouched sections keep their defaults
	if cfg.Audio.MasterVolume != Default().Audio.MasterVolume {
		t.Errorf("audio volume = %v, want default", cfg.Audio.MasterVolume)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative arena", "[arena]\nwidth = -5.0\nheight = 10.0\n"},
		{"volume out of range", "[audio]\nmaster_volume = 1.5\n"},
		{"unknown log level", "[log]\nlevel = \"verbose\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
