package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeTanks(tanksFile, DefaultYAML())
	if err != nil {
		t.Fatalf("decodeTanks(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTanksConfig()) {
		t.Errorf("embedded tanks.yaml = %+v, expected %+v", cfg, DefaultTanksConfig())
	}
}

func TestLoadTanksCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		file  string
		body  string
		check func(t *testing.T, cfg TanksConfig)
	}{
		{
			name: "yaml partial",
			file: "tanks.yaml",
			body: "player:\n  lives: 7\n",
			check: func(t *testing.T, cfg TanksConfig) {
				if cfg.Player.Lives != 7 {
					t.Errorf("Player.Lives = %d, expected 7", cfg.Player.Lives)
				}
				if cfg.Player.Width != 65 {
					t.Errorf("Player.Width = %v, expected default 65", cfg.Player.Width)
				}
			},
		},
		{
			name: "toml partial",
			file: "tanks.toml",
			body: "[bullets]\nspeed = 480.0\n\n[difficulty]\nenabled = true\n",
			check: func(t *testing.T, cfg TanksConfig) {
				if cfg.Bullets.Speed != 480 {
					t.Errorf("Bullets.Speed = %v, expected 480", cfg.Bullets.Speed)
				}
				if !cfg.Difficulty.Enabled {
					t.Error("Difficulty.Enabled = false, expected true")
				}
				if cfg.Bullets.MaxBullets != 5 {
					t.Errorf("Bullets.MaxBullets = %d, expected default 5", cfg.Bullets.MaxBullets)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadTanks(path)
			if err != nil {
				t.Fatalf("LoadTanks() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadTanksErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[bullets\nspeed ="), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.yaml"), bad} {
		cfg, err := LoadTanks(path)
		if err == nil {
			t.Errorf("LoadTanks(%q) expected an error", path)
		}
		if !reflect.DeepEqual(cfg, DefaultTanksConfig()) {
			t.Errorf("LoadTanks(%q) should fall back to defaults", path)
		}
	}
}

func TestApplyTanksPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{"", false, 0, 3},
		{DifficultyFixed, false, 0, 3},
		{DifficultyEasy, true, 0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTanksConfig()
			ApplyTanksPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.level)
			}
			if cfg.Player.Lives != tt.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tt.lives)
			}
		})
	}
}

func TestDifficultyScaling(t *testing.T) {
	cfg := DefaultTanksConfig().Difficulty

	off := NewDifficultyManager(cfg)
	if got := off.Speed(60, 0, 10*time.Minute); got != 60 {
		t.Errorf("disabled Speed() = %v, expected 60", got)
	}

	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	tests := []struct {
		elapsed  time.Duration
		speed    float64
		interval time.Duration
	}{
		{0, 60, 5 * time.Second},
		{150 * time.Second, 75, 4 * time.Second},
		{300 * time.Second, 90, 3 * time.Second},
		{time.Hour, 90, 3 * time.Second},
	}

	for _, tt := range tests {
		if got := d.Speed(60, 0, tt.elapsed); got != tt.speed {
			t.Errorf("Speed(60, %v) = %v, expected %v", tt.elapsed, got, tt.speed)
		}
		if got := d.SpawnInterval(5*time.Second, time.Second, 0, tt.elapsed); got != tt.interval {
			t.Errorf("SpawnInterval(%v) = %v, expected %v", tt.elapsed, got, tt.interval)
		}
	}

	if got := d.SpawnInterval(2*time.Second, 1500*time.Millisecond, 0, time.Hour); got != 1500*time.Millisecond {
		t.Errorf("SpawnInterval floor = %v, expected 1.5s", got)
	}
}
