package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const tanksFile = "tanks.yaml"

// LoadTanks loads the tank configuration.
// Search order: customPath -> ~/.battleground/configs/tanks.yaml -> ./configs/tanks.yaml -> embedded default.
// Files ending in .toml are decoded as TOML, everything else as YAML.
// Keys missing from a file keep their built-in defaults.
func LoadTanks(customPath string) (TanksConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTanksConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeTanks(customPath, data)
		if err != nil {
			return DefaultTanksConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(tanksFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeTanks(userCfgPath, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", tanksFile)
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := decodeTanks(local, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeTanks(tanksFile, defaultTanksYAML)
	if err != nil {
		return DefaultTanksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeTanks unmarshals data over the hardcoded defaults.
func decodeTanks(path string, data []byte) (TanksConfig, error) {
	cfg := DefaultTanksConfig()
	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return DefaultTanksConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".battleground", "configs", filename)
}

// ApplyTanksPreset modifies the config based on a difficulty preset.
func ApplyTanksPreset(cfg *TanksConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Campaign.SpawnIntervalMS = 6000
		cfg.Survival.SpawnIntervalMS = 6000
		cfg.Survival.MinSpawnIntervalMS = 3000
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Campaign.SpawnIntervalMS = 4000
		cfg.Survival.SpawnIntervalMS = 4000
		cfg.Survival.MinSpawnIntervalMS = 1500
		cfg.Enemies.BossChance = 15
	}
}
