package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

// DefaultTanksConfig returns the built-in tank configuration.
// Speeds are the original per-frame values scaled to a 60 Hz second.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		Player: PlayerConfig{
			Width:        65,
			Height:       35,
			MoveSpeed:    300, // 5 px per frame
			TurnSpeed:    300, // 5 degrees per frame
			Lives:        3,
			SpawnOffset:  50,
			InvincibleMS: 3000,
		},
		Bullets: BulletConfig{
			Speed:      420, // 7 px per frame
			Size:       6,
			FireRateMS: 300,
			MaxBullets: 5,
			ReloadMS:   1500,
		},
		Enemies: EnemyConfig{
			Base: VariantConfig{Size: 40, Health: 1, Speed: 60, Score: 10, DamagePerHit: 1},
			Fast: VariantConfig{Size: 50, Health: 2, Speed: 72, Score: 20, DamagePerHit: 1},
			Boss: VariantConfig{Size: 100, Health: 100, Speed: 30, Score: 150, DamagePerHit: 5, HealOnSteal: 20},

			CarrierSpeed: 90,
			DescentSpeed: 120,
			RepelRadius:  60,
			RepelFactor:  0.05,
			FastAfterMS:  30000,
			FastChance:   30,
			BossAfterMS:  60000,
			BossChance:   10,
		},
		Campaign: CampaignConfig{
			ArenaSize:       800,
			Margin:          65,
			CorridorWidth:   250,
			DiamondSize:     30,
			PortalSize:      100,
			SpawnIntervalMS: 5000,
			MusicVolume:     80,
			SFXVolume:       80,
		},
		Survival: SurvivalConfig{
			ArenaSize:          850,
			Margin:             100,
			EnemyPadding:       5,
			WanderSpeed:        60,
			SpawnIntervalMS:    5000,
			MinSpawnIntervalMS: 2000,
			SpawnDecayMS:       200,
			MusicVolume:        64,
			SFXVolume:          64,
		},
		Effects: EffectsConfig{
			ExplosionMS:  500,
			MarkCapacity: 64,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 300, // 5 minutes
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  2000,
			},
		},
	}
}

// DefaultYAML returns the embedded default tank YAML.
func DefaultYAML() []byte {
	return defaultTanksYAML
}
