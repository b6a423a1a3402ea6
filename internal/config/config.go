// Package config provides YAML/TOML-based tank configuration loading and
// difficulty management for the battleground.
package config

import "time"

// TanksConfig contains every tunable of the tank simulation.
// Distances are world pixels, speeds are pixels (or degrees) per second,
// times are milliseconds.
type TanksConfig struct {
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Bullets    BulletConfig     `yaml:"bullets" toml:"bullets"`
	Enemies    EnemyConfig      `yaml:"enemies" toml:"enemies"`
	Campaign   CampaignConfig   `yaml:"campaign" toml:"campaign"`
	Survival   SurvivalConfig   `yaml:"survival" toml:"survival"`
	Effects    EffectsConfig    `yaml:"effects" toml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayerConfig defines tank parameters shared by both seats.
type PlayerConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	MoveSpeed    float64 `yaml:"move_speed" toml:"move_speed"`
	TurnSpeed    float64 `yaml:"turn_speed" toml:"turn_speed"`
	Lives        int     `yaml:"lives" toml:"lives"`
	SpawnOffset  float64 `yaml:"spawn_offset" toml:"spawn_offset"` // Distance from the arena side walls
	InvincibleMS int     `yaml:"invincible_ms" toml:"invincible_ms"`
}

// BulletConfig defines ammo and projectile parameters.
type BulletConfig struct {
	Speed      float64 `yaml:"speed" toml:"speed"`
	Size       float64 `yaml:"size" toml:"size"`
	FireRateMS int     `yaml:"fire_rate_ms" toml:"fire_rate_ms"`
	MaxBullets int     `yaml:"max_bullets" toml:"max_bullets"`
	ReloadMS   int     `yaml:"reload_ms" toml:"reload_ms"`
}

// VariantConfig defines one enemy variant.
type VariantConfig struct {
	Size         float64 `yaml:"size" toml:"size"`
	Health       int     `yaml:"health" toml:"health"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	Score        int     `yaml:"score" toml:"score"`
	DamagePerHit int     `yaml:"damage_per_hit" toml:"damage_per_hit"`
	HealOnSteal  int     `yaml:"heal_on_steal" toml:"heal_on_steal"`
}

// EnemyConfig defines the enemy variant table and spawn rolls.
type EnemyConfig struct {
	Base         VariantConfig `yaml:"base" toml:"base"`
	Fast         VariantConfig `yaml:"fast" toml:"fast"`
	Boss         VariantConfig `yaml:"boss" toml:"boss"`
	CarrierSpeed float64       `yaml:"carrier_speed" toml:"carrier_speed"`
	DescentSpeed float64       `yaml:"descent_speed" toml:"descent_speed"`
	RepelRadius  float64       `yaml:"repel_radius" toml:"repel_radius"`
	RepelFactor  float64       `yaml:"repel_factor" toml:"repel_factor"`
	FastAfterMS  int           `yaml:"fast_after_ms" toml:"fast_after_ms"`
	FastChance   int           `yaml:"fast_chance" toml:"fast_chance"` // Percent
	BossAfterMS  int           `yaml:"boss_after_ms" toml:"boss_after_ms"`
	BossChance   int           `yaml:"boss_chance" toml:"boss_chance"` // Percent
}

// CampaignConfig defines the objective arena.
type CampaignConfig struct {
	ArenaSize       float64 `yaml:"arena_size" toml:"arena_size"`
	Margin          float64 `yaml:"margin" toml:"margin"`
	CorridorWidth   float64 `yaml:"corridor_width" toml:"corridor_width"`
	DiamondSize     float64 `yaml:"diamond_size" toml:"diamond_size"`
	PortalSize      float64 `yaml:"portal_size" toml:"portal_size"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`
	MusicVolume     int     `yaml:"music_volume" toml:"music_volume"`
	SFXVolume       int     `yaml:"sfx_volume" toml:"sfx_volume"`
}

// SurvivalConfig defines the wave-defense arena.
type SurvivalConfig struct {
	ArenaSize          float64 `yaml:"arena_size" toml:"arena_size"`
	Margin             float64 `yaml:"margin" toml:"margin"`
	EnemyPadding       float64 `yaml:"enemy_padding" toml:"enemy_padding"`
	WanderSpeed        float64 `yaml:"wander_speed" toml:"wander_speed"`
	SpawnIntervalMS    int     `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`
	MinSpawnIntervalMS int     `yaml:"min_spawn_interval_ms" toml:"min_spawn_interval_ms"`
	SpawnDecayMS       int     `yaml:"spawn_decay_ms" toml:"spawn_decay_ms"`
	MusicVolume        int     `yaml:"music_volume" toml:"music_volume"`
	SFXVolume          int     `yaml:"sfx_volume" toml:"sfx_volume"`
}

// EffectsConfig defines cosmetic entity lifetimes.
type EffectsConfig struct {
	ExplosionMS  int `yaml:"explosion_ms" toml:"explosion_ms"`
	MarkCapacity int `yaml:"mark_capacity" toml:"mark_capacity"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to enemy speed at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction" toml:"spawn_reduction"`   // Milliseconds cut from the spawn interval at max difficulty
}

// Ms converts a millisecond config value to a duration.
func Ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
