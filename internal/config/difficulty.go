package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// Level returns the current difficulty level (0.0 to 1.0) based on score or play time.
// When progression is disabled the level stays at zero so base values apply unchanged.
func (d *DifficultyManager) Level(score int, elapsed time.Duration) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed.Seconds() / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales an enemy speed by the current difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsed time.Duration) float64 {
	level := d.Level(score, elapsed)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval shortens a spawn interval by the current difficulty level,
// never going below floor.
func (d *DifficultyManager) SpawnInterval(base, floor time.Duration, score int, elapsed time.Duration) time.Duration {
	level := d.Level(score, elapsed)
	reduction := time.Duration(level * float64(Ms(d.cfg.Scaling.SpawnReduction)))
	result := base - reduction
	if result < floor {
		result = floor
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
