package tanks

import (
	"time"

	"github.com/vovakirdan/tank-battleground/internal/config"
	"github.com/vovakirdan/tank-battleground/internal/core"
)

// Mode selects the ruleset a Sim runs.
type Mode int

const (
	ModeCampaign Mode = iota // Defend the diamond against portal waves
	ModeSurvival             // Hold out as long as possible
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeCampaign:
		return "campaign"
	case ModeSurvival:
		return "survival"
	default:
		return "unknown"
	}
}

// Variant tags an enemy kind.
type Variant int

const (
	VariantBase Variant = iota
	VariantFast
	VariantBoss
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantBase:
		return "base"
	case VariantFast:
		return "fast"
	case VariantBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// VariantStats holds the per-variant constants.
type VariantStats struct {
	Size         float64
	Health       int
	Speed        float64 // px/s
	Score        int
	DamagePerHit int // Health removed by one bullet
	HealOnSteal  int // Health gained when taking the diamond
	Repels       bool
}

// ModeConfig parametrizes one Sim. Campaign and survival differ only here.
type ModeConfig struct {
	Mode Mode

	Arena     float64  // Side of the square world
	Play      core.Box // Area tanks and enemies fight in
	Corridor  core.Box // Gate and hallway band; zero-sized when absent
	Portal    core.Box // Enemy entry, campaign only
	Objective bool     // Diamond mechanic active

	// Tanks
	PlayerSize  core.Vec
	MoveSpeed   float64 // px/s
	TurnSpeed   float64 // deg/s
	Lives       int
	SpawnOffset float64
	Invincible  time.Duration

	// Ammo and bullets
	BulletSpeed float64
	BulletSize  float64
	MaxBullets  int
	FireRate    time.Duration
	ReloadTime  time.Duration

	// Enemies
	Base, Fast, Boss VariantStats
	CarrierSpeed     float64
	DescentSpeed     float64
	RepelRadius      float64
	RepelFactor      float64 // Fraction of the delta pushed per 60 Hz tick
	SpawnClearance   float64
	FastAfter        time.Duration
	FastChance       int
	BossAfter        time.Duration
	BossChance       int
	EnemyPadding     float64
	WanderSpeed      float64

	// Spawn timer
	SpawnInterval    time.Duration
	MinSpawnInterval time.Duration
	SpawnDecay       time.Duration

	DiamondSize  float64
	ExplosionTTL time.Duration
	MarkCapacity int

	MusicVolume int
	SFXVolume   int

	Difficulty config.DifficultyConfig
}

// CampaignMode builds the objective ruleset from a tank config.
func CampaignMode(cfg config.TanksConfig) ModeConfig {
	c := cfg.Campaign
	m := baseMode(cfg)
	m.Mode = ModeCampaign
	m.Objective = true
	m.Arena = c.ArenaSize
	m.Play = core.NewBox(c.Margin, c.Margin, c.ArenaSize-2*c.Margin, c.ArenaSize-2*c.Margin)
	m.Corridor = core.NewBox((c.ArenaSize-c.CorridorWidth)/2, 0, c.CorridorWidth, c.ArenaSize)
	m.Portal = core.NewBox((c.ArenaSize-c.PortalSize)/2, 0, c.PortalSize, c.PortalSize)
	m.DiamondSize = c.DiamondSize
	m.SpawnInterval = config.Ms(c.SpawnIntervalMS)
	m.MinSpawnInterval = m.SpawnInterval / 2
	m.MusicVolume = c.MusicVolume
	m.SFXVolume = c.SFXVolume
	return m
}

// SurvivalMode builds the wave-defense ruleset from a tank config.
// Only base enemies spawn, and they die to a single bullet.
func SurvivalMode(cfg config.TanksConfig) ModeConfig {
	s := cfg.Survival
	m := baseMode(cfg)
	m.Mode = ModeSurvival
	m.Arena = s.ArenaSize
	m.Play = core.NewBox(s.Margin, s.Margin, s.ArenaSize-2*s.Margin, s.ArenaSize-2*s.Margin)
	m.Base.Health = 1
	m.EnemyPadding = s.EnemyPadding
	m.WanderSpeed = s.WanderSpeed
	m.SpawnInterval = config.Ms(s.SpawnIntervalMS)
	m.MinSpawnInterval = config.Ms(s.MinSpawnIntervalMS)
	m.SpawnDecay = config.Ms(s.SpawnDecayMS)
	m.MusicVolume = s.MusicVolume
	m.SFXVolume = s.SFXVolume
	return m
}

func baseMode(cfg config.TanksConfig) ModeConfig {
	p, b, e := cfg.Player, cfg.Bullets, cfg.Enemies
	return ModeConfig{
		PlayerSize:  core.V(p.Width, p.Height),
		MoveSpeed:   p.MoveSpeed,
		TurnSpeed:   p.TurnSpeed,
		Lives:       p.Lives,
		SpawnOffset: p.SpawnOffset,
		Invincible:  config.Ms(p.InvincibleMS),

		BulletSpeed: b.Speed,
		BulletSize:  b.Size,
		MaxBullets:  b.MaxBullets,
		FireRate:    config.Ms(b.FireRateMS),
		ReloadTime:  config.Ms(b.ReloadMS),

		Base:           variantStats(e.Base, false),
		Fast:           variantStats(e.Fast, true),
		Boss:           variantStats(e.Boss, false),
		CarrierSpeed:   e.CarrierSpeed,
		DescentSpeed:   e.DescentSpeed,
		RepelRadius:    e.RepelRadius,
		RepelFactor:    e.RepelFactor,
		SpawnClearance: 1.5 * e.Base.Size,
		FastAfter:      config.Ms(e.FastAfterMS),
		FastChance:     e.FastChance,
		BossAfter:      config.Ms(e.BossAfterMS),
		BossChance:     e.BossChance,

		ExplosionTTL: config.Ms(cfg.Effects.ExplosionMS),
		MarkCapacity: cfg.Effects.MarkCapacity,

		Difficulty: cfg.Difficulty,
	}
}

func variantStats(v config.VariantConfig, repels bool) VariantStats {
	return VariantStats{
		Size:         v.Size,
		Health:       v.Health,
		Speed:        v.Speed,
		Score:        v.Score,
		DamagePerHit: v.DamagePerHit,
		HealOnSteal:  v.HealOnSteal,
		Repels:       repels,
	}
}

// Stats resolves the constants for a variant.
func (m ModeConfig) Stats(v Variant) VariantStats {
	switch v {
	case VariantFast:
		return m.Fast
	case VariantBoss:
		return m.Boss
	default:
		return m.Base
	}
}

// HasCorridor reports whether the gate and hallway band exists.
func (m ModeConfig) HasCorridor() bool {
	return m.Corridor.Size.X > 0 && m.Corridor.Size.Y > 0
}

// DropOff returns the point a diamond carrier heads for.
func (m ModeConfig) DropOff() core.Vec {
	return core.V(m.Arena/2, m.Play.Max().Y)
}

// PortalMouth is the row where the portal opens into the gate stretch.
// An entering enemy descends until its top reaches it.
func (m ModeConfig) PortalMouth() float64 {
	return m.Portal.Min.Y
}

// SpawnPoint is the center of a base enemy waiting above the portal mouth.
// Spawn clearance is measured from here.
func (m ModeConfig) SpawnPoint() core.Vec {
	return core.V(m.Portal.Center().X, m.PortalMouth()-m.Base.Size/2)
}

// PlayerSpawn returns the starting position and facing of a tank.
// Player 1 starts on the left facing right, player 2 mirrored.
func (m ModeConfig) PlayerSpawn(id core.PlayerID) (core.Vec, float64) {
	y := m.Arena / 2
	if id == core.Player2 {
		return core.V(m.Play.Max().X-m.SpawnOffset-m.PlayerSize.X, y), 180
	}
	return core.V(m.Play.Min.X+m.SpawnOffset, y), 0
}

// DiamondHome returns the top-left of the diamond at the start of a round.
func (m ModeConfig) DiamondHome() core.Vec {
	half := m.DiamondSize / 2
	return core.V(m.Arena/2-half, m.Arena/2-half)
}
