// Package tanks implements Tank Battleground: two tanks sharing one keyboard
// fight off enemy waves, either defending a diamond (campaign) or simply
// staying alive (survival).
package tanks

import (
	"time"

	"github.com/vovakirdan/tank-battleground/internal/config"
	"github.com/vovakirdan/tank-battleground/internal/core"
	"github.com/vovakirdan/tank-battleground/internal/multiplayer"
	"github.com/vovakirdan/tank-battleground/internal/registry"
)

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Volume range for music and effects.
const (
	MaxVolume  = 128
	VolumeStep = 8
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register("tanks", func() registry.Game {
		return New()
	})
	registry.Register("tanks_survival", func() registry.Game {
		return NewSurvival()
	})
}

// Game adapts a Sim to the registry and platform.
type Game struct {
	mode    Mode
	sim     *Sim
	runtime core.RuntimeConfig
	state   string

	musicVolume int
	sfxVolume   int
	volumesSet  bool

	lastEvents []core.Event
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewSurvival creates a survival game.
func NewSurvival() *Game {
	return &Game{mode: ModeSurvival}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSurvival {
		return "tanks_survival"
	}
	return "tanks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSurvival {
		return "Tank Battleground (Survival)"
	}
	return "Tank Battleground"
}

// Reset loads the configuration and starts a fresh session.
// The best score of a previous session on this Game is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTanks(configPath)
	if err != nil {
		cfg = config.DefaultTanksConfig()
	}
	config.ApplyTanksPreset(&cfg, difficultyPreset)

	g.ResetWith(runtime, cfg)
}

// ResetWith starts a fresh session from an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.TanksConfig) {
	g.runtime = runtime

	mc := CampaignMode(cfg)
	if g.mode == ModeSurvival {
		mc = SurvivalMode(cfg)
	}

	best := 0
	if g.sim != nil {
		best = g.sim.HighScore()
	}
	g.sim = NewSim(mc, runtime.Seed)
	g.sim.highScore = best

	if !g.volumesSet {
		g.musicVolume = mc.MusicVolume
		g.sfxVolume = mc.SFXVolume
		g.volumesSet = true
	}
	g.state = StatePlaying
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	return g.Advance(in, g.runtime.TickDuration())
}

// Advance handles system input, then runs the simulation for dt.
func (g *Game) Advance(in core.MultiInputFrame, dt time.Duration) core.StepResult {
	g.lastEvents = nil

	if g.state == StateGameOver {
		if in.Global.Has(core.ActionRestart) {
			g.sim.Restart()
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	if in.Global.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if in.Global.Has(core.ActionResume) {
		g.state = StatePlaying
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.lastEvents = g.sim.Advance(in, dt)
	if g.sim.Over() {
		g.state = StateGameOver
	}
	return core.StepResult{State: g.State(), Events: g.lastEvents}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p1, p2 := g.sim.Player(core.Player1), g.sim.Player(core.Player2)
	return core.GameState{
		Score:     g.sim.TotalScore(),
		Score1:    p1.Score,
		Score2:    p2.Score,
		HighScore: g.sim.HighScore(),
		Elapsed:   g.sim.Now(),
		GameOver:  g.state == StateGameOver,
		Paused:    g.state == StatePaused,
	}
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Volumes returns the music and effect volumes in [0, MaxVolume].
func (g *Game) Volumes() (music, sfx int) {
	return g.musicVolume, g.sfxVolume
}

// SetVolumes sets both volumes, clamped to [0, MaxVolume].
func (g *Game) SetVolumes(music, sfx int) {
	g.musicVolume = core.Clamp(music, 0, MaxVolume)
	g.sfxVolume = core.Clamp(sfx, 0, MaxVolume)
	g.volumesSet = true
}

// MatchMode returns the match mode for persistence.
func (g *Game) MatchMode() multiplayer.MatchMode {
	if g.mode == ModeSurvival {
		return multiplayer.MatchModeSurvival
	}
	return multiplayer.MatchModeCampaign
}

// EndReason returns why the last round ended, as a match end reason.
func (g *Game) EndReason() multiplayer.MatchEndReason {
	switch g.sim.Reason() {
	case EndWiped:
		return multiplayer.MatchEndReasonWiped
	case EndDiamondLost:
		return multiplayer.MatchEndReasonDiamondLost
	default:
		return multiplayer.MatchEndReasonAbandoned
	}
}

// SliderValue converts a mouse column on a slider track into a volume.
func SliderValue(mouseX int, track core.Rect) int {
	if track.W <= 0 {
		return 0
	}
	return core.Clamp((mouseX-track.X)*MaxVolume/track.W, 0, MaxVolume)
}
