package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-battleground/internal/audio"
	"github.com/vovakirdan/tank-battleground/internal/core"
	"github.com/vovakirdan/tank-battleground/internal/games/tanks"
	"github.com/vovakirdan/tank-battleground/internal/multiplayer"
	"github.com/vovakirdan/tank-battleground/internal/registry"
	"github.com/vovakirdan/tank-battleground/internal/storage"
)

// soundGame is a game with music and effect volumes set from the pause overlay.
type soundGame interface {
	Volumes() (music, sfx int)
	SetVolumes(music, sfx int)
}

// matchGame reports how a round should be filed in the match history.
type matchGame interface {
	MatchMode() multiplayer.MatchMode
	EndReason() multiplayer.MatchEndReason
}

type slider int

const (
	sliderNone slider = iota
	sliderMusic
	sliderSFX
)

// GameModel runs one game: input, timing, audio, and saving the result.
type GameModel struct {
	game    registry.Game
	screen  *core.Screen
	store   multiplayer.MatchResultSaver
	sound   *audio.Player
	logger  *log.Logger
	config  core.RuntimeConfig
	session multiplayer.SessionID
	match   *multiplayer.Match

	keys     *KeyMapper
	hold     *HoldTracker
	lastTick time.Time
	dragging slider

	gameState  core.GameState
	standalone bool // owns the program, so leaving quits it
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewGameModel creates a model for game. store and sound may be nil.
func NewGameModel(game registry.Game, store multiplayer.MatchResultSaver, sound *audio.Player, logger *log.Logger, cfg core.RuntimeConfig, session multiplayer.SessionID) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	m := GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		sound:   sound,
		logger:  logger,
		config:  cfg,
		session: session,
		keys:    NewKeyMapper(),
		hold:    NewHoldTracker(HoldWindow),
	}
	m.match = m.newMatch()
	return m
}

func (m GameModel) newMatch() *multiplayer.Match {
	mode := multiplayer.MatchModeCampaign
	if mg, ok := m.game.(matchGame); ok {
		mode = mg.MatchMode()
	}
	return multiplayer.NewMatch(m.game.ID(), mode, m.session)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.syncVolumes()
	m.sound.StartMusic()
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		// The world is scaled to fit, so a resize never resets the round.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dm, ds := m.keys.VolumeDelta(msg, tanks.VolumeStep); dm != 0 || ds != 0 {
		m.adjustVolumes(dm, ds)
		return m, nil
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	id, action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case core.ActionMenu:
		if m.gameState.GameOver || m.gameState.Paused {
			m.finish()
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	m.hold.Press(id, action, time.Now())
	return m, nil
}

// handleMouse drags the pause overlay sliders.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.gameState.Paused {
		m.dragging = sliderNone
		return m, nil
	}
	music, sfx := tanks.PauseSliders(m.screen.Width(), m.screen.Height())

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case onTrack(music, msg.X, msg.Y):
			m.dragging = sliderMusic
		case onTrack(sfx, msg.X, msg.Y):
			m.dragging = sliderSFX
		default:
			return m, nil
		}
	case tea.MouseActionMotion:
		if m.dragging == sliderNone {
			return m, nil
		}
	case tea.MouseActionRelease:
		m.dragging = sliderNone
		return m, nil
	}

	sg, ok := m.game.(soundGame)
	if !ok {
		return m, nil
	}
	mv, sv := sg.Volumes()
	switch m.dragging {
	case sliderMusic:
		mv = tanks.SliderValue(msg.X, music)
	case sliderSFX:
		sv = tanks.SliderValue(msg.X, sfx)
	}
	sg.SetVolumes(mv, sv)
	m.syncVolumes()
	return m, nil
}

// onTrack accepts the track cells plus the column just past its end, which maps to full volume.
func onTrack(track core.Rect, x, y int) bool {
	return y == track.Y && x >= track.X && x <= track.Right()
}

func (m GameModel) adjustVolumes(dm, ds int) {
	sg, ok := m.game.(soundGame)
	if !ok {
		return
	}
	mv, sv := sg.Volumes()
	sg.SetVolumes(mv+dm, sv+ds)
	m.syncVolumes()
	m.sound.Play(audio.CueClick)
}

func (m GameModel) syncVolumes() {
	if sg, ok := m.game.(soundGame); ok {
		m.sound.SetVolumes(sg.Volumes())
	}
}

// handleTick advances the game by the real time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.TickDuration()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	in := m.hold.Frame(now)
	wasOver := m.gameState.GameOver
	wasPaused := m.gameState.Paused

	result := m.game.Advance(in, dt)
	m.gameState = result.State
	m.sound.PlayEvents(result.Events)

	if m.gameState.Paused && !wasPaused {
		m.hold.Release()
	}
	if wasOver && !m.gameState.GameOver {
		// Restarted: the next round is a new match
		m.match = m.newMatch()
		m.saved = false
		m.hold.Release()
	}
	if m.gameState.GameOver && !m.saved {
		m.saveResult()
	}

	return m, tickCmd(m.config.TickRate)
}

// finish files an unfinished round as abandoned before leaving it.
func (m *GameModel) finish() {
	if m.saved || m.gameState.Elapsed < time.Second {
		return
	}
	m.saveResult()
}

// saveResult stores the round once. A failed save is logged and play goes on.
func (m *GameModel) saveResult() {
	m.saved = true
	if m.store == nil {
		return
	}

	reason := multiplayer.MatchEndReasonAbandoned
	if mg, ok := m.game.(matchGame); ok && m.gameState.GameOver {
		reason = mg.EndReason()
	}
	data := m.match.Result(m.gameState.Score1, m.gameState.Score2, m.gameState.Elapsed, reason)
	if err := m.store.SaveMatchResult(data); err != nil {
		m.logger.Warn("could not save match", "match", data.MatchID, "error", err)
		return
	}
	m.logger.Info("match saved", "match", data.MatchID, "mode", data.Mode, "total", data.Total(), "reason", data.EndReason)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".battleground", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state after the most recent tick.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// Saver adapts a possibly nil store so a missing database stays a nil interface.
func Saver(store *storage.Store) multiplayer.MatchResultSaver {
	if store == nil {
		return nil
	}
	return store
}

// Run plays game in the local terminal until the player quits or heads back to the menu.
// It reports whether the menu was requested.
func Run(game registry.Game, store multiplayer.MatchResultSaver, sound *audio.Player, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, sound, logger, cfg, multiplayer.NewSessionID())
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // slider dragging
	)

	final, err := p.Run()
	sound.StopMusic()
	if err != nil {
		return false, fmt.Errorf("tui: cannot run game: %w", err)
	}

	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
