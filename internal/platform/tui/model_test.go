package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-battleground/internal/core"
	"github.com/vovakirdan/tank-battleground/internal/games/tanks"
	"github.com/vovakirdan/tank-battleground/internal/multiplayer"
)

type recordingSaver struct {
	results []multiplayer.MatchResultData
}

func (r *recordingSaver) SaveMatchResult(d multiplayer.MatchResultData) error {
	r.results = append(r.results, d)
	return nil
}

type testRig struct {
	m     GameModel
	game  *tanks.Game
	saver *recordingSaver
	now   time.Time
}

func newRig(t *testing.T) *testRig {
	t.Helper()
	game := tanks.New()
	saver := &recordingSaver{}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 3}
	m := NewGameModel(game, saver, nil, log.New(io.Discard), cfg, multiplayer.NewSessionID())
	m.Init()
	return &testRig{m: m, game: game, saver: saver, now: time.Now()}
}

func (r *testRig) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := r.m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	r.m = gm
	return cmd
}

func (r *testRig) tick(t *testing.T, dt time.Duration) {
	t.Helper()
	r.now = r.now.Add(dt)
	r.send(t, TickMsg(r.now))
}

func (r *testRig) wipe() {
	r.game.Sim().Player(core.Player1).Alive = false
	r.game.Sim().Player(core.Player2).Alive = false
}

func TestTickUsesRealElapsedTime(t *testing.T) {
	r := newRig(t)

	r.tick(t, 0) // first tick runs one nominal tick
	r.tick(t, 100*time.Millisecond)

	expected := time.Second/60 + 100*time.Millisecond
	if got := r.m.GameState().Elapsed; got != expected {
		t.Errorf("Elapsed = %v, expected %v", got, expected)
	}
}

func TestHeldKeyDrivesTank(t *testing.T) {
	r := newRig(t)
	r.tick(t, 0)
	start := r.game.Sim().Player(core.Player1).Pos

	r.send(t, runeKey('w'))
	r.tick(t, 50*time.Millisecond)

	if got := r.game.Sim().Player(core.Player1).Pos; got.X <= start.X {
		t.Errorf("P1 X = %v after holding W, expected more than %v", got.X, start.X)
	}
	spawn, _ := r.game.Sim().Mode().PlayerSpawn(core.Player2)
	if got := r.game.Sim().Player(core.Player2).Pos; got != spawn {
		t.Errorf("P2 moved to %v without input", got)
	}
}

func TestVolumeKeys(t *testing.T) {
	r := newRig(t)

	r.send(t, runeKey('['))
	r.send(t, runeKey('='))
	music, sfx := r.game.Volumes()
	if music != 72 || sfx != 88 {
		t.Errorf("Volumes() = %d/%d, expected 72/88", music, sfx)
	}
}

func TestMouseDragsPauseSlider(t *testing.T) {
	r := newRig(t)
	r.send(t, runeKey('p'))
	r.tick(t, time.Second/60)
	if !r.m.GameState().Paused {
		t.Fatal("expected paused after P")
	}

	musicTrack, sfxTrack := tanks.PauseSliders(80, 40)

	r.send(t, tea.MouseMsg{X: musicTrack.X + musicTrack.W/2, Y: musicTrack.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if music, _ := r.game.Volumes(); music != 64 {
		t.Errorf("music after click = %d, expected 64", music)
	}

	// Dragging keeps following the same slider even off its row
	r.send(t, tea.MouseMsg{X: musicTrack.Right() + 5, Y: sfxTrack.Y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if music, sfx := r.game.Volumes(); music != tanks.MaxVolume || sfx != 80 {
		t.Errorf("Volumes() after drag = %d/%d, expected %d/80", music, sfx, tanks.MaxVolume)
	}

	r.send(t, tea.MouseMsg{X: musicTrack.X, Y: musicTrack.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	r.send(t, tea.MouseMsg{X: sfxTrack.X, Y: sfxTrack.Y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if _, sfx := r.game.Volumes(); sfx != 80 {
		t.Errorf("motion after release changed sfx to %d", sfx)
	}

	r.send(t, tea.MouseMsg{X: sfxTrack.X, Y: sfxTrack.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, sfx := r.game.Volumes(); sfx != 0 {
		t.Errorf("sfx after click at track start = %d, expected 0", sfx)
	}
}

func TestMouseIgnoredWhilePlaying(t *testing.T) {
	r := newRig(t)
	r.tick(t, 0)

	musicTrack, _ := tanks.PauseSliders(80, 40)
	r.send(t, tea.MouseMsg{X: musicTrack.X, Y: musicTrack.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if music, _ := r.game.Volumes(); music != 80 {
		t.Errorf("music = %d, expected the untouched default 80", music)
	}
}

func TestGameOverSavesOncePerRound(t *testing.T) {
	r := newRig(t)
	r.tick(t, 0)
	r.game.Sim().Player(core.Player1).Score = 30
	r.wipe()
	r.tick(t, time.Second/60)
	r.tick(t, time.Second/60)

	if len(r.saver.results) != 1 {
		t.Fatalf("saved %d results, expected 1", len(r.saver.results))
	}
	first := r.saver.results[0]
	if first.GameID != "tanks" || first.Mode != "Campaign" || first.EndReason != "wiped" || first.Score1 != 30 {
		t.Errorf("result = %+v, expected tanks/Campaign/wiped with Score1 30", first)
	}

	r.send(t, runeKey('r'))
	r.tick(t, time.Second/60)
	if r.m.GameState().GameOver {
		t.Fatal("R should restart after game over")
	}

	r.wipe()
	r.tick(t, time.Second/60)
	if len(r.saver.results) != 2 {
		t.Fatalf("saved %d results, expected 2", len(r.saver.results))
	}
	if r.saver.results[1].MatchID == first.MatchID {
		t.Error("a restarted round should get a new match id")
	}
}

func TestMenuOnlyFromPauseOrGameOver(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 6; i++ {
		r.tick(t, 250*time.Millisecond)
	}

	r.send(t, runeKey('m'))
	if r.m.BackToMenu() {
		t.Fatal("M during play should be ignored")
	}

	r.send(t, runeKey('p'))
	r.tick(t, time.Second/60)
	r.send(t, runeKey('m'))
	if !r.m.BackToMenu() {
		t.Fatal("M while paused should return to the menu")
	}
	if len(r.saver.results) != 1 || r.saver.results[0].EndReason != "abandoned" {
		t.Errorf("results = %+v, expected one abandoned round", r.saver.results)
	}
}

func TestQuitStopsProgram(t *testing.T) {
	r := newRig(t)
	if cmd := r.send(t, runeKey('q')); cmd == nil {
		t.Error("Q should return a quit command")
	}
	if !r.m.IsQuitting() {
		t.Error("IsQuitting() = false after Q")
	}
	if r.m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestSaverNilStore(t *testing.T) {
	if Saver(nil) != nil {
		t.Error("Saver(nil) should be a nil interface")
	}
}
