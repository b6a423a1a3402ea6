package tanks

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tank-battleground/internal/config"
	"github.com/vovakirdan/tank-battleground/internal/core"
	"github.com/vovakirdan/tank-battleground/internal/multiplayer"
	"github.com/vovakirdan/tank-battleground/internal/registry"
)

func newTestGame(g *Game) *Game {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 9}
	g.ResetWith(cfg, config.DefaultTanksConfig())
	g.sim.spawnTimer = time.Hour
	return g
}

func global(a core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	in.Press(core.PlayerNone, a)
	return in
}

func TestRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"tanks", "Tank Battleground"},
		{"tanks_survival", "Tank Battleground (Survival)"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create(%q) error = %v", tt.id, err)
			}
			if g.ID() != tt.id || g.Title() != tt.title {
				t.Errorf("ID/Title = %q/%q, expected %q/%q", g.ID(), g.Title(), tt.id, tt.title)
			}
		})
	}
}

func TestDefaultVolumesPerMode(t *testing.T) {
	campaign := newTestGame(New())
	survival := newTestGame(NewSurvival())

	if m, s := campaign.Volumes(); m != 80 || s != 80 {
		t.Errorf("campaign Volumes() = %d/%d, expected 80/80", m, s)
	}
	if m, s := survival.Volumes(); m != 64 || s != 64 {
		t.Errorf("survival Volumes() = %d/%d, expected 64/64", m, s)
	}
}

func TestSetVolumesClamps(t *testing.T) {
	g := newTestGame(New())
	g.SetVolumes(-5, 500)

	if m, s := g.Volumes(); m != 0 || s != MaxVolume {
		t.Errorf("Volumes() = %d/%d, expected 0/%d", m, s, MaxVolume)
	}

	// A restart keeps the player's choice
	g.ResetWith(g.runtime, config.DefaultTanksConfig())
	if m, _ := g.Volumes(); m != 0 {
		t.Errorf("music volume after reset = %d, expected 0", m)
	}
}

func TestSliderValue(t *testing.T) {
	track := core.NewRect(10, 5, 32, 1)

	tests := []struct {
		mouseX   int
		expected int
	}{
		{10, 0},
		{2, 0},
		{26, 64},
		{42, 128},
		{90, 128},
	}

	for _, tt := range tests {
		if got := SliderValue(tt.mouseX, track); got != tt.expected {
			t.Errorf("SliderValue(%d) = %d, expected %d", tt.mouseX, got, tt.expected)
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(New())
	g.Step(core.NewMultiInputFrame())
	before := g.sim.Now()

	res := g.Step(global(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused after the pause action")
	}
	for i := 0; i < 10; i++ {
		g.Step(press(core.Player1, core.ActionForward))
	}
	if g.sim.Now() != before {
		t.Errorf("Now() = %v while paused, expected %v", g.sim.Now(), before)
	}

	res = g.Step(global(core.ActionResume))
	if res.State.Paused {
		t.Error("expected running after resume")
	}
	if g.sim.Now() == before {
		t.Error("simulation should advance after resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(New())
	g.sim.Player(core.Player1).Score = 40
	g.sim.Player(core.Player1).Alive = false
	g.sim.Player(core.Player2).Alive = false

	res := g.Step(core.NewMultiInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over once both tanks are destroyed")
	}
	if res.State.HighScore != 40 || res.State.Score1 != 40 {
		t.Errorf("HighScore/Score1 = %d/%d, expected 40/40", res.State.HighScore, res.State.Score1)
	}
	if g.EndReason() != multiplayer.MatchEndReasonWiped {
		t.Errorf("EndReason() = %q, expected wiped", g.EndReason())
	}

	// Ordinary input does not leave the game over screen
	res = g.Step(press(core.Player1, core.ActionFire))
	if !res.State.GameOver {
		t.Error("game over should hold until restart")
	}

	res = g.Step(global(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("after restart GameOver=%v Score=%d, expected false/0", res.State.GameOver, res.State.Score)
	}
	if res.State.HighScore != 40 {
		t.Errorf("HighScore after restart = %d, expected 40", res.State.HighScore)
	}
}

func TestMatchMode(t *testing.T) {
	if New().MatchMode() != multiplayer.MatchModeCampaign {
		t.Error("campaign game should report MatchModeCampaign")
	}
	if NewSurvival().MatchMode() != multiplayer.MatchModeSurvival {
		t.Error("survival game should report MatchModeSurvival")
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(New())
	screen := core.NewScreen(80, 40)
	g.Render(screen)

	top := screen.Row(0)
	if !strings.Contains(top, "P1") || !strings.Contains(top, "P2") {
		t.Errorf("Row(0) = %q, expected both tank panels", top)
	}
	if !strings.Contains(top, "■■■■■") {
		t.Errorf("Row(0) = %q, expected a full magazine", top)
	}
	if !strings.Contains(screen.String(), string(DiamondChar)) {
		t.Error("campaign view should show the diamond")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(New())
	screen := core.NewScreen(80, 40)

	g.Step(global(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay should be drawn")
	}
	music, _ := PauseSliders(80, 40)
	if got := screen.Get(music.X, music.Y); got != SliderFull {
		t.Errorf("music slider start = %q, expected %q", got, SliderFull)
	}

	g.Step(global(core.ActionResume))
	g.sim.Player(core.Player1).Alive = false
	g.sim.Player(core.Player2).Alive = false
	g.Step(core.NewMultiInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over panel should be drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(New())
	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected a too-small notice")
	}
}

func TestBarrelGlyph(t *testing.T) {
	tests := []struct {
		angle    float64
		expected rune
	}{
		{0, '→'},
		{90, '↓'},
		{180, '←'},
		{270, '↑'},
		{350, '→'},
	}

	for _, tt := range tests {
		if got := barrelGlyph(tt.angle); got != tt.expected {
			t.Errorf("barrelGlyph(%v) = %q, expected %q", tt.angle, got, tt.expected)
		}
	}
}
