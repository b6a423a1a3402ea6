package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-battleground/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		player core.PlayerID
		action core.Action
	}{
		{"w", runeKey('w'), core.Player1, core.ActionForward},
		{"W", runeKey('W'), core.Player1, core.ActionForward},
		{"s", runeKey('s'), core.Player1, core.ActionBack},
		{"a", runeKey('a'), core.Player1, core.ActionRotateLeft},
		{"d", runeKey('d'), core.Player1, core.ActionRotateRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Player1, core.ActionFire},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.Player2, core.ActionForward},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.Player2, core.ActionBack},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.Player2, core.ActionRotateLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.Player2, core.ActionRotateRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Player2, core.ActionFire},
		{"p", runeKey('p'), core.PlayerNone, core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.PlayerNone, core.ActionResume},
		{"r", runeKey('r'), core.PlayerNone, core.ActionRestart},
		{"m", runeKey('m'), core.PlayerNone, core.ActionMenu},
		{"b", runeKey('b'), core.PlayerNone, core.ActionMenu},
		{"q", runeKey('q'), core.PlayerNone, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.PlayerNone, core.ActionQuit},
		{"x", runeKey('x'), core.PlayerNone, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, action := km.MapKey(tt.msg)
			if player != tt.player || action != tt.action {
				t.Errorf("MapKey(%q) = %v/%v, expected %v/%v", tt.msg.String(), player, action, tt.player, tt.action)
			}
		})
	}
}

func TestVolumeDelta(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key   rune
		music int
		sfx   int
	}{
		{'[', -8, 0},
		{']', 8, 0},
		{'-', 0, -8},
		{'=', 0, 8},
		{'w', 0, 0},
	}

	for _, tt := range tests {
		music, sfx := km.VolumeDelta(runeKey(tt.key), 8)
		if music != tt.music || sfx != tt.sfx {
			t.Errorf("VolumeDelta(%q) = %d/%d, expected %d/%d", tt.key, music, sfx, tt.music, tt.sfx)
		}
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(HoldWindow)
	t0 := time.Unix(1000, 0)

	h.Press(core.Player1, core.ActionForward, t0)
	h.Press(core.Player2, core.ActionFire, t0.Add(100*time.Millisecond))

	tests := []struct {
		at     time.Duration
		p1Fwd  bool
		p2Fire bool
	}{
		{0, true, true},
		{159 * time.Millisecond, true, true},
		{160 * time.Millisecond, false, true},
		{259 * time.Millisecond, false, true},
		{260 * time.Millisecond, false, false},
	}

	for _, tt := range tests {
		in := h.Frame(t0.Add(tt.at))
		p1 := in.Player(core.Player1)
		p2 := in.Player(core.Player2)
		if p1.Has(core.ActionForward) != tt.p1Fwd {
			t.Errorf("at %v P1 forward = %v, expected %v", tt.at, p1.Has(core.ActionForward), tt.p1Fwd)
		}
		if p2.Has(core.ActionFire) != tt.p2Fire {
			t.Errorf("at %v P2 fire = %v, expected %v", tt.at, p2.Has(core.ActionFire), tt.p2Fire)
		}
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(HoldWindow)
	t0 := time.Unix(1000, 0)

	// Auto-repeat every 40ms keeps the key down
	for i := 0; i < 10; i++ {
		h.Press(core.Player1, core.ActionRotateLeft, t0.Add(time.Duration(i)*40*time.Millisecond))
	}
	in := h.Frame(t0.Add(500 * time.Millisecond))
	p1 := in.Player(core.Player1)
	if !p1.Has(core.ActionRotateLeft) {
		t.Error("repeated key should still be held")
	}
}

func TestHoldTrackerGlobalIsOneShot(t *testing.T) {
	h := NewHoldTracker(HoldWindow)
	t0 := time.Unix(1000, 0)

	h.Press(core.PlayerNone, core.ActionPause, t0)
	if in := h.Frame(t0); !in.Global.Has(core.ActionPause) {
		t.Error("first frame should carry the pause")
	}
	if in := h.Frame(t0.Add(time.Millisecond)); in.Global.Has(core.ActionPause) {
		t.Error("pause should not repeat on the next frame")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(HoldWindow)
	t0 := time.Unix(1000, 0)

	h.Press(core.Player1, core.ActionFire, t0)
	h.Release()
	in := h.Frame(t0)
	p1 := in.Player(core.Player1)
	if p1.Has(core.ActionFire) {
		t.Error("Release() should drop held keys")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
