package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-battleground/internal/core"
)

// HoldWindow is how long a key counts as held after its last press or auto-repeat.
// Terminals report presses only, never releases.
const HoldWindow = 160 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to seat actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message into the seat it belongs to and an action.
// System keys (pause, restart, menu, quit) come back with core.PlayerNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	key := msg.String()
	if len([]rune(key)) == 1 {
		key = strings.ToLower(key)
	}

	switch key {
	// Player 1: WASD + Space
	case "w":
		return core.Player1, core.ActionForward
	case "s":
		return core.Player1, core.ActionBack
	case "a":
		return core.Player1, core.ActionRotateLeft
	case "d":
		return core.Player1, core.ActionRotateRight
	case " ":
		return core.Player1, core.ActionFire

	// Player 2: arrows + Enter
	case "up":
		return core.Player2, core.ActionForward
	case "down":
		return core.Player2, core.ActionBack
	case "left":
		return core.Player2, core.ActionRotateLeft
	case "right":
		return core.Player2, core.ActionRotateRight
	case "enter":
		return core.Player2, core.ActionFire

	case "p":
		return core.PlayerNone, core.ActionPause
	case "esc":
		return core.PlayerNone, core.ActionResume
	case "r":
		return core.PlayerNone, core.ActionRestart
	case "m", "b":
		return core.PlayerNone, core.ActionMenu
	case "q", "ctrl+c":
		return core.PlayerNone, core.ActionQuit
	}

	return core.PlayerNone, core.ActionNone
}

// VolumeDelta returns the music and effects change requested by a key.
// [ and ] step music, - and = step effects.
func (km *KeyMapper) VolumeDelta(msg tea.KeyMsg, step int) (music, sfx int) {
	switch msg.String() {
	case "[":
		return -step, 0
	case "]":
		return step, 0
	case "-":
		return 0, -step
	case "=", "+":
		return 0, step
	}
	return 0, 0
}

// HoldTracker turns key presses into "held during this tick" input.
// Seat actions stay held for the window after their last press.
// System actions fire once, on the next frame only.
type HoldTracker struct {
	window  time.Duration
	last    map[core.PlayerID]map[core.Action]time.Time
	pending core.InputFrame
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window:  window,
		last:    make(map[core.PlayerID]map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// Press records an action at time now.
func (h *HoldTracker) Press(id core.PlayerID, a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if id == core.PlayerNone {
		h.pending.Set(a)
		return
	}
	seat, ok := h.last[id]
	if !ok {
		seat = make(map[core.Action]time.Time)
		h.last[id] = seat
	}
	seat[a] = now
}

// Frame builds the input for a tick at time now and drops expired holds.
func (h *HoldTracker) Frame(now time.Time) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	in.Global = h.pending.Clone()
	h.pending.Clear()

	for id, seat := range h.last {
		for a, at := range seat {
			if now.Sub(at) < h.window {
				in.Press(id, a)
			} else {
				delete(seat, a)
			}
		}
	}
	return in
}

// Release forgets every held key, e.g. when the game pauses.
func (h *HoldTracker) Release() {
	clear(h.last)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
