package core

// PlayerID identifies one of the two tank seats.
type PlayerID int

const (
	PlayerNone PlayerID = iota
	Player1
	Player2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Nobody"
	}
}

// Action represents a semantic game action, abstracted from physical key presses.
// Tank actions are read as "held during this tick".
type Action int

const (
	ActionNone        Action = iota
	ActionForward            // W / Up arrow - drive along facing
	ActionBack               // S / Down arrow - reverse
	ActionRotateLeft         // A / Left arrow
	ActionRotateRight        // D / Right arrow
	ActionFire               // Space / Enter
	ActionPause              // P - toggle pause
	ActionResume             // Esc - leave pause
	ActionRestart            // R - restart after game over
	ActionMenu               // M, B - back to menu
	ActionQuit               // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// MultiInputFrame contains input from both seats for a single tick.
// System actions (pause, restart, quit) are carried on the Global frame.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
	Global   InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
		Global:   NewInputFrame(),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return NewInputFrame()
	}
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Press marks an action for a player. PlayerNone targets the Global frame.
func (m *MultiInputFrame) Press(id PlayerID, a Action) {
	if id == PlayerNone {
		m.Global.Set(a)
		return
	}
	frame := m.Player(id)
	frame.Set(a)
	m.SetPlayer(id, frame)
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
	m.Global.Clear()
}

// Clone creates a deep copy of this multi-input frame.
func (m MultiInputFrame) Clone() MultiInputFrame {
	clone := NewMultiInputFrame()
	for id, frame := range m.ByPlayer {
		clone.ByPlayer[id] = frame.Clone()
	}
	clone.Global = m.Global.Clone()
	return clone
}
