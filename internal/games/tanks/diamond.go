package tanks

import "github.com/vovakirdan/tank-battleground/internal/core"

// DiamondState is the holder of the campaign objective.
type DiamondState int

const (
	DiamondOnGround DiamondState = iota
	DiamondWithPlayer1
	DiamondWithPlayer2
	DiamondWithEnemy
)

// String returns the state name.
func (s DiamondState) String() string {
	switch s {
	case DiamondOnGround:
		return "on_ground"
	case DiamondWithPlayer1:
		return "with_player1"
	case DiamondWithPlayer2:
		return "with_player2"
	case DiamondWithEnemy:
		return "with_enemy"
	default:
		return "unknown"
	}
}

// Diamond is the campaign objective. Carrier is meaningful only in DiamondWithEnemy.
type Diamond struct {
	State   DiamondState
	Carrier int
	Pos     core.Vec // Top-left
}

// heldBy returns the state for a player holding the diamond.
func heldBy(id core.PlayerID) DiamondState {
	if id == core.Player2 {
		return DiamondWithPlayer2
	}
	return DiamondWithPlayer1
}

// Holder returns the player holding the diamond, or PlayerNone.
func (d *Diamond) Holder() core.PlayerID {
	switch d.State {
	case DiamondWithPlayer1:
		return core.Player1
	case DiamondWithPlayer2:
		return core.Player2
	default:
		return core.PlayerNone
	}
}

// Take moves a grounded diamond to a player. It returns false for any other state.
func (d *Diamond) Take(id core.PlayerID) bool {
	if d.State != DiamondOnGround {
		return false
	}
	d.State = heldBy(id)
	d.Carrier = 0
	return true
}

// Steal moves the diamond from player id to an enemy.
func (d *Diamond) Steal(id core.PlayerID, enemyID int) bool {
	if d.State != heldBy(id) {
		return false
	}
	d.State = DiamondWithEnemy
	d.Carrier = enemyID
	return true
}

// Drop grounds the diamond at pos when its carrier dies.
func (d *Diamond) Drop(enemyID int, pos core.Vec) bool {
	if d.State != DiamondWithEnemy || d.Carrier != enemyID {
		return false
	}
	d.State = DiamondOnGround
	d.Carrier = 0
	d.Pos = pos
	return true
}

// CarriedBy reports whether enemy id holds the diamond.
func (d *Diamond) CarriedBy(enemyID int) bool {
	return d.State == DiamondWithEnemy && d.Carrier == enemyID
}
