package tanks

import (
	"math"
	"time"

	"github.com/vovakirdan/tank-battleground/internal/core"
)

// Player is one tank seat.
type Player struct {
	ID    core.PlayerID
	Pos   core.Vec // Top-left
	Angle float64  // Facing in degrees, 0 = right, clockwise
	Alive bool
	Lives int
	Score int
	Ammo  Ammo

	hitAt      time.Duration
	wasHit     bool
	invincible bool
}

// Box returns the tank's bounding box.
func (p *Player) Box(size core.Vec) core.Box {
	return core.BoxAt(p.Pos, size)
}

// Invincible reports the cached invincibility flag.
func (p *Player) Invincible() bool {
	return p.invincible
}

// refreshInvincible recomputes the flag for the current tick.
func (p *Player) refreshInvincible(now, window time.Duration) {
	p.invincible = p.wasHit && now-p.hitAt < window
}

// Bullet travels in a straight line and remembers who fired it.
type Bullet struct {
	Pos   core.Vec // Center
	Angle float64  // Radians
	Owner core.PlayerID
}

// Move advances the bullet by speed*dt along its angle.
func (b *Bullet) Move(speed float64, dt time.Duration) {
	d := speed * dt.Seconds()
	b.Pos.X += math.Cos(b.Angle) * d
	b.Pos.Y += math.Sin(b.Angle) * d
}

// Enemy is a hostile tank. IDs are unique and increasing within a Sim.
type Enemy struct {
	ID       int
	Variant  Variant
	Pos      core.Vec // Top-left
	Health   int
	Entering bool // Still descending out of the portal
}

// Box returns the enemy's bounding box for the given variant size.
func (e *Enemy) Box(size float64) core.Box {
	return core.BoxAt(e.Pos, core.V(size, size))
}

// Center returns the enemy's center for the given variant size.
func (e *Enemy) Center(size float64) core.Vec {
	return e.Pos.Add(core.V(size/2, size/2))
}
