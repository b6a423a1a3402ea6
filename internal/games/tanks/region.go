package tanks

import "github.com/vovakirdan/tank-battleground/internal/core"

// inPlayRows reports whether a box at y with height h fits the play rows.
func (m ModeConfig) inPlayRows(y, h float64) bool {
	return y >= m.Play.Min.Y && y+h <= m.Play.Max().Y
}

// inCorridorBand reports whether a box at x with width w fits the corridor columns.
func (m ModeConfig) inCorridorBand(x, w float64) bool {
	return m.HasCorridor() && x >= m.Corridor.Min.X && x+w <= m.Corridor.Max().X
}

// ResolvePlayer maps a candidate tank position onto the walkable region.
// Inside the play rows the tank slides along the side walls, inside the
// corridor band it slides along the corridor walls. Anything else is rejected.
func (m ModeConfig) ResolvePlayer(next, size core.Vec) (core.Vec, bool) {
	if !m.HasCorridor() {
		return m.Play.ClampInside(next, size), true
	}
	if m.inPlayRows(next.Y, size.Y) {
		next.X = core.ClampF(next.X, m.Play.Min.X, m.Play.Max().X-size.X)
		return next, true
	}
	if m.inCorridorBand(next.X, size.X) {
		return m.Corridor.ClampInside(next, size), true
	}
	return next, false
}

// BulletInside reports whether a bullet center is still inside the region.
func (m ModeConfig) BulletInside(p core.Vec) bool {
	if m.Play.Contains(p) {
		return true
	}
	return m.HasCorridor() && m.Corridor.Contains(p)
}

// PathClear reports whether an enemy box may step from one position to another.
// A step is allowed when both ends sit in the corridor band or at least one
// end lies within the play rows.
func (m ModeConfig) PathClear(from, to core.Vec, size float64) bool {
	if !m.HasCorridor() {
		return true
	}
	if m.inCorridorBand(from.X, size) && m.inCorridorBand(to.X, size) {
		return true
	}
	return m.inPlayRows(from.Y, size) || m.inPlayRows(to.Y, size)
}

// ClampEnemy keeps an enemy box inside the play area. In campaign an enemy
// above the play rows that is still within the corridor band stays in the
// gate stretch instead of being pulled down.
func (m ModeConfig) ClampEnemy(p core.Vec, size float64) core.Vec {
	s := core.V(size, size)
	if m.HasCorridor() && p.Y < m.Play.Min.Y && m.inCorridorBand(p.X, size) {
		return m.Corridor.ClampInside(p, s)
	}
	return m.Play.ClampInside(p, s)
}
