package tanks

import (
	"time"

	"github.com/vovakirdan/tank-battleground/internal/core"
)

// towards returns the step from one point to another, capped at maxDist.
func towards(from, to core.Vec, maxDist float64) core.Vec {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 {
		return core.Vec{}
	}
	if l <= maxDist {
		return d
	}
	return d.Scale(maxDist / l)
}

// enemySpeed applies difficulty scaling to a variant's base speed.
func (s *Sim) enemySpeed(st VariantStats) float64 {
	return s.difficulty.Speed(st.Speed, s.TotalScore(), s.now)
}

// updateEnemies moves every enemy, then applies fast-enemy repulsion.
func (s *Sim) updateEnemies(dt time.Duration) {
	for i := range s.enemies {
		e := &s.enemies[i]
		if s.mode.Mode == ModeSurvival {
			s.steerSurvival(e, dt)
		} else {
			s.steerCampaign(e, dt)
		}
	}
	s.repel(dt)
}

// steerCampaign moves an enemy toward its objective target.
// Priority: carrier to the drop-off, then the diamond holder, then the
// grounded diamond, otherwise straight down.
func (s *Sim) steerCampaign(e *Enemy, dt time.Duration) {
	st := s.mode.Stats(e.Variant)
	secs := dt.Seconds()

	if e.Entering {
		e.Pos.Y += s.mode.DescentSpeed * secs
		if mouth := s.mode.PortalMouth(); e.Pos.Y >= mouth {
			e.Pos.Y = mouth
			e.Entering = false
		}
		return
	}

	speed := s.enemySpeed(st)
	center := e.Center(st.Size)

	var target core.Vec
	switch holder := s.diamond.Holder(); {
	case s.diamond.CarriedBy(e.ID):
		speed = s.mode.CarrierSpeed
		target = s.mode.DropOff()
	case holder != core.PlayerNone:
		target = s.player(holder).Box(s.mode.PlayerSize).Center()
	case s.diamond.State == DiamondOnGround:
		target = s.diamondBox().Center()
	default:
		target = center.Add(core.V(0, speed*secs))
	}

	step := towards(center, target, speed*secs)
	next := e.Pos.Add(step)
	if !s.mode.PathClear(e.Pos, next, st.Size) {
		next = s.fallback(e.Pos, step, speed*secs/2, st.Size)
	}
	e.Pos = s.mode.ClampEnemy(next, st.Size)
}

// fallback tries a pure horizontal step, then a pure vertical one, then jitters.
func (s *Sim) fallback(from, step core.Vec, jitter, size float64) core.Vec {
	if h := from.Add(core.V(step.X, 0)); s.mode.PathClear(from, h, size) {
		return h
	}
	if v := from.Add(core.V(0, step.Y)); s.mode.PathClear(from, v, size) {
		return v
	}
	jx := float64(s.rng.Intn(3) - 1)
	jy := float64(s.rng.Intn(3) - 1)
	return from.Add(core.V(jx, jy).Scale(jitter))
}

// steerSurvival chases the nearest living tank, or wanders when none is left.
func (s *Sim) steerSurvival(e *Enemy, dt time.Duration) {
	st := s.mode.Stats(e.Variant)
	secs := dt.Seconds()
	center := e.Center(st.Size)

	var step core.Vec
	if target, ok := s.nearestPlayer(center); ok {
		step = towards(center, target, s.enemySpeed(st)*secs)
	} else {
		dir := core.V(float64(s.rng.Intn(3)-1), float64(s.rng.Intn(3)-1))
		step = dir.Scale(s.mode.WanderSpeed * secs)
	}

	area := s.mode.Play.Inset(s.mode.EnemyPadding)
	e.Pos = area.ClampInside(e.Pos.Add(step), core.V(st.Size, st.Size))
}

// nearestPlayer returns the center of the closest living tank.
func (s *Sim) nearestPlayer(from core.Vec) (core.Vec, bool) {
	var best core.Vec
	bestDist := -1.0
	for i := range s.players {
		p := &s.players[i]
		if !p.Alive {
			continue
		}
		c := p.Box(s.mode.PlayerSize).Center()
		if d := core.Dist(from, c); bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist >= 0
}

// repel pushes enemies away from every fast enemy within the repel radius.
// The push is a fraction of the center delta per 60 Hz tick.
func (s *Sim) repel(dt time.Duration) {
	factor := s.mode.RepelFactor * dt.Seconds() * 60
	for i := range s.enemies {
		f := &s.enemies[i]
		fs := s.mode.Stats(f.Variant)
		if !fs.Repels || f.Entering {
			continue
		}
		fc := f.Center(fs.Size)
		for j := range s.enemies {
			o := &s.enemies[j]
			if o.ID == f.ID || o.Entering {
				continue
			}
			os := s.mode.Stats(o.Variant)
			oc := o.Center(os.Size)
			if !core.Within(oc, fc, s.mode.RepelRadius) {
				continue
			}
			o.Pos = s.mode.ClampEnemy(o.Pos.Add(oc.Sub(fc).Scale(factor)), os.Size)
		}
	}
}

// updateSpawn runs the spawn timer. The first spawn of a round is immediate.
func (s *Sim) updateSpawn(dt time.Duration) {
	s.spawnTimer -= dt
	if s.spawnTimer > 0 {
		return
	}
	if !s.spawn() {
		return // Portal blocked, retry next tick
	}

	if s.mode.Mode == ModeSurvival {
		s.spawnInterval -= s.mode.SpawnDecay
		if s.spawnInterval < s.mode.MinSpawnInterval {
			s.spawnInterval = s.mode.MinSpawnInterval
		}
		s.spawnTimer = s.spawnInterval
		return
	}
	s.spawnTimer = s.difficulty.SpawnInterval(s.mode.SpawnInterval, s.mode.MinSpawnInterval, s.TotalScore(), s.now)
}

// spawn adds one enemy. Campaign enemies start just above the portal mouth
// and need the spawn point clear.
func (s *Sim) spawn() bool {
	variant := VariantBase
	var pos core.Vec

	if s.mode.Mode == ModeSurvival {
		st := s.mode.Stats(variant)
		pos = core.V(s.mode.Arena/2-st.Size/2, s.mode.Arena/2-st.Size/2)
	} else {
		if !s.portalClear(s.mode.SpawnPoint()) {
			return false
		}
		variant = s.rollVariant()
		st := s.mode.Stats(variant)
		pos = core.V(s.mode.Portal.Center().X-st.Size/2, s.mode.PortalMouth()-st.Size)
	}

	st := s.mode.Stats(variant)
	s.nextID++
	e := Enemy{
		ID:       s.nextID,
		Variant:  variant,
		Pos:      pos,
		Health:   st.Health,
		Entering: s.mode.Mode == ModeCampaign,
	}
	s.enemies = append(s.enemies, e)
	s.emit(core.EventEnemySpawned, core.PlayerNone, e.ID)
	return true
}

// portalClear reports whether no enemy sits within the clearance of the spawn point.
func (s *Sim) portalClear(origin core.Vec) bool {
	for i := range s.enemies {
		e := &s.enemies[i]
		c := e.Center(s.mode.Stats(e.Variant).Size)
		if abs(c.X-origin.X) < s.mode.SpawnClearance && abs(c.Y-origin.Y) < s.mode.SpawnClearance {
			return false
		}
	}
	return true
}

// rollVariant picks the variant of a campaign spawn from one RNG roll.
func (s *Sim) rollVariant() Variant {
	roll := s.rng.Intn(100)
	switch {
	case s.now > s.mode.BossAfter && roll < s.mode.BossChance && !s.bossAlive():
		return VariantBoss
	case s.now > s.mode.FastAfter && roll < s.mode.FastChance:
		return VariantFast
	default:
		return VariantBase
	}
}

func (s *Sim) bossAlive() bool {
	for i := range s.enemies {
		if s.enemies[i].Variant == VariantBoss {
			return true
		}
	}
	return false
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
