package tanks

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tank-battleground/internal/config"
	"github.com/vovakirdan/tank-battleground/internal/core"
)

// Time stepping limits.
const (
	MaxStep  = time.Second / 60       // Longest single simulation sub-step
	MaxFrame = 250 * time.Millisecond // Longest frame accepted by Advance
)

// EndReason describes why a round ended.
type EndReason int

const (
	EndNone        EndReason = iota // Round in progress
	EndWiped                        // Both tanks destroyed
	EndDiamondLost                  // A carrier reached the drop-off
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndWiped:
		return "wiped"
	case EndDiamondLost:
		return "diamond_lost"
	default:
		return "none"
	}
}

// Sim is one battleground session. It is single-goroutine and owns all of
// its state, including the enemy id counter and the RNG.
type Sim struct {
	mode       ModeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	now   time.Duration
	ticks uint64

	players    [2]Player
	bullets    []Bullet
	enemies    []Enemy
	explosions []Explosion
	marks      *MarkRing
	diamond    Diamond

	spawnTimer    time.Duration
	spawnInterval time.Duration
	nextID        int

	over      bool
	reason    EndReason
	highScore int

	events []core.Event
}

// NewSim creates a session in the given mode, seeded for determinism.
func NewSim(mode ModeConfig, seed int64) *Sim {
	s := &Sim{
		mode:       mode,
		rng:        rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness, not security
		difficulty: config.NewDifficultyManager(mode.Difficulty),
		marks:      NewMarkRing(mode.MarkCapacity),
	}
	s.Restart()
	return s
}

// Restart begins a new round. The session high score and the enemy id
// counter carry over.
func (s *Sim) Restart() {
	s.now = 0
	s.ticks = 0

	for i, id := range []core.PlayerID{core.Player1, core.Player2} {
		pos, angle := s.mode.PlayerSpawn(id)
		s.players[i] = Player{
			ID:    id,
			Pos:   pos,
			Angle: angle,
			Alive: true,
			Lives: s.mode.Lives,
			Ammo:  NewAmmo(s.mode.MaxBullets, s.mode.FireRate, s.mode.ReloadTime),
		}
	}

	s.bullets = s.bullets[:0]
	s.enemies = s.enemies[:0]
	s.explosions = s.explosions[:0]
	s.marks.Reset()
	s.diamond = Diamond{State: DiamondOnGround, Pos: s.mode.DiamondHome()}

	s.spawnTimer = 0
	s.spawnInterval = s.mode.SpawnInterval

	s.over = false
	s.reason = EndNone
	s.events = nil
}

// Advance runs the simulation for dt, split into sub-steps of at most
// MaxStep. Frames longer than MaxFrame are clamped. It returns the events
// raised during the call.
func (s *Sim) Advance(in core.MultiInputFrame, dt time.Duration) []core.Event {
	s.events = nil
	if dt > MaxFrame {
		dt = MaxFrame
	}
	for dt > 0 && !s.over {
		step := dt
		if step > MaxStep {
			step = MaxStep
		}
		s.update(in, step)
		dt -= step
	}
	return s.events
}

// update is one sub-step of the frame orchestrator.
func (s *Sim) update(in core.MultiInputFrame, dt time.Duration) {
	s.now += dt
	s.ticks++

	s.refreshInvincibility()
	s.updatePlayers(in, dt)
	s.updateReload(dt)
	s.updateEnemies(dt)
	s.syncDiamond()
	s.collideBullets()
	s.collideEnemies()
	s.ageExplosions()
	s.updateSpawn(dt)
	s.updateBullets(dt)
	s.checkGameOver()
}

func (s *Sim) emit(kind core.EventKind, player core.PlayerID, value int) {
	s.events = append(s.events, core.Event{Kind: kind, Player: player, Value: value})
}

func (s *Sim) refreshInvincibility() {
	for i := range s.players {
		s.players[i].refreshInvincible(s.now, s.mode.Invincible)
	}
}

// updatePlayers applies rotation, movement, diamond pickup and firing.
func (s *Sim) updatePlayers(in core.MultiInputFrame, dt time.Duration) {
	size := s.mode.PlayerSize
	for i := range s.players {
		p := &s.players[i]
		if !p.Alive {
			continue
		}
		pin := in.Player(p.ID)

		s.rotate(p, pin, dt)
		s.move(p, pin, dt)

		if s.mode.Objective && s.diamond.State == DiamondOnGround && p.Box(size).Overlaps(s.diamondBox()) {
			s.diamond.Take(p.ID)
			s.emit(core.EventDiamondTaken, p.ID, 0)
		}

		if pin.Has(core.ActionFire) && p.Ammo.Fire(s.now) {
			muzzle := p.Box(size).Center().Add(core.Heading(p.Angle).Scale(size.X / 2))
			s.bullets = append(s.bullets, Bullet{
				Pos:   muzzle,
				Angle: p.Angle * math.Pi / 180,
				Owner: p.ID,
			})
			s.emit(core.EventShotFired, p.ID, p.Ammo.Current)
		}
	}
}

func (s *Sim) rotate(p *Player, in core.InputFrame, dt time.Duration) {
	turn := s.mode.TurnSpeed * dt.Seconds()
	if in.Has(core.ActionRotateLeft) {
		p.Angle -= turn
	}
	if in.Has(core.ActionRotateRight) {
		p.Angle += turn
	}
	p.Angle = math.Mod(p.Angle+360, 360)
}

// move drives a tank along its facing. Moves outside the region or into
// the other living tank are rejected whole.
func (s *Sim) move(p *Player, in core.InputFrame, dt time.Duration) {
	var dir float64
	if in.Has(core.ActionForward) {
		dir++
	}
	if in.Has(core.ActionBack) {
		dir--
	}
	if dir == 0 {
		return
	}

	size := s.mode.PlayerSize
	step := core.Heading(p.Angle).Scale(dir * s.mode.MoveSpeed * dt.Seconds())
	next, ok := s.mode.ResolvePlayer(p.Pos.Add(step), size)
	if !ok {
		return
	}
	if other := s.other(p.ID); other.Alive && core.BoxAt(next, size).Overlaps(other.Box(size)) {
		return
	}
	p.Pos = next
}

func (s *Sim) updateReload(dt time.Duration) {
	for i := range s.players {
		if s.players[i].Alive {
			s.players[i].Ammo.Tick(dt)
		}
	}
}

// syncDiamond snaps a held diamond to its holder.
func (s *Sim) syncDiamond() {
	if !s.mode.Objective {
		return
	}
	half := core.V(s.mode.DiamondSize/2, s.mode.DiamondSize/2)
	switch s.diamond.State {
	case DiamondWithPlayer1, DiamondWithPlayer2:
		p := s.player(s.diamond.Holder())
		s.diamond.Pos = p.Box(s.mode.PlayerSize).Center().Sub(half)
	case DiamondWithEnemy:
		if e := s.enemyByID(s.diamond.Carrier); e != nil {
			s.diamond.Pos = e.Center(s.mode.Stats(e.Variant).Size).Sub(half)
		}
	}
}

// collideBullets resolves bullet hits. A bullet hits the first enemy in range.
func (s *Sim) collideBullets() {
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		if !s.hitEnemy(b) {
			kept = append(kept, b)
		}
	}
	s.bullets = kept
	s.removeDead()
}

func (s *Sim) hitEnemy(b Bullet) bool {
	for i := range s.enemies {
		e := &s.enemies[i]
		if e.Health <= 0 {
			continue
		}
		st := s.mode.Stats(e.Variant)
		if !core.Within(b.Pos, e.Center(st.Size), s.mode.BulletSize/2+st.Size/2) {
			continue
		}
		e.Health -= st.DamagePerHit
		if e.Health <= 0 {
			s.kill(e, st, b.Owner)
		}
		return true
	}
	return false
}

// kill scores an enemy for the bullet owner and drops the diamond it carried.
// The caller removes the enemy in the same step.
func (s *Sim) kill(e *Enemy, st VariantStats, owner core.PlayerID) {
	if p := s.player(owner); p != nil {
		p.Score += st.Score
	}
	center := e.Center(st.Size)
	s.blast(center)

	half := core.V(s.mode.DiamondSize/2, s.mode.DiamondSize/2)
	if s.diamond.Drop(e.ID, center.Sub(half)) {
		s.emit(core.EventDiamondDropped, owner, e.ID)
	}
	s.emit(core.EventEnemyKilled, owner, st.Score)
}

func (s *Sim) blast(at core.Vec) {
	s.explosions = append(s.explosions, Explosion{Pos: at, Start: s.now})
	s.marks.Add(at)
}

// collideEnemies resolves enemy contact with tanks that are not invincible.
func (s *Sim) collideEnemies() {
	size := s.mode.PlayerSize
	for i := range s.players {
		p := &s.players[i]
		if !p.Alive || p.invincible {
			continue
		}
		for j := range s.enemies {
			e := &s.enemies[j]
			if e.Health <= 0 {
				continue
			}
			st := s.mode.Stats(e.Variant)
			if p.Box(size).Overlaps(e.Box(st.Size)) {
				s.hitPlayer(p, e, st)
				break
			}
		}
	}
	s.removeDead()
}

func (s *Sim) hitPlayer(p *Player, e *Enemy, st VariantStats) {
	p.Lives--
	p.hitAt = s.now
	p.wasHit = true
	p.invincible = true
	s.emit(core.EventPlayerHit, p.ID, p.Lives)

	if s.mode.Objective && s.diamond.Steal(p.ID, e.ID) {
		e.Health += st.HealOnSteal
		s.emit(core.EventDiamondStolen, p.ID, e.ID)
	}
	if s.mode.Mode == ModeSurvival {
		e.Health = 0 // Erased on contact, no score
	}

	if p.Lives <= 0 {
		p.Lives = 0
		p.Alive = false
		p.wasHit = false
		p.invincible = false
		s.blast(p.Box(s.mode.PlayerSize).Center())
		s.emit(core.EventPlayerDied, p.ID, 0)
	}
}

// removeDead drops enemies whose health ran out.
func (s *Sim) removeDead() {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Health > 0 {
			kept = append(kept, e)
		}
	}
	s.enemies = kept
}

func (s *Sim) ageExplosions() {
	kept := s.explosions[:0]
	for _, ex := range s.explosions {
		if ex.Alive(s.now, s.mode.ExplosionTTL) {
			kept = append(kept, ex)
		}
	}
	s.explosions = kept
}

// updateBullets moves bullets and culls those that left the region.
func (s *Sim) updateBullets(dt time.Duration) {
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		b.Move(s.mode.BulletSpeed, dt)
		if s.mode.BulletInside(b.Pos) {
			kept = append(kept, b)
		}
	}
	s.bullets = kept
}

func (s *Sim) checkGameOver() {
	if s.over {
		return
	}
	switch {
	case !s.players[0].Alive && !s.players[1].Alive:
		s.reason = EndWiped
	case s.mode.Objective && s.carrierEscaped():
		s.reason = EndDiamondLost
	default:
		return
	}
	s.over = true
	if total := s.TotalScore(); total > s.highScore {
		s.highScore = total
	}
	s.emit(core.EventGameOver, core.PlayerNone, s.TotalScore())
}

func (s *Sim) carrierEscaped() bool {
	if s.diamond.State != DiamondWithEnemy {
		return false
	}
	e := s.enemyByID(s.diamond.Carrier)
	if e == nil {
		return false
	}
	return e.Box(s.mode.Stats(e.Variant).Size).Max().Y >= s.mode.Play.Max().Y
}

func (s *Sim) diamondBox() core.Box {
	return core.BoxAt(s.diamond.Pos, core.V(s.mode.DiamondSize, s.mode.DiamondSize))
}

func (s *Sim) player(id core.PlayerID) *Player {
	switch id {
	case core.Player1:
		return &s.players[0]
	case core.Player2:
		return &s.players[1]
	default:
		return nil
	}
}

func (s *Sim) other(id core.PlayerID) *Player {
	if id == core.Player1 {
		return &s.players[1]
	}
	return &s.players[0]
}

func (s *Sim) enemyByID(id int) *Enemy {
	for i := range s.enemies {
		if s.enemies[i].ID == id {
			return &s.enemies[i]
		}
	}
	return nil
}

// Mode returns the ruleset the session runs.
func (s *Sim) Mode() ModeConfig { return s.mode }

// Now returns the round's play time.
func (s *Sim) Now() time.Duration { return s.now }

// Ticks returns the number of sub-steps run this round.
func (s *Sim) Ticks() uint64 { return s.ticks }

// Player returns a tank by id, or nil.
func (s *Sim) Player(id core.PlayerID) *Player { return s.player(id) }

// Bullets returns the bullets in flight.
func (s *Sim) Bullets() []Bullet { return s.bullets }

// Enemies returns the living enemies.
func (s *Sim) Enemies() []Enemy { return s.enemies }

// Explosions returns the active explosions.
func (s *Sim) Explosions() []Explosion { return s.explosions }

// Marks returns the scorch mark ring.
func (s *Sim) Marks() *MarkRing { return s.marks }

// Diamond returns the objective state.
func (s *Sim) Diamond() Diamond { return s.diamond }

// Over reports whether the round has ended.
func (s *Sim) Over() bool { return s.over }

// Reason returns why the round ended.
func (s *Sim) Reason() EndReason { return s.reason }

// HighScore returns the best total score of the session.
func (s *Sim) HighScore() int { return s.highScore }

// SpawnInterval returns the current spawn interval.
func (s *Sim) SpawnInterval() time.Duration { return s.spawnInterval }

// TotalScore returns the combined score of both tanks.
func (s *Sim) TotalScore() int {
	return s.players[0].Score + s.players[1].Score
}

// NextEnemyID returns the id the next spawned enemy will get.
func (s *Sim) NextEnemyID() int { return s.nextID + 1 }
