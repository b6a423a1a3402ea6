package tanks

import "math"

// Snapshot contains the complete session state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	NowNanos  int64
	Mode      int
	Over      bool
	Reason    int
	HighScore int

	// Tanks (each is 9 values: X, Y, Angle, Alive, Lives, Score, Current, Invincible, LastFireSet)
	PlayerData []float64

	// Enemies (each is 6 values: ID, Variant, X, Y, Health, Entering)
	EnemyCount int
	EnemyData  []float64

	// Bullets (each is 4 values: X, Y, Angle, Owner)
	BulletCount int
	BulletData  []float64

	ExplosionCount int
	MarkCount      int

	DiamondState   int
	DiamondCarrier int
	DiamondX       float64
	DiamondY       float64

	SpawnTimerNanos    int64
	SpawnIntervalNanos int64
	NextID             int
}

// Snapshot returns the current session state.
func (s *Sim) Snapshot() Snapshot {
	playerData := make([]float64, 0, len(s.players)*9)
	for _, p := range s.players {
		playerData = append(playerData,
			p.Pos.X, p.Pos.Y, p.Angle,
			boolF(p.Alive), float64(p.Lives), float64(p.Score),
			float64(p.Ammo.Current), boolF(p.invincible), boolF(p.Ammo.fired))
	}

	enemyData := make([]float64, 0, len(s.enemies)*6)
	for _, e := range s.enemies {
		enemyData = append(enemyData,
			float64(e.ID), float64(e.Variant), e.Pos.X, e.Pos.Y, float64(e.Health), boolF(e.Entering))
	}

	bulletData := make([]float64, 0, len(s.bullets)*4)
	for _, b := range s.bullets {
		bulletData = append(bulletData, b.Pos.X, b.Pos.Y, b.Angle, float64(b.Owner))
	}

	return Snapshot{
		Tick:      s.ticks,
		NowNanos:  int64(s.now),
		Mode:      int(s.mode.Mode),
		Over:      s.over,
		Reason:    int(s.reason),
		HighScore: s.highScore,

		PlayerData:  playerData,
		EnemyCount:  len(s.enemies),
		EnemyData:   enemyData,
		BulletCount: len(s.bullets),
		BulletData:  bulletData,

		ExplosionCount: len(s.explosions),
		MarkCount:      s.marks.Len(),

		DiamondState:   int(s.diamond.State),
		DiamondCarrier: s.diamond.Carrier,
		DiamondX:       s.diamond.Pos.X,
		DiamondY:       s.diamond.Pos.Y,

		SpawnTimerNanos:    int64(s.spawnTimer),
		SpawnIntervalNanos: int64(s.spawnInterval),
		NextID:             s.nextID,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Float fields are hashed by their exact bit pattern.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.NowNanos)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Reason)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ExplosionCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MarkCount)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DiamondState)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DiamondCarrier)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnTimerNanos)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnIntervalNanos) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextID)             //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.DiamondX)
	h = h*31 + math.Float64bits(snap.DiamondY)
	if snap.Over {
		h = h*31 + 1
	}

	for _, v := range snap.PlayerData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
