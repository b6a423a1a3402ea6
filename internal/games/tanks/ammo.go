package tanks

import "time"

// Ammo tracks a tank's magazine. Slots[i] is true while slot i is loaded;
// slots are spent from the top and refilled one at a time from Current.
type Ammo struct {
	Current int
	Slots   []bool

	reload   time.Duration // Countdown for the slot being refilled
	lastFire time.Duration
	fired    bool

	fireRate   time.Duration
	reloadTime time.Duration
}

// NewAmmo returns a full magazine.
func NewAmmo(max int, fireRate, reloadTime time.Duration) Ammo {
	slots := make([]bool, max)
	for i := range slots {
		slots[i] = true
	}
	return Ammo{
		Current:    max,
		Slots:      slots,
		reload:     reloadTime,
		fireRate:   fireRate,
		reloadTime: reloadTime,
	}
}

// Max returns the magazine capacity.
func (a *Ammo) Max() int {
	return len(a.Slots)
}

// CanFire reports whether a shot is allowed at time now.
// A tank that has never fired is not rate limited.
func (a *Ammo) CanFire(now time.Duration) bool {
	if a.Current <= 0 {
		return false
	}
	return !a.fired || now-a.lastFire > a.fireRate
}

// Fire spends one bullet if allowed and restarts the reload timer.
func (a *Ammo) Fire(now time.Duration) bool {
	if !a.CanFire(now) {
		return false
	}
	a.Current--
	a.Slots[a.Current] = false
	a.reload = a.reloadTime
	a.lastFire = now
	a.fired = true
	return true
}

// Tick advances the reload timer, refilling at most one slot.
func (a *Ammo) Tick(dt time.Duration) {
	if a.Current >= a.Max() {
		return
	}
	a.reload -= dt
	if a.reload <= 0 {
		a.Slots[a.Current] = true
		a.Current++
		a.reload = a.reloadTime
	}
}
