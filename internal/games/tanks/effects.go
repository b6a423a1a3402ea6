package tanks

import (
	"time"

	"github.com/vovakirdan/tank-battleground/internal/core"
)

// Explosion is a short-lived blast centered on Pos.
type Explosion struct {
	Pos   core.Vec
	Start time.Duration
}

// Alive reports whether the explosion is still showing at now.
func (e Explosion) Alive(now, ttl time.Duration) bool {
	return now-e.Start < ttl
}

// MarkRing keeps the most recent scorch marks, overwriting the oldest.
type MarkRing struct {
	buf  []core.Vec
	next int
	full bool
}

// NewMarkRing creates a ring holding up to capacity marks.
func NewMarkRing(capacity int) *MarkRing {
	if capacity < 1 {
		capacity = 1
	}
	return &MarkRing{buf: make([]core.Vec, capacity)}
}

// Add records a mark.
func (r *MarkRing) Add(p core.Vec) {
	r.buf[r.next] = p
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.full = true
	}
}

// Len returns the number of stored marks.
func (r *MarkRing) Len() int {
	if r.full {
		return len(r.buf)
	}
	return r.next
}

// Cap returns the ring capacity.
func (r *MarkRing) Cap() int {
	return len(r.buf)
}

// All returns the marks oldest first.
func (r *MarkRing) All() []core.Vec {
	if !r.full {
		return append([]core.Vec(nil), r.buf[:r.next]...)
	}
	out := make([]core.Vec, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	return append(out, r.buf[:r.next]...)
}

// Reset drops every mark.
func (r *MarkRing) Reset() {
	r.next = 0
	r.full = false
}
