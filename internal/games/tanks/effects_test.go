package tanks

import (
	"testing"
	"time"

	"github.com/vovakirdan/tank-battleground/internal/core"
)

func TestMarkRingCapped(t *testing.T) {
	r := NewMarkRing(64)
	for i := 0; i < 100; i++ {
		r.Add(core.V(float64(i), 0))
		if r.Len() > r.Cap() {
			t.Fatalf("Len() = %d exceeds Cap() = %d", r.Len(), r.Cap())
		}
	}

	marks := r.All()
	if len(marks) != 64 {
		t.Fatalf("len(All()) = %d, expected 64", len(marks))
	}
	if marks[0].X != 36 {
		t.Errorf("oldest mark = %v, expected 36", marks[0].X)
	}
	if marks[63].X != 99 {
		t.Errorf("newest mark = %v, expected 99", marks[63].X)
	}
}

func TestMarkRingPartialAndReset(t *testing.T) {
	r := NewMarkRing(4)
	r.Add(core.V(1, 1))
	r.Add(core.V(2, 2))

	if got := r.All(); len(got) != 2 || got[0].X != 1 || got[1].X != 2 {
		t.Errorf("All() = %+v, expected two marks oldest first", got)
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", r.Len())
	}
}

func TestExplosionLifetime(t *testing.T) {
	ex := Explosion{Start: time.Second}
	ttl := 500 * time.Millisecond

	if !ex.Alive(time.Second+499*time.Millisecond, ttl) {
		t.Error("explosion should be alive before its lifetime ends")
	}
	if ex.Alive(time.Second+500*time.Millisecond, ttl) {
		t.Error("explosion should expire at exactly its lifetime")
	}
}
