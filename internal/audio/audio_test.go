package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tank-battleground/internal/core"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		cue  Cue
		ok   bool
	}{
		{core.EventEnemySpawned, CueSpawn, true},
		{core.EventEnemyKilled, CueKill, true},
		{core.EventPlayerHit, CueHit, true},
		{core.EventPlayerDied, CueHit, true},
		{core.EventDiamondTaken, CueDiamond, true},
		{core.EventDiamondStolen, CueDiamond, true},
		{core.EventDiamondDropped, CueDiamond, true},
		{core.EventShotFired, 0, false},
		{core.EventGameOver, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			cue, ok := CueFor(core.Event{Kind: tt.kind})
			if ok != tt.ok || (ok && cue != tt.cue) {
				t.Errorf("CueFor(%v) = %v, %v, expected %v, %v", tt.kind, cue, ok, tt.cue, tt.ok)
			}
		})
	}
}

func TestGain(t *testing.T) {
	tests := []struct {
		vol    int
		exp    float64
		silent bool
	}{
		{0, 0, true},
		{-4, 0, true},
		{128, 0, false},
		{64, -1, false},
		{32, -2, false},
	}

	for _, tt := range tests {
		exp, silent := gain(tt.vol)
		if silent != tt.silent || math.Abs(exp-tt.exp) > 1e-9 {
			t.Errorf("gain(%d) = %v, %v, expected %v, %v", tt.vol, exp, silent, tt.exp, tt.silent)
		}
	}
}

// Players here never open the speaker, so every call must be safe without a device.
func TestPlayerWithoutSpeaker(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without a speaker: %v", r)
		}
	}()

	p := NewPlayer()
	p.SetVolumes(80, 200)
	if m, s := p.Volumes(); m != 80 || s != MaxVolume {
		t.Errorf("Volumes() = %d/%d, expected 80/%d", m, s, MaxVolume)
	}
	if p.musicGain.Silent || !(p.musicGain.Volume < 0) {
		t.Errorf("music gain = %v silent=%v, expected a negative exponent", p.musicGain.Volume, p.musicGain.Silent)
	}

	p.SetVolumes(0, 10)
	if !p.musicGain.Silent {
		t.Error("music volume 0 should silence the track")
	}

	p.StartMusic()
	if !p.MusicPlaying() {
		t.Error("MusicPlaying() = false after StartMusic")
	}
	p.StopMusic()
	if p.MusicPlaying() {
		t.Error("MusicPlaying() = true after StopMusic")
	}

	p.PlayEvents([]core.Event{{Kind: core.EventEnemyKilled}, {Kind: core.EventEnemyKilled}})
	p.Play(CueClick)
	p.Close()
	if p.Initialized() {
		t.Error("Initialized() = true without Init")
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.SetVolumes(10, 10)
	p.StartMusic()
	p.Play(CueKill)
	p.PlayEvents([]core.Event{{Kind: core.EventPlayerHit}})
	p.Close()
	if m, s := p.Volumes(); m != 0 || s != 0 {
		t.Errorf("nil Volumes() = %d/%d, expected 0/0", m, s)
	}
}

func TestCueStreamersEnd(t *testing.T) {
	for _, c := range []Cue{CueSpawn, CueKill, CueHit, CueDiamond, CueClick} {
		t.Run(c.String(), func(t *testing.T) {
			s := CueStreamer(c)
			if s == nil {
				t.Fatal("CueStreamer() = nil")
			}
			buf := make([][2]float64, 512)
			total := 0
			for i := 0; i < 1000; i++ {
				n, ok := s.Stream(buf)
				total += n
				for _, smp := range buf[:n] {
					if math.Abs(smp[0]) > 1 {
						t.Fatalf("sample %v out of range", smp[0])
					}
				}
				if !ok {
					break
				}
			}
			if total == 0 || total > sampleRate.N(time.Second) {
				t.Errorf("cue streamed %d samples", total)
			}
			if n, ok := s.Stream(buf); n != 0 || ok {
				t.Errorf("drained cue Stream() = %d, %v, expected 0, false", n, ok)
			}
		})
	}

	if CueStreamer(Cue(99)) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestToneLength(t *testing.T) {
	tone := newTone(sampleRate, 0, 440, 440, 1, 0, false)
	if n, ok := tone.Stream(make([][2]float64, 8)); n != 0 || ok {
		t.Errorf("empty tone Stream() = %d, %v, expected 0, false", n, ok)
	}

	click := CueStreamer(CueClick).(*ToneGenerator)
	if click.Len() != sampleRate.N(30*time.Millisecond) {
		t.Errorf("click Len() = %d, expected %d", click.Len(), sampleRate.N(30*time.Millisecond))
	}
}

func TestMarchLoops(t *testing.T) {
	g := NewMarchGenerator(sampleRate)
	buf := make([][2]float64, sampleRate.N(2*time.Second))
	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Errorf("Stream() = %d, %v, expected %d, true", n, ok, len(buf))
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v, expected nil", g.Err())
	}
}
