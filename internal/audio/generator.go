package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator is a finite sweep from one frequency to another with an
// exponential decay. noise mixes in white noise for blasts.
type ToneGenerator struct {
	sr       beep.SampleRate
	pos      int
	total    int
	from, to float64
	decay    float64
	noise    float64
	square   bool
	phase    float64
	seed     uint32
}

// Stream fills samples until the tone's length is reached.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress
		t := float64(g.pos) / float64(g.sr)

		var wave float64
		if g.square {
			wave = 0.6
			if g.phase >= 0.5 {
				wave = -0.6
			}
		} else {
			wave = math.Sin(2 * math.Pi * g.phase)
		}

		// xorshift keeps the noise reproducible
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		white := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := math.Exp(-t*g.decay) * ((1-g.noise)*wave + g.noise*white) * 0.3

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *ToneGenerator) Err() error {
	return nil
}

// Len returns the tone length in samples.
func (g *ToneGenerator) Len() int {
	return g.total
}

func newTone(sr beep.SampleRate, d time.Duration, from, to, decay, noise float64, square bool) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		total:  sr.N(d),
		from:   from,
		to:     to,
		decay:  decay,
		noise:  noise,
		square: square,
		seed:   2463534242,
	}
}

// CueStreamer builds a fresh streamer for a cue, or nil for an unknown cue.
func CueStreamer(c Cue) beep.Streamer {
	sr := sampleRate
	switch c {
	case CueSpawn:
		// rising warble out of the portal
		return newTone(sr, 180*time.Millisecond, 220, 660, 4, 0, true)
	case CueKill:
		return newTone(sr, 300*time.Millisecond, 120, 40, 9, 0.7, false)
	case CueHit:
		return newTone(sr, 150*time.Millisecond, 140, 90, 6, 0.2, true)
	case CueDiamond:
		return beep.Seq(
			newTone(sr, 80*time.Millisecond, 988, 988, 3, 0, false),
			newTone(sr, 160*time.Millisecond, 1319, 1319, 8, 0, false),
		)
	case CueClick:
		return newTone(sr, 30*time.Millisecond, 1000, 1000, 40, 0, true)
	default:
		return nil
	}
}

// MarchGenerator is the endless background loop: a kick on every beat
// under a four-note bass line.
type MarchGenerator struct {
	sr    beep.SampleRate
	pos   int
	beat  int
	notes []float64
}

// NewMarchGenerator creates the music loop at 120 BPM.
func NewMarchGenerator(sr beep.SampleRate) *MarchGenerator {
	return &MarchGenerator{
		sr:    sr,
		beat:  sr.N(500 * time.Millisecond),
		notes: []float64{55, 55, 65.41, 49},
	}
}

// Stream never runs dry.
func (g *MarchGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.sr.N(90 * time.Millisecond)
	for i := range samples {
		beatPos := g.pos % g.beat
		note := g.notes[(g.pos/g.beat)%len(g.notes)]
		t := float64(g.pos) / float64(g.sr)
		bt := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			kick = 0.35 * env * math.Sin(2*math.Pi*60*(1+2*env)*bt)
		}
		bass := 0.12 * math.Exp(-bt*2) * math.Sin(2*math.Pi*note*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *MarchGenerator) Err() error {
	return nil
}
