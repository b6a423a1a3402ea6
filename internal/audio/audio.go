// Package audio plays the battleground music loop and one-shot cues through beep.
// A Player that failed to open the speaker stays usable and simply stays silent.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tank-battleground/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// MaxVolume is the top of the volume scale shared with the pause sliders.
	MaxVolume = 128
)

// Cue is a one-shot sound effect.
type Cue int

const (
	CueSpawn Cue = iota
	CueKill
	CueHit
	CueDiamond
	CueClick
)

// String returns a short name for the cue.
func (c Cue) String() string {
	switch c {
	case CueSpawn:
		return "spawn"
	case CueKill:
		return "kill"
	case CueHit:
		return "hit"
	case CueDiamond:
		return "diamond"
	case CueClick:
		return "click"
	default:
		return "unknown"
	}
}

// CueFor maps a gameplay event to its cue. Shots are silent.
func CueFor(ev core.Event) (Cue, bool) {
	switch ev.Kind {
	case core.EventEnemySpawned:
		return CueSpawn, true
	case core.EventEnemyKilled:
		return CueKill, true
	case core.EventPlayerHit, core.EventPlayerDied:
		return CueHit, true
	case core.EventDiamondTaken, core.EventDiamondStolen, core.EventDiamondDropped:
		return CueDiamond, true
	default:
		return 0, false
	}
}

// Player owns the speaker mix: a looped music track and a mixer of cues,
// each behind its own volume control.
type Player struct {
	mu          sync.Mutex
	initialized bool

	master *beep.Mixer
	sfx    *beep.Mixer
	music  *beep.Ctrl

	musicGain *effects.Volume
	sfxGain   *effects.Volume

	musicVolume int
	sfxVolume   int
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	p := &Player{
		master: &beep.Mixer{},
		sfx:    &beep.Mixer{},
		music: &beep.Ctrl{
			Streamer: beep.Loop(-1, NewMarchGenerator(sampleRate)),
			Paused:   true,
		},
	}
	p.musicGain = &effects.Volume{Streamer: p.music, Base: 2}
	p.sfxGain = &effects.Volume{Streamer: p.sfx, Base: 2}
	p.master.Add(p.musicGain, p.sfxGain)
	p.SetVolumes(MaxVolume, MaxVolume)
	return p
}

// Init opens the speaker and starts mixing. Calling it twice is a no-op.
// On error the player keeps working silently.
func (p *Player) Init() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Initialized reports whether the speaker is open.
func (p *Player) Initialized() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// locked runs fn with the speaker goroutine held off while it touches the mix.
func (p *Player) locked(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// StartMusic resumes the music loop.
func (p *Player) StartMusic() {
	if p == nil {
		return
	}
	p.locked(func() { p.music.Paused = false })
}

// StopMusic pauses the music loop.
func (p *Player) StopMusic() {
	if p == nil {
		return
	}
	p.locked(func() { p.music.Paused = true })
}

// MusicPlaying reports whether the loop is running.
func (p *Player) MusicPlaying() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.music.Paused
}

// SetVolumes sets music and effect volumes, clamped to [0, MaxVolume].
func (p *Player) SetVolumes(music, sfx int) {
	if p == nil {
		return
	}
	music = core.Clamp(music, 0, MaxVolume)
	sfx = core.Clamp(sfx, 0, MaxVolume)
	p.locked(func() {
		p.musicVolume, p.sfxVolume = music, sfx
		applyGain(p.musicGain, music)
		applyGain(p.sfxGain, sfx)
	})
}

// Volumes returns the current music and effect volumes.
func (p *Player) Volumes() (music, sfx int) {
	if p == nil {
		return 0, 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicVolume, p.sfxVolume
}

// Play queues a cue. Nothing happens while the speaker is closed or effects are muted.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.sfxVolume == 0 {
		return
	}
	s := CueStreamer(c)
	if s == nil {
		return
	}
	speaker.Lock()
	p.sfx.Add(s)
	speaker.Unlock()
}

// PlayEvents plays the cue of every event that has one, once per cue kind.
func (p *Player) PlayEvents(events []core.Event) {
	var played [CueClick + 1]bool
	for _, ev := range events {
		if c, ok := CueFor(ev); ok && !played[c] {
			played[c] = true
			p.Play(c)
		}
	}
}

// Close stops everything and detaches from the speaker.
// beep cannot reopen the speaker once closed, so a closed Player stays silent.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// gain converts a [0, MaxVolume] volume into beep's base-2 exponent.
// Zero is silent since log2(0) is -Inf.
func gain(vol int) (exp float64, silent bool) {
	if vol <= 0 {
		return 0, true
	}
	return math.Log2(float64(vol) / MaxVolume), false
}

func applyGain(v *effects.Volume, vol int) {
	v.Volume, v.Silent = gain(vol)
}
