// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-garbage/internal/games/spacegarbage"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes short synthesized effects into one speaker stream.
// Play is safe to call from the game loop; it never blocks on audio output.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// New creates a player. Nothing is heard until Initialize succeeds.
func New() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences every pending effect.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play implements spacegarbage.Sounder.
func (p *Player) Play(s spacegarbage.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer := Effect(s)
	if streamer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Effect returns a finite streamer for the sound, or nil if it has none.
func Effect(s spacegarbage.Sound) beep.Streamer {
	switch s {
	case spacegarbage.SoundFire:
		return beep.Take(sampleRate.N(80*time.Millisecond), newTone(sampleRate, 880, 30))
	case spacegarbage.SoundExplosion:
		return beep.Take(sampleRate.N(250*time.Millisecond), newNoise(sampleRate, 12))
	}
	return nil
}

// tone is a sine beep with an exponential decay.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
}

func newTone(sr beep.SampleRate, freq, decay float64) *tone {
	return &tone{sr: sr, freq: freq, decay: decay}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		v := 0.25 * math.Sin(2*math.Pi*g.freq*t) * math.Exp(-g.decay*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}

// noise is a decaying white-noise burst.
type noise struct {
	sr    beep.SampleRate
	decay float64
	rng   *rand.Rand
	pos   int
}

func newNoise(sr beep.SampleRate, decay float64) *noise {
	return &noise{sr: sr, decay: decay, rng: rand.New(rand.NewSource(1))}
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		v := 0.3 * (g.rng.Float64()*2 - 1) * math.Exp(-g.decay*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *noise) Err() error {
	return nil
}

var _ spacegarbage.Sounder = (*Player)(nil)
