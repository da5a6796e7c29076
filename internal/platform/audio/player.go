// Package audio plays the games' sound cues through the system speaker.
// All sounds are synthesized; nothing is loaded from disk.
package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Player mixes sound cues into a single speaker stream.
// The zero value is not usable; create one with NewPlayer or Open.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sink        func(beep.Streamer)
	playing     map[core.SoundID]*atomic.Bool
	initialized bool
}

// NewPlayer creates a player that has not opened the speaker yet.
func NewPlayer() *Player {
	p := &Player{
		mixer:   &beep.Mixer{},
		playing: make(map[core.SoundID]*atomic.Bool),
	}
	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	return p
}

// Open creates a player and initializes the speaker. If the audio device is
// unavailable the failure is logged and the returned player stays silent.
func Open(logger *log.Logger) *Player {
	p := NewPlayer()
	if err := p.Initialize(); err != nil && logger != nil {
		logger.Warn("audio disabled", "err", err)
	}
	return p
}

// Initialize sets up the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play starts a cue. Ensure cues are skipped while a previous instance of
// the same sound is still playing. Unknown sounds are ignored.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	gen, dur := generatorFor(s.ID)
	if gen == nil {
		return
	}

	flag, ok := p.playing[s.ID]
	if !ok {
		flag = &atomic.Bool{}
		p.playing[s.ID] = flag
	}
	if s.Ensure && flag.Load() {
		return
	}
	flag.Store(true)

	clip := beep.Take(sampleRate.N(dur), gen)
	stream := beep.Seq(withVolume(clip, s.Volume), beep.Callback(func() {
		flag.Store(false)
	}))
	p.sink(stream)
}

// Close silences every playing cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	for _, flag := range p.playing {
		flag.Store(false)
	}
	p.initialized = false
}

// withVolume scales a stream. Zero or less mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	if vol >= 1 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// generatorFor returns the synthesizer and clip length for a sound.
func generatorFor(id core.SoundID) (beep.Streamer, time.Duration) {
	switch id {
	case core.SoundPew:
		return NewPewGenerator(sampleRate), 150 * time.Millisecond
	case core.SoundTreads:
		return NewTreadsGenerator(sampleRate), 400 * time.Millisecond
	case core.SoundThrust:
		return NewThrustGenerator(sampleRate), 250 * time.Millisecond
	default:
		return nil, 0
	}
}
