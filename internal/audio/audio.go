// Package audio plays the game's sound effects through the system speaker.
// Effects are synthesized on the fly; there are no sound files.
package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/walk-the-dog/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when a sound is played before Init.
var ErrNotInitialized = errors.New("audio: speaker not initialized")

// Player owns the speaker and mixes effects into it.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// New creates a player. Nothing is opened until Init.
func New(cfg config.AudioConfig) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. A disabled player never touches the device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayJump queues the jump chirp. It never blocks on playback.
func (p *Player) PlayJump() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled {
		return nil
	}
	if !p.initialized {
		return ErrNotInitialized
	}

	chirp := JumpSound(p.cfg, sampleRate)
	speaker.Lock()
	p.mixer.Add(chirp)
	speaker.Unlock()
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Silent plays nothing. It stands in when there is no usable device, such as
// for SSH sessions.
type Silent struct{}

// PlayJump implements runner.Audio.
func (Silent) PlayJump() error { return nil }

// JumpSound builds the jump effect: a short rising sine with a fast attack
// and a linear fade, scaled by the configured volume.
func JumpSound(cfg config.AudioConfig, rate beep.SampleRate) beep.Streamer {
	duration := time.Duration(cfg.DurationMs) * time.Millisecond
	return newVolume(NewChirp(cfg.Frequency, cfg.Frequency*2, duration, rate), cfg.Volume)
}

// chirp is a sine whose pitch sweeps linearly from one frequency to another.
type chirp struct {
	from, to float64
	phase    float64
	position int
	total    int
	attack   int
	rate     beep.SampleRate
}

// NewChirp creates a sweeping sine of the given duration.
func NewChirp(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &chirp{
		from:   from,
		to:     to,
		total:  total,
		attack: atLeastOne(total / 10),
		rate:   rate,
	}
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.total {
			return i, i > 0
		}

		progress := float64(c.position) / float64(c.total)
		freq := c.from + (c.to-c.from)*progress

		vol := 1 - progress
		if c.position < c.attack {
			vol = float64(c.position) / float64(c.attack)
		}

		val := vol * math.Sin(2*math.Pi*c.phase)
		samples[i][0] = val
		samples[i][1] = val

		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// newVolume scales a stream linearly. Zero or less is silent, since the
// logarithmic volume has no finite value there.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
