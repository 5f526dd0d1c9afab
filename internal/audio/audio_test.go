package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/walk-the-dog/internal/config"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestChirpLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	s := NewChirp(440, 880, duration, rate)
	total, peak := drain(s)

	if total != rate.N(duration) {
		t.Errorf("streamed %d samples, want %d", total, rate.N(duration))
	}
	if peak > 1.0 {
		t.Errorf("peak %f exceeds 1.0", peak)
	}
	if peak == 0 {
		t.Error("chirp is silent")
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestChirpStartsAtZero(t *testing.T) {
	s := NewChirp(440, 880, 50*time.Millisecond, beep.SampleRate(44100))
	buf := make([][2]float64, 1)
	if _, ok := s.Stream(buf); !ok {
		t.Fatal("expected first sample")
	}
	if buf[0][0] != 0 || buf[0][1] != 0 {
		t.Errorf("first sample = %v, want silence during attack", buf[0])
	}
}

func TestJumpSoundVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	cfg := config.AudioConfig{Enabled: true, Volume: 0, Frequency: 500, DurationMs: 50}

	if _, peak := drain(JumpSound(cfg, rate)); peak != 0 {
		t.Errorf("volume 0 peak = %f, want 0", peak)
	}

	cfg.Volume = 1
	_, loud := drain(JumpSound(cfg, rate))
	cfg.Volume = 0.25
	_, quiet := drain(JumpSound(cfg, rate))
	if quiet >= loud {
		t.Errorf("quiet peak %f should be below loud peak %f", quiet, loud)
	}
}

func TestPlayJumpBeforeInit(t *testing.T) {
	p := New(config.AudioConfig{Enabled: true, Volume: 0.5, Frequency: 500, DurationMs: 50})
	if err := p.PlayJump(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("PlayJump() = %v, want ErrNotInitialized", err)
	}
	// Close without Init is a no-op.
	p.Close()
}

func TestDisabledPlayer(t *testing.T) {
	p := New(config.AudioConfig{Enabled: false})
	if err := p.Init(); err != nil {
		t.Fatalf("Init() on disabled player = %v", err)
	}
	if err := p.PlayJump(); err != nil {
		t.Errorf("PlayJump() on disabled player = %v", err)
	}
}

func TestSilent(t *testing.T) {
	if err := (Silent{}).PlayJump(); err != nil {
		t.Errorf("Silent.PlayJump() = %v", err)
	}
}
