package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/walk-the-dog/internal/assets"
	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// Phase is the session's top-level state.
type Phase int

const (
	Ready Phase = iota
	Walking
	GameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Walking:
		return "walking"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Options configures a Session. Zero fields take defaults.
type Options struct {
	Logger          *log.Logger
	Audio           Audio
	Seed            int64
	TimelineMinimum int
	Gap             int // Space between generated segments
	Segments        []Segment
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Audio == nil {
		o.Audio = silentAudio{}
	}
	if o.TimelineMinimum <= 0 {
		o.TimelineMinimum = DefaultTimelineMinimum
	}
	if o.Gap <= 0 {
		o.Gap = DefaultObstacleBuffer
	}
	return o
}

// Session drives a Walk through Ready, Walking and GameOver. It owns the
// loaded assets so a restart reuses them.
type Session struct {
	phase     Phase
	walk      *Walk
	pack      *assets.Pack
	generator *SegmentGenerator
	opts      Options
	gap       int
	restart   bool
}

// NewSession starts in Ready with a fresh walk.
func NewSession(pack *assets.Pack, opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{
		pack:      pack,
		generator: NewSegmentGenerator(pack, opts.Seed, opts.Segments...),
		opts:      opts,
		gap:       opts.Gap,
	}
	s.walk = s.newWalk()
	return s
}

func (s *Session) newWalk() *Walk {
	dog := NewCharacter(s.pack.Dog, s.opts.Audio, s.opts.Logger)
	return NewWalk(s.pack, s.generator, dog, s.opts.TimelineMinimum, s.gap)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Walk returns the current run.
func (s *Session) Walk() *Walk {
	return s.walk
}

// SetGap changes the segment gap for this and future runs.
func (s *Session) SetGap(gap int) {
	if gap <= 0 {
		return
	}
	s.gap = gap
	s.walk.SetGap(gap)
}

// RequestRestart asks for a new run. It only takes effect in GameOver, on
// the next Update.
func (s *Session) RequestRestart() {
	if s.phase == GameOver {
		s.restart = true
	}
}

// Update advances the session by one tick.
func (s *Session) Update(keys KeyState) {
	switch s.phase {
	case Ready:
		s.walk.Dog().Update()
		if keys.IsPressed(core.ActionRight) {
			s.walk.Dog().Run()
			s.setPhase(Walking)
		}
	case Walking:
		if s.walk.KnockedOut() {
			s.setPhase(GameOver)
			return
		}
		s.walk.Update(keys)
	case GameOver:
		if s.restart {
			s.restart = false
			s.walk = s.newWalk()
			s.opts.Logger.Debug("restart")
			s.setPhase(Ready)
		}
	}
}

func (s *Session) setPhase(p Phase) {
	s.opts.Logger.Debug("session phase", "from", s.phase, "to", p)
	s.phase = p
}

// Draw draws the current run.
func (s *Session) Draw(r Renderer) {
	s.walk.Draw(r)
}
