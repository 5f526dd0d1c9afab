package config

import "math"

// DifficultyManager turns progress through a run into a difficulty level and
// the segment gap that goes with it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager. The initial level is clamped to
// [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled reports whether the level moves during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress is how far along the progression curve a run is, in [0, 1].
// ok is false when the progression type is not recognized.
func (d *DifficultyManager) progress(score, ticks int) (p float64, ok bool) {
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	switch d.cfg.Progression.Type {
	case "score":
		p = float64(score) / maxAt
	case "time":
		p = float64(ticks) / maxAt
	default:
		return 0, false
	}
	return clampF(p, 0, 1), true
}

// Level returns the difficulty in [0, 1]. It rises linearly from the initial
// level to 1 as the run progresses.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	p, ok := d.progress(score, ticks)
	if !ok {
		return d.initialLevel
	}
	return d.initialLevel + p*(1-d.initialLevel)
}

// Gap returns the space to leave between generated segments. It shrinks from
// maxGap by up to spacing_reduction at full difficulty and never drops below
// minGap.
func (d *DifficultyManager) Gap(maxGap, minGap, score, ticks int) int {
	reduction := int(d.Level(score, ticks) * float64(d.cfg.Scaling.SpacingReduction))
	return max(maxGap-reduction, minGap)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
