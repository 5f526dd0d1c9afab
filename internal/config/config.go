// Package config provides YAML-based configuration loading and difficulty
// management for Walk the Dog.
package config

import "fmt"

// WalkConfig contains all tunable settings for a run.
type WalkConfig struct {
	Generator  GeneratorConfig  `yaml:"generator"`
	Score      ScoreConfig      `yaml:"score"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GeneratorConfig controls how far ahead obstacles are generated and how
// much room is left between segments.
type GeneratorConfig struct {
	TimelineMinimum int `yaml:"timeline_minimum"` // Lookahead, in world pixels
	ObstacleBuffer  int `yaml:"obstacle_buffer"`  // Smallest gap between segments
	MaxGap          int `yaml:"max_gap"`          // Gap at difficulty 0
}

// ScoreConfig converts scrolled distance to points.
type ScoreConfig struct {
	PixelsPerPoint int `yaml:"pixels_per_point"`
}

// AudioConfig describes the jump sound.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // 0.0 to 1.0
	Frequency  float64 `yaml:"frequency"`   // Starting pitch in Hz
	DurationMs int     `yaml:"duration_ms"` // Length of the chirp
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpacingReduction int `yaml:"spacing_reduction"` // Gap reduction at max difficulty
}

// Validate reports the first setting that would break the game.
func (c WalkConfig) Validate() error {
	switch {
	case c.Generator.TimelineMinimum <= 0:
		return fmt.Errorf("config: generator.timeline_minimum must be positive, got %d", c.Generator.TimelineMinimum)
	case c.Generator.ObstacleBuffer <= 0:
		return fmt.Errorf("config: generator.obstacle_buffer must be positive, got %d", c.Generator.ObstacleBuffer)
	case c.Generator.MaxGap < c.Generator.ObstacleBuffer:
		return fmt.Errorf("config: generator.max_gap %d is below obstacle_buffer %d", c.Generator.MaxGap, c.Generator.ObstacleBuffer)
	case c.Score.PixelsPerPoint <= 0:
		return fmt.Errorf("config: score.pixels_per_point must be positive, got %d", c.Score.PixelsPerPoint)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
