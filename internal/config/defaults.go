package config

import (
	_ "embed"
)

//go:embed defaults/walk.yaml
var defaultWalkYAML []byte

// DefaultWalkConfig returns the hardcoded configuration, used when the
// embedded YAML cannot be parsed.
func DefaultWalkConfig() WalkConfig {
	return WalkConfig{
		Generator: GeneratorConfig{
			TimelineMinimum: 1000,
			ObstacleBuffer:  20,
			MaxGap:          200,
		},
		Score: ScoreConfig{
			PixelsPerPoint: 10,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			Frequency:  520,
			DurationMs: 140,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				SpacingReduction: 180,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultWalkYAML
}
