package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const walkFile = "walk.yaml"

// LoadWalk loads the game configuration.
// Search order: customPath -> ~/.walkdog/configs/walk.yaml -> ./configs/walk.yaml -> embedded default
//
// Only an explicit customPath can fail; the implicit locations are skipped
// when missing, unparsable or invalid.
func LoadWalk(customPath string) (WalkConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WalkConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseWalk(data)
		if err != nil {
			return WalkConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(walkFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseWalk(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", walkFile)); err == nil {
		if cfg, err := parseWalk(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseWalk(defaultWalkYAML)
	if err != nil {
		return DefaultWalkConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseWalk decodes data over the hardcoded defaults, so a partial file only
// overrides the keys it names.
func parseWalk(data []byte) (WalkConfig, error) {
	cfg := DefaultWalkConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WalkConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return WalkConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".walkdog", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *WalkConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Generator.MaxGap = cfg.Generator.ObstacleBuffer
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the gap range based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Generator.MaxGap += cfg.Generator.MaxGap / 2
	case DifficultyHard:
		cfg.Generator.MaxGap -= cfg.Generator.MaxGap / 4
		if cfg.Generator.MaxGap < cfg.Generator.ObstacleBuffer {
			cfg.Generator.MaxGap = cfg.Generator.ObstacleBuffer
		}
	}
}
