package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadBakery loads the bakery configuration.
// Search order: customPath -> ~/.bakery/configs/bakery.yaml -> ./configs/bakery.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error. The
// other locations are skipped when broken.
func LoadBakery(customPath string) (BakeryConfig, error) {
	var cfg BakeryConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bakery.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "bakery.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBakeryYAML, &cfg); err != nil || Validate(cfg) != nil {
		return DefaultBakeryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (BakeryConfig, bool) {
	var cfg BakeryConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, Validate(cfg) == nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bakery", "configs", filename)
}

// ApplyBakeryPreset modifies the config based on a difficulty preset. Only
// timed sessions are affected; an untimed config stays untimed.
func ApplyBakeryPreset(cfg *BakeryConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) || cfg.Session.DurationSecs <= 0 {
		return
	}
	secs := int(float64(cfg.Session.DurationSecs) * DurationFactorForPreset(preset))
	if secs < 1 {
		secs = 1
	}
	cfg.Session.DurationSecs = secs

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Physics.MoveSpeed *= 1.25
	case DifficultyHard:
		cfg.Physics.MoveSpeed *= 0.8
	}
}

// SessionDuration returns the configured round length, 0 when untimed.
func (c BakeryConfig) SessionDuration() time.Duration {
	if c.Session.DurationSecs <= 0 {
		return 0
	}
	return time.Duration(c.Session.DurationSecs) * time.Second
}
