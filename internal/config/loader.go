package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlingshot loads Slingshot configuration.
// Search order: customPath -> ~/.arcade/configs/slingshot.yaml -> ./configs/slingshot.yaml -> embedded default.
// Files are decoded over the defaults, so a partial YAML only overrides the keys it sets.
func LoadSlingshot(customPath string) (SlingshotConfig, error) {
	cfg := DefaultSlingshotConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultSlingshotConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultSlingshotConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("slingshot.yaml"), filepath.Join("configs", "slingshot.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultSlingshotConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultSlingshotYAML, &cfg); err != nil {
		return DefaultSlingshotConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySlingshotPreset modifies the config based on a difficulty preset.
// Normal (and the empty preset) leaves the config untouched.
func ApplySlingshotPreset(cfg *SlingshotConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rounds.ShotsPerRound = 5
		cfg.Rounds.TargetSize *= 1.25
		cfg.Launcher.MaxPull *= 1.1
	case DifficultyHard:
		cfg.Rounds.ShotsPerRound = 2
		cfg.Rounds.TargetSize *= 0.8
		cfg.Rounds.MotionFromLevel = max(cfg.Rounds.MotionFromLevel-2, 2)
		cfg.Rounds.ObstacleFromLevel = max(cfg.Rounds.ObstacleFromLevel-1, 2)
	}
}
