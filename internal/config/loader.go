package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are tried in order inside each search directory.
var configNames = []string{"bogger.yaml", "bogger.yml", "bogger.toml"}

// LoadBogger loads Bogger configuration.
// Search order: customPath -> ~/.bogger/configs/bogger.{yaml,toml} -> ./configs/bogger.{yaml,toml} -> embedded default
// Files are decoded on top of the defaults, so partial files are fine.
func LoadBogger(customPath string) (BoggerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, dir := range []string{userConfigDir(), "configs"} {
		if dir == "" {
			continue
		}
		for _, name := range configNames {
			cfg, err := loadFile(filepath.Join(dir, name))
			if err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultBoggerConfig()
	if err := yaml.Unmarshal(defaultBoggerYAML, &cfg); err != nil {
		return DefaultBoggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes path on top of the defaults, picking the format by extension.
func loadFile(path string) (BoggerConfig, error) {
	cfg := DefaultBoggerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *BoggerConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	case ".yaml", ".yml", "":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bogger", "configs")
}

// ApplyBoggerPreset modifies the config based on a difficulty preset.
func ApplyBoggerPreset(cfg *BoggerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timer.CountdownMs = 120000
		cfg.Scoring.SpiderPenalty = 3
		cfg.Spiders.SpawnChance *= 0.5
	case DifficultyHard:
		cfg.Timer.CountdownMs = 60000
		cfg.Scoring.SpiderPenalty = 8
		cfg.Spiders.SpawnChance *= 1.5
	}
}

// ApplySandbox turns cfg into the untimed chain playground.
func ApplySandbox(cfg *BoggerConfig) {
	cfg.Spiders.Enabled = false
	cfg.Timer.CountdownMs = 0
	cfg.Difficulty.Enabled = false
}
