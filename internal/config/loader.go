package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned for a preset name with no embedded ruleset.
var ErrUnknownPreset = errors.New("unknown preset")

// Load loads a ruleset.
// Search order: customPath -> ~/.console/rules/<preset>.yaml ->
// ./configs/<preset>.yaml -> embedded default. CONSOLE_* environment
// variables are applied on top, then the result is validated.
func Load(preset, customPath string) (Ruleset, error) {
	if preset == "" {
		preset = DefaultPreset
	}

	cfg, err := load(preset, customPath)
	if err != nil {
		return cfg, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", cfg.Name, err)
	}
	return cfg, nil
}

func load(preset, customPath string) (Ruleset, error) {
	// Custom files start from the preset so they may override a subset
	base, ok := hardcodedPreset(preset)
	if !ok {
		return Ruleset{}, fmt.Errorf("config: %w %q", ErrUnknownPreset, preset)
	}

	// Try custom path first
	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := preset + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := readFile(userCfgPath, base); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readFile(filepath.Join("configs", filename), base); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := base
	if err := yaml.Unmarshal(GetDefaultYAML(preset), &cfg); err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readFile parses an optional ruleset file over base.
func readFile(path string, base Ruleset) (Ruleset, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".console", "rules", filename)
}

// Marshal renders a ruleset as YAML.
func Marshal(r Ruleset) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode ruleset: %w", err)
	}
	return data, nil
}
