package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadNeuralHack loads Neural Hack configuration.
// Search order: customPath -> ~/.arcade/configs/neural-hack.yaml -> ./configs/neural-hack.yaml -> embedded default
func LoadNeuralHack(customPath string) (ArcadeConfig, error) {
	cfg, err := load(NeuralHackID, customPath, DefaultNeuralHackConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFruitSlice loads Fruit Slice configuration.
// Search order: customPath -> ~/.arcade/configs/fruit-slice.yaml -> ./configs/fruit-slice.yaml -> embedded default
func LoadFruitSlice(customPath string) (ArcadeConfig, error) {
	cfg, err := load(FruitSliceID, customPath, DefaultFruitSliceConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadWordConnect loads Word Connect configuration.
// Search order: customPath -> ~/.arcade/configs/word-connect.yaml -> ./configs/word-connect.yaml -> embedded default
func LoadWordConnect(customPath string) (WordConnectConfig, error) {
	cfg, err := load(WordConnectID, customPath, DefaultWordConnectConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// load walks the search order for gameID. A missing or unparsable user or
// local file falls through to the next source; only an explicit custom
// path is an error.
func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	var cfg T
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var user T
			if err := yaml.Unmarshal(data, &user); err == nil {
				return user, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		var local T
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
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
