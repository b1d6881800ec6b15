package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirName is the per-user directory holding configs, scores and logs.
const DirName = ".froggyforest"

// LoadForest loads Froggy Forest configuration.
// Search order: customPath -> ~/.froggyforest/configs/forest.yaml -> ./configs/forest.yaml -> embedded default.
// Files overlay the defaults, so a file may set only the fields it cares about.
func LoadForest(customPath string) (ForestConfig, error) {
	cfg := DefaultForestConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("forest.yaml"), filepath.Join("configs", "forest.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		return DefaultForestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid files are skipped.
func tryLoad(path string) (ForestConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ForestConfig{}, false
	}
	cfg := DefaultForestConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ForestConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return ForestConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DirName, "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
