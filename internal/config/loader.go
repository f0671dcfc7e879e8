package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigDir is the working-directory config folder searched after the
// user's home config folder.
var localConfigDir = "configs"

// LoadFlappy loads the flappy configuration.
// Search order: customPath -> ~/.starcatcher/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy", customPath, DefaultFlappyConfig(), defaultFlappyYAML, FlappyConfig.Validate)
}

// LoadCatcher loads the catcher configuration.
// Search order: customPath -> ~/.starcatcher/configs/catcher.yaml -> ./configs/catcher.yaml -> embedded default
func LoadCatcher(customPath string) (CatcherConfig, error) {
	return load("catcher", customPath, DefaultCatcherConfig(), defaultCatcherYAML, CatcherConfig.Validate)
}

// load resolves a config the same way for every variant. Files are decoded on
// top of the hard-coded defaults, so a file only needs the keys it changes.
// An explicit path must exist, parse and validate; files found on the search
// path are skipped when they are broken.
func load[T any](gameID, customPath string, defaults T, embedded []byte, validate func(T) error) (T, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath, defaults)
		if err != nil {
			return defaults, err
		}
		if err := validate(cfg); err != nil {
			return defaults, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join(localConfigDir, filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		cfg, err := decodeFile(path, defaults)
		if err != nil {
			continue
		}
		if validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads a YAML file over a copy of base.
func decodeFile[T any](path string, base T) (T, error) {
	cfg := base
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starcatcher", "configs", filename)
}

// Marshal encodes a config back to YAML, e.g. to show the effective settings.
func Marshal(cfg any) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
