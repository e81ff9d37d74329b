package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "skyrunner.yaml"

// Load loads the Sky Runner configuration.
// Search order: customPath -> ~/.skyrunner/configs/skyrunner.yaml -> ./configs/skyrunner.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. The result is validated before it is returned.
func Load(customPath string) (SkyrunnerConfig, error) {
	cfg := base()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := base()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if err := candidate.Validate(); err != nil {
			continue
		}
		return candidate, nil
	}

	return cfg, nil
}

// base returns the embedded default, falling back to the hardcoded one.
func base() SkyrunnerConfig {
	cfg := DefaultSkyrunnerConfig()
	if err := yaml.Unmarshal(defaultSkyrunnerYAML, &cfg); err != nil {
		return DefaultSkyrunnerConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyrunner", "configs", filename)
}
