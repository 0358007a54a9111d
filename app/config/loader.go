package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ArchNewsURL is the feed used when no configuration file exists.
const ArchNewsURL = "https://archlinux.org/feeds/news"

// Loader handles loading and validation of the feed source configuration
type Loader struct {
	dirs []string
}

// NewLoader creates a configuration loader searching dirs in order
func NewLoader(dirs ...string) *Loader {
	return &Loader{dirs: dirs}
}

// DefaultDirs returns the configuration lookup path: the working
// directory first, then the user config directory.
func DefaultDirs() []string {
	dirs := []string{"."}
	if base, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(base, "informant"))
	}
	return dirs
}

// Load reads the first of config.json, config.yaml or config.yml found
// in the loader's directories, searched in order. A missing file is
// not an error: the default Arch news feed is used instead.
func (l *Loader) Load() (*Config, error) {
	for _, dir := range l.dirs {
		for _, name := range []string{"config.json", "config.yaml", "config.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				continue
			}

			config, err := l.loadFile(path)
			if err != nil {
				return nil, fmt.Errorf("error loading %s: %w", path, err)
			}

			if err := l.validate(config); err != nil {
				return nil, fmt.Errorf("invalid config %s: %w", path, err)
			}

			slog.Debug("Loaded configuration", "path", path, "feeds", len(config.Feeds))
			return config, nil
		}
	}

	slog.Debug("No configuration file found, using default feed", "url", ArchNewsURL)
	config := &Config{Feeds: []Feed{{URL: ArchNewsURL, Name: "Arch Linux News"}}}
	l.setDefaults(config)
	return config, nil
}

// loadFile loads a single configuration file, picking the decoder by
// extension. The JSON form is the original tool's format and is kept
// for compatibility.
func (l *Loader) loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config Config
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	l.setDefaults(&config)

	return &config, nil
}

// setDefaults applies default values to configuration
func (l *Loader) setDefaults(config *Config) {
	for i := range config.Feeds {
		if config.Feeds[i].Timeout == 0 {
			config.Feeds[i].Timeout = 30 // seconds
		}
	}
}

// validate validates the configuration
func (l *Loader) validate(config *Config) error {
	if len(config.Feeds) == 0 {
		return fmt.Errorf("at least one feed is required")
	}

	for i, feed := range config.Feeds {
		if feed.URL == "" {
			return fmt.Errorf("feed URL is required at index %d", i)
		}
		if feed.Timeout < 0 {
			return fmt.Errorf("timeout must be non-negative at index %d", i)
		}
	}

	return nil
}
