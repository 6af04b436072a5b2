// Package config loads wordstat settings from a YAML file.
//
// Settings are resolved in three layers: built-in defaults, then the first
// config file found, then command-line flags (applied by the caller).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project-local config file name.
const FileName = ".wordstat.yaml"

// Config represents the application configuration
type Config struct {
	// Format is the report format: text, json, or yaml
	Format string `yaml:"format"`
	// NoColor disables colored labels in text output
	NoColor bool `yaml:"no_color"`
	// Quiet suppresses the progress spinner and notices
	Quiet bool `yaml:"quiet"`
	// TopWords lists this many of the most frequent words; 0 disables the list
	TopWords int `yaml:"top_words"`
	// Counts names supplementary counters: words, characters, tokens, sentences
	Counts []string `yaml:"counts"`
	// Stem adds the most frequent word stem to the report
	Stem bool `yaml:"stem"`
}

// validFormats are the report formats the presenter understands
var validFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:   "text",
		NoColor:  false,
		Quiet:    false,
		TopWords: 0,
		Counts:   []string{},
		Stem:     false,
	}
}

// LoadConfig reads the YAML file at configPath over the defaults.
// An empty configPath returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	config.Format = strings.ToLower(strings.TrimSpace(config.Format))
	if config.Format == "" {
		config.Format = "text"
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Debug("Config loaded", "path", cleanPath)
	return config, nil
}

// ValidateConfig checks values a YAML file could get wrong.
func ValidateConfig(config *Config) error {
	if !validFormats[config.Format] {
		return fmt.Errorf("invalid format %q (want text, json, or yaml)", config.Format)
	}
	if config.TopWords < 0 {
		return fmt.Errorf("top_words must not be negative, got %d", config.TopWords)
	}
	return nil
}

// FindConfigFile looks for a config file in the working directory, then in
// the user config directory ($XDG_CONFIG_HOME/wordstat or ~/.config/wordstat).
// It returns "" when none exists.
func FindConfigFile() string {
	candidates := []string{FileName}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "wordstat", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "wordstat", "config.yaml"))
	}

	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// LoadConfigOrDefault loads configFile, or the discovered config file when
// configFile is empty. A missing or invalid file falls back to the defaults.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		slog.Debug("Falling back to default config", "path", configPath, "error", err)
		return Default()
	}
	return cfg
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
