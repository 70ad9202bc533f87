// Package config handles loading and saving user configuration for kotoba.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomozane/kotoba/internal/sentence"
	"gopkg.in/yaml.v3"
)

// Config holds all user configuration for kotoba.
type Config struct {
	// Database is the path of the vocabulary SQLite file.
	Database string `yaml:"database"`
	// LookupBaseURL is where rendered kanji link to.
	LookupBaseURL string `yaml:"lookup_base_url"`
	// LinkKanji controls whether rendered kanji without furigana
	// become lookup links.
	LinkKanji bool `yaml:"link_kanji"`
}

// Default returns the configuration used when no file exists, with
// everything rooted in dir.
func Default(dir string) *Config {
	return &Config{
		Database:      filepath.Join(dir, "vocab.db"),
		LookupBaseURL: sentence.DefaultLookupBaseURL,
		LinkKanji:     true,
	}
}

// Load reads config.yaml from dir, falling back to defaults for any
// field left empty. A missing file yields the full default config.
func Load(dir string) (*Config, error) {
	cfg := Default(dir)

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Database == "" {
		cfg.Database = Default(dir).Database
	}
	if cfg.LookupBaseURL == "" {
		cfg.LookupBaseURL = sentence.DefaultLookupBaseURL
	}
	return cfg, nil
}

// Save writes the configuration to config.yaml in dir.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "kotoba"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
