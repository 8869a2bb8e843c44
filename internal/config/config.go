// Package config loads lister settings.
//
// Resolution order, later wins:
//  1. built-in defaults
//  2. ~/.lister/config.yaml (or the file named by LISTER_CONFIG)
//  3. a .env file in the working directory
//  4. LISTER_DB, LISTER_ADDR, LISTER_LOG_LEVEL, LISTER_LOG_FORMAT
//
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvConfig    = "LISTER_CONFIG"
	EnvDBPath    = "LISTER_DB"
	EnvAddr      = "LISTER_ADDR"
	EnvLogLevel  = "LISTER_LOG_LEVEL"
	EnvLogFormat = "LISTER_LOG_FORMAT"
)

// DefaultAddr is where `lister serve` listens unless configured.
const DefaultAddr = "127.0.0.1:8080"

// Config represents the lister configuration
type Config struct {
	DBPath    string `yaml:"db_path"`
	Addr      string `yaml:"addr"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Dir returns ~/.lister.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".lister"), nil
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DBPath:    filepath.Join(dir, "lister.db"),
		Addr:      DefaultAddr,
		LogLevel:  "info",
		LogFormat: "console",
	}, nil
}

// Path returns the config file location.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load resolves the configuration. A missing config file or .env is not an error.
func Load() (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	path, err := Path()
	if err != nil {
		return nil, err
	}
	if err := LoadFile(path, cfg); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	applyEnv(cfg)

	return cfg, nil
}

// LoadFile overlays the YAML file at path onto cfg. Missing files are ignored.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// SaveConfig writes cfg as YAML to path, creating the directory.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
}
