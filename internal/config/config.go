package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up when --config is not given.
const FileName = "tablebill.yaml"

// Config represents the top-level tablebill.yaml configuration.
type Config struct {
	Restaurant RestaurantConfig `yaml:"restaurant" toml:"restaurant"`
	Menu       MenuConfig       `yaml:"menu" toml:"menu"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// RestaurantConfig identifies the restaurant printed on the bill header.
type RestaurantConfig struct {
	Name string `yaml:"name" toml:"name"`
}

// MenuConfig points at an optional menu CSV replacing the built-in menu.
type MenuConfig struct {
	Path string `yaml:"path,omitempty" toml:"path,omitempty"` // relative to the config file
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // logrus level name
	Format string `yaml:"format" toml:"format"` // "text" or "json"
}

// Load reads a config file from disk. Files ending in .toml are decoded as
// TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to disk in the format implied by its extension.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new restaurant.
func Default(restaurantName string) *Config {
	return &Config{
		Restaurant: RestaurantConfig{
			Name: restaurantName,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// MenuPath resolves the configured menu path against the directory holding
// the config file. It returns "" when no menu file is configured.
func (c *Config) MenuPath(configPath string) string {
	if c.Menu.Path == "" {
		return ""
	}
	if filepath.IsAbs(c.Menu.Path) {
		return c.Menu.Path
	}
	return filepath.Join(filepath.Dir(configPath), c.Menu.Path)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
