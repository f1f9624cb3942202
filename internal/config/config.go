package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// Theme is the catppuccin flavour to use (mocha, macchiato, frappe, latte)
	Theme string `yaml:"theme"`

	// Highlight is the catppuccin color name used for the selected application's name
	Highlight string `yaml:"highlight"`

	// Verbose is the initial detail level (0: name, 1: +exec, 2: +run count and score)
	Verbose int `yaml:"verbose"`

	// Terminal is the emulator used for Terminal=true applications, invoked as "<terminal> -e ..."
	Terminal string `yaml:"terminal"`

	// AppDirs are scanned for .desktop files before the XDG defaults
	AppDirs []string `yaml:"app_dirs"`

	// RunCounts maps application names to launch counts shown at the highest verbosity.
	// Read only, the launcher never writes it back.
	RunCounts map[string]int `yaml:"run_counts"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:     "mocha",
		Highlight: "mauve",
		Verbose:   0,
		Terminal:  "xterm",
	}
}

// Load reads the config from a YAML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // config path from known locations
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, fmt.Errorf("read config %q: %w", cleanPath, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", cleanPath, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize repairs values a hand-edited file may leave invalid
func (c *Config) normalize() {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = "mocha"
	}
	c.Highlight = strings.ToLower(strings.TrimSpace(c.Highlight))
	if c.Highlight == "" {
		c.Highlight = "mauve"
	}
	if c.Verbose < 0 {
		c.Verbose = 0
	}
	if strings.TrimSpace(c.Terminal) == "" {
		c.Terminal = "xterm"
	}
}

// DefaultPaths returns the candidate config locations in lookup order
func DefaultPaths() []string {
	var paths []string
	if explicit := os.Getenv("APPLAUNCH_CONFIG"); explicit != "" {
		paths = append(paths, explicit)
	}
	paths = append(paths, "config.yaml")
	for _, dir := range append([]string{xdg.ConfigHome}, xdg.ConfigDirs...) {
		paths = append(paths, filepath.Join(dir, "applaunch", "config.yaml"))
	}
	return paths
}

// LoadFromDefaultPath attempts to load config from standard locations.
// The returned path is empty when no file was found and defaults are in use.
func LoadFromDefaultPath() (*Config, string, error) {
	for _, path := range DefaultPaths() {
		cleanPath := filepath.Clean(path)
		if _, err := os.Stat(cleanPath); err == nil { //nolint:gosec // config path from known locations
			cfg, err := Load(cleanPath)
			return cfg, cleanPath, err
		}
	}

	return DefaultConfig(), "", nil
}

// global config instance
var globalConfig *Config

// Global returns the global config instance, loading it if necessary
func Global() *Config {
	if globalConfig == nil {
		cfg, _, err := LoadFromDefaultPath()
		if err != nil {
			cfg = DefaultConfig()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal sets the global config instance (useful for testing)
func SetGlobal(cfg *Config) {
	globalConfig = cfg
}
