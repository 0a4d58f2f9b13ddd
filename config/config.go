package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config carries the host-side settings for running the marketplace
// engines: where the database lives, the rating bound and which modules
// start administratively paused.
type Config struct {
	DataDir       string   `toml:"DataDir"`
	MaxRating     uint8    `toml:"MaxRating"`
	PausedModules []string `toml:"PausedModules"`
}

const defaultDataDir = "./marketcore-data"

// DefaultMaxRating mirrors the engine default; kept here so a generated
// config file is explicit about the bound in force.
const DefaultMaxRating uint8 = 5

// Load loads the configuration from the given path, creating a default
// file when none exists yet.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func createDefault(path string) (*Config, error) {
	cfg := &Config{
		DataDir:       defaultDataDir,
		MaxRating:     DefaultMaxRating,
		PausedModules: []string{},
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = defaultDataDir
	}
	if c.MaxRating == 0 {
		c.MaxRating = DefaultMaxRating
	}
	if c.PausedModules == nil {
		c.PausedModules = []string{}
	}
}

// Validate rejects configurations the engines cannot honour.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("config: DataDir required")
	}
	if c.MaxRating < 1 {
		return fmt.Errorf("config: MaxRating must be at least 1")
	}
	for _, module := range c.PausedModules {
		if strings.TrimSpace(module) == "" {
			return fmt.Errorf("config: empty module name in PausedModules")
		}
	}
	return nil
}

// PauseSet is the PauseView the engines consult before mutating state.
type PauseSet map[string]bool

// IsPaused reports whether the named module is frozen.
func (p PauseSet) IsPaused(module string) bool {
	return p[module]
}

// Pauses builds the pause view from the configured module list.
func (c *Config) Pauses() PauseSet {
	set := make(PauseSet, len(c.PausedModules))
	for _, module := range c.PausedModules {
		set[strings.TrimSpace(module)] = true
	}
	return set
}
