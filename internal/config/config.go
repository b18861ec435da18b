package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the effective tophelper configuration: builtin defaults overlaid
// with the user's YAML file, when one exists.
type Config struct {
	Activation Activation `yaml:"activation"`
}

// Activation configures how a resolved window is handed to the external
// window-activation tool.
type Activation struct {
	// Tool is the activation command; it is invoked as `<tool> switch <program>`.
	Tool string `yaml:"tool"`
	// Classes maps a window class (matched case-insensitively, exact) to the
	// program identifier passed to the tool.
	Classes map[string]string `yaml:"classes"`
	// TitleKeywords are consulted in order when no class entry matches; the
	// first keyword found in the window title (case-insensitively) wins.
	TitleKeywords []TitleKeyword `yaml:"title_keywords"`
}

type TitleKeyword struct {
	Keyword string `yaml:"keyword"`
	Program string `yaml:"program"`
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "tophelper", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file is
// not an error (defaults apply); a file that exists but does not parse is.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.merge(&overlay)
	return cfg, nil
}

// merge overlays user-set fields onto the defaults. Class entries are merged
// key by key; a non-empty title keyword list replaces the builtin one so users
// can control its order.
func (c *Config) merge(overlay *Config) {
	if overlay.Activation.Tool != "" {
		c.Activation.Tool = overlay.Activation.Tool
	}
	for class, program := range overlay.Activation.Classes {
		c.Activation.Classes[class] = program
	}
	if len(overlay.Activation.TitleKeywords) > 0 {
		c.Activation.TitleKeywords = overlay.Activation.TitleKeywords
	}
}
