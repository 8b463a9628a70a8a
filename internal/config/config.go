package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

//go:embed default/config.toml
var defaultConfig []byte

type Config struct {
	Keys  KeyMappings[Keys] `toml:"keys"`
	UI    UIConfig          `toml:"ui"`
	Lists []ListConfig      `toml:"lists"`
}

type UIConfig struct {
	ColumnGap  int  `toml:"column_gap"`
	ShowStatus bool `toml:"show_status"`
}

// ListConfig describes one reorderable list on the board.
type ListConfig struct {
	Name  string `toml:"name"`
	Title string `toml:"title"`
	// Group makes lists accept each other's items. Empty means the list only
	// reorders its own items.
	Group string `toml:"group"`
	// Handle restricts drags to the grip column.
	Handle bool `toml:"handle"`
	// Enabled defaults to true when omitted.
	Enabled *bool    `toml:"enabled"`
	Items   []string `toml:"items"`
}

func (l ListConfig) IsEnabled() bool {
	return l.Enabled == nil || *l.Enabled
}

func (l ListConfig) DisplayTitle() string {
	if l.Title != "" {
		return l.Title
	}
	return l.Name
}

var ErrNoLists = errors.New("config: at least one list is required")

func mustDefault() *Config {
	c, err := parse(defaultConfig, nil)
	if err != nil {
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return c
}

// parse decodes data on top of base. A nil base starts from scratch. Lists
// given in data replace the base lists entirely.
func parse(data []byte, base *Config) (*Config, error) {
	c := &Config{}
	if base != nil {
		*c = *base
		c.Lists = nil
	}
	meta, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if !meta.IsDefined("lists") && base != nil {
		c.Lists = base.Lists
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if len(c.Lists) == 0 {
		return ErrNoLists
	}
	seen := make(map[string]bool, len(c.Lists))
	for i, l := range c.Lists {
		if l.Name == "" {
			return fmt.Errorf("config: list #%d has no name", i+1)
		}
		if seen[l.Name] {
			return fmt.Errorf("config: duplicate list name %q", l.Name)
		}
		seen[l.Name] = true
	}
	if c.UI.ColumnGap < 0 {
		return fmt.Errorf("config: column_gap must not be negative, got %d", c.UI.ColumnGap)
	}
	return nil
}

// Parse decodes a user configuration on top of the embedded default.
func Parse(data []byte) (*Config, error) {
	return parse(data, mustDefault())
}

// Load reads the file at path on top of the embedded default. An empty path
// returns the default. A leading ~ expands to the user's home directory.
func Load(path string) (*Config, error) {
	if path == "" {
		return mustDefault(), nil
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}
