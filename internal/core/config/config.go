// Package config handles configuration loading and validation for bingo.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/bingo/internal/core/bingo"
	"github.com/colonyops/bingo/internal/core/styles"
)

// Output formats for commands that print results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Built-in action names for board keybindings.
const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionLeft   = "left"
	ActionRight  = "right"
	ActionToggle = "toggle"
	ActionSave   = "save"
	ActionQuit   = "quit"
)

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string][]string{
	ActionUp:     {"up", "k"},
	ActionDown:   {"down", "j"},
	ActionLeft:   {"left", "h"},
	ActionRight:  {"right", "l"},
	ActionToggle: {"space", " ", "enter"},
	ActionSave:   {"w"},
	ActionQuit:   {"q", "ctrl+c"},
}

// Config holds the application configuration.
type Config struct {
	Theme           string              `yaml:"theme"`
	TargetLineCount bingo.Target        `yaml:"target_line_count"`
	Output          string              `yaml:"output"`
	BoardsDir       string              `yaml:"boards_dir"`
	Leaderboard     LeaderboardConfig   `yaml:"leaderboard"`
	Symbols         Symbols             `yaml:"symbols"`
	Keybindings     map[string][]string `yaml:"keybindings"`
}

// LeaderboardConfig configures the leaderboard command.
type LeaderboardConfig struct {
	Limit int `yaml:"limit"`
}

// Symbols are the glyphs drawn in board cells.
type Symbols struct {
	Activated string `yaml:"activated"`
	Pending   string `yaml:"pending"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:           styles.DefaultTheme,
		TargetLineCount: bingo.TargetOne,
		Output:          OutputText,
		BoardsDir:       ".",
		Leaderboard:     LeaderboardConfig{Limit: 10},
		Symbols:         Symbols{Activated: "●", Pending: "○"},
		Keybindings:     mergeKeybindings(defaultKeybindings, nil),
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.TargetLineCount == 0 {
		c.TargetLineCount = defaults.TargetLineCount
	}
	if c.Output == "" {
		c.Output = defaults.Output
	}
	if c.BoardsDir == "" {
		c.BoardsDir = defaults.BoardsDir
	}
	if c.Leaderboard.Limit == 0 {
		c.Leaderboard.Limit = defaults.Leaderboard.Limit
	}
	if c.Symbols.Activated == "" {
		c.Symbols.Activated = defaults.Symbols.Activated
	}
	if c.Symbols.Pending == "" {
		c.Symbols.Pending = defaults.Symbols.Pending
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings replace the default keys for the same action.
func mergeKeybindings(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = v
	}

	for k, v := range user {
		result[k] = v
	}

	return result
}

// Keys returns the keys bound to action.
func (c *Config) Keys(action string) []string {
	return c.Keybindings[action]
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if !c.TargetLineCount.Valid() {
		return fmt.Errorf("target_line_count must be 1, 3 or 5, got %d", int(c.TargetLineCount))
	}

	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}

	if c.Leaderboard.Limit < 1 {
		return fmt.Errorf("leaderboard.limit must be at least 1")
	}

	for action, keys := range c.Keybindings {
		if !isValidAction(action) {
			return fmt.Errorf("keybinding for unknown action %q", action)
		}
		if len(keys) == 0 {
			return fmt.Errorf("keybinding %q must have at least one key", action)
		}
	}

	return c.validateKeyConflicts()
}

func isValidAction(action string) bool {
	_, ok := defaultKeybindings[action]
	return ok
}

func sortedActions(m map[string][]string) []string {
	actions := make([]string, 0, len(m))
	for a := range m {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	return actions
}
