package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/bingo/internal/core/bingo"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, bingo.TargetOne, cfg.TargetLineCount)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, 10, cfg.Leaderboard.Limit)
	assert.Equal(t, []string{"w"}, cfg.Keys(ActionSave))
	assert.Equal(t, []string{"q", "ctrl+c"}, cfg.Keys(ActionQuit))
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Symbols, cfg.Symbols)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
target_line_count: 3
output: json
leaderboard:
  limit: 5
symbols:
  activated: "x"
keybindings:
  save: ["s"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, bingo.TargetThree, cfg.TargetLineCount)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, 5, cfg.Leaderboard.Limit)
	assert.Equal(t, "x", cfg.Symbols.Activated)
	assert.Equal(t, "○", cfg.Symbols.Pending, "unset symbol keeps default")
	assert.Equal(t, []string{"s"}, cfg.Keys(ActionSave), "user binding overrides default")
	assert.Equal(t, []string{"up", "k"}, cfg.Keys(ActionUp), "other defaults kept")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad yaml", "theme: [", "parse config file"},
		{"unknown theme", "theme: neon", "unknown theme"},
		{"bad target", "target_line_count: 2", "target_line_count"},
		{"bad output", "output: xml", "output must be"},
		{"negative limit", "leaderboard:\n  limit: -1", "leaderboard.limit"},
		{"unknown action", "keybindings:\n  fly: [f]", "unknown action"},
		{"empty keys", "keybindings:\n  save: []", "at least one key"},
		{"conflicting keys", "keybindings:\n  save: [q]", "already bound"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeKeybindings(t *testing.T) {
	defaults := map[string][]string{"a": {"1"}, "b": {"2"}}
	user := map[string][]string{"b": {"3"}}

	got := mergeKeybindings(defaults, user)
	assert.Equal(t, map[string][]string{"a": {"1"}, "b": {"3"}}, got)
	assert.Equal(t, []string{"2"}, defaults["b"], "defaults not mutated")
}
