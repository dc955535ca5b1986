package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.BoardsDir = t.TempDir()
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, nil)
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(""))
	assert.Empty(t, cfg.Warnings())
}

func TestValidateDeep_BoardsDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(cfg.BoardsDir, "board.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))
	cfg.BoardsDir = file

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "boards_dir", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "not a directory")
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateDeep_WideSymbol(t *testing.T) {
	cfg := validConfig(t)
	cfg.Symbols.Activated = "ok"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "symbols.activated", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "2 columns")
}

func TestValidateDeep_StructuralErrorFirst(t *testing.T) {
	cfg := validConfig(t)
	cfg.Output = "yaml"

	err := cfg.ValidateDeep("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output must be")
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	cfg.Symbols.Pending = cfg.Symbols.Activated
	cfg.BoardsDir = filepath.Join(cfg.BoardsDir, "not-yet")

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "Symbols", warnings[0].Category)
	assert.Equal(t, "Leaderboard", warnings[1].Category)
}
