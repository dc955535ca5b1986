package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including file accessibility and symbol widths. The configPath argument
// specifies the config file location to validate (empty string skips the
// config file check). This calls Validate() first for basic structural
// validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateSymbols(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Symbols.Activated == c.Symbols.Pending {
		warnings = append(warnings, ValidationWarning{
			Category: "Symbols",
			Message:  "activated and pending symbols are identical; only colour distinguishes cells",
		})
	}

	if _, err := os.Stat(c.BoardsDir); os.IsNotExist(err) {
		warnings = append(warnings, ValidationWarning{
			Category: "Leaderboard",
			Item:     c.BoardsDir,
			Message:  "boards_dir does not exist; leaderboard will find no boards",
		})
	}

	return warnings
}

// validateFileAccess checks the config file and boards directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("boards_dir", c.BoardsDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// validateSymbols checks that cell glyphs occupy exactly one terminal column.
func (c *Config) validateSymbols() error {
	var errs criterio.FieldErrorsBuilder
	for field, sym := range map[string]string{
		"symbols.activated": c.Symbols.Activated,
		"symbols.pending":   c.Symbols.Pending,
	} {
		if w := ansi.StringWidth(sym); w != 1 {
			errs = errs.Append(field, fmt.Errorf("%q is %d columns wide, want 1", sym, w))
		}
	}
	return errs.ToError()
}

// validateKeyConflicts rejects a key bound to more than one action.
func (c *Config) validateKeyConflicts() error {
	var errs criterio.FieldErrorsBuilder
	owner := make(map[string]string)
	for _, action := range sortedActions(c.Keybindings) {
		for _, k := range c.Keybindings[action] {
			if prev, ok := owner[k]; ok {
				errs = errs.Append(fmt.Sprintf("keybindings.%s", action), fmt.Errorf("key %q already bound to %q", k, prev))
				continue
			}
			owner[k] = action
		}
	}
	return errs.ToError()
}
