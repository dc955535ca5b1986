package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/bingo/internal/core/config"
)

// keyMap holds the board bindings resolved from config.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func newKeyMap(cfg *config.Config) keyMap {
	bind := func(action, help string) key.Binding {
		keys := cfg.Keys(action)
		label := action
		if len(keys) > 0 {
			label = keys[0]
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, help))
	}

	return keyMap{
		Up:     bind(config.ActionUp, "up"),
		Down:   bind(config.ActionDown, "down"),
		Left:   bind(config.ActionLeft, "left"),
		Right:  bind(config.ActionRight, "right"),
		Toggle: bind(config.ActionToggle, "visit"),
		Save:   bind(config.ActionSave, "save"),
		Quit:   bind(config.ActionQuit, "quit"),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Save, k.Quit},
	}
}
