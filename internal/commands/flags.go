package commands

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/colonyops/bingo/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	NoColor    bool

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// ConfigErr holds the load error when the config could not be loaded.
	// Only "config validate" runs with a broken config; it reports this.
	ConfigErr error
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "bingo", "config.yaml")
}

// DefaultLogFile returns the log file used while the interactive board owns
// the terminal.
// On macOS: ~/Library/Logs/bingo/bingo.log
// On Linux: $XDG_STATE_HOME/bingo/bingo.log (defaults to ~/.local/state/bingo/bingo.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "bingo", "bingo.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "bingo", "bingo.log")
	}

	return filepath.Join(home, ".local", "state", "bingo", "bingo.log")
}

// config returns the loaded config, or defaults when the Before hook did not
// run (commands registered on a bare root in tests).
func (f *Flags) config() *config.Config {
	if f.Config == nil {
		cfg := config.DefaultConfig()
		f.Config = &cfg
	}
	return f.Config
}

// plain reports whether output to w should carry no ANSI styling.
func (f *Flags) plain(w io.Writer) bool {
	if f.NoColor || os.Getenv("NO_COLOR") != "" {
		return true
	}
	file, ok := w.(*os.File)
	return !ok || !term.IsTerminal(int(file.Fd()))
}

// styled strips s when w should not receive styling.
func (f *Flags) styled(w io.Writer, s string) string {
	if f.plain(w) {
		return ansi.Strip(s)
	}
	return s
}

// jsonOutput resolves a per-command --json flag against the configured
// default output.
func (f *Flags) jsonOutput(flag bool) bool {
	return flag || f.config().Output == config.OutputJSON
}

// termWidth is the width of w when it is a terminal, otherwise fallback.
func termWidth(w io.Writer, fallback int) int {
	if file, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}
