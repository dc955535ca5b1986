package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bingo/internal/core/board"
	"github.com/colonyops/bingo/internal/core/logging"
	"github.com/colonyops/bingo/internal/tui"
	"github.com/colonyops/bingo/pkg/logutils"
)

type PlayCmd struct {
	flags *Flags
}

// NewPlayCmd creates a new play command
func NewPlayCmd(flags *Flags) *PlayCmd {
	return &PlayCmd{flags: flags}
}

// Register adds the play command to the application
func (cmd *PlayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "play",
		Usage:     "Play a board interactively",
		UsageText: "bingo play <board-file>",
		Description: `Opens the board in an interactive grid. Move with the arrow keys or hjkl,
mark the focused restaurant visited with space or enter, write the board back
with w and quit with q. Completed lines light up as they form and the board is
marked complete once it reaches its target.

Keys can be rebound in the config file under keybindings.`,
		ShellComplete: BoardFileCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *PlayCmd) run(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("board file is required")
	}

	b, err := board.Load(path)
	if err != nil {
		return err
	}

	// The grid owns the terminal; keep logs off stderr.
	if cmd.flags.LogFile == "" {
		logger, closer, err := logutils.New(cmd.flags.LogLevel, DefaultLogFile())
		if err != nil {
			return fmt.Errorf("setup logger: %w", err)
		}
		defer closer()
		log.Logger = logger
	}

	ctx = logging.WithCommand(ctx, "play")
	model := tui.New(ctx, b, path, cmd.flags.config())

	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run board: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Dirty() {
		log.Warn().Str("path", path).Msg("quit with unsaved changes")
	}
	return nil
}
