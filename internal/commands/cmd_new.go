package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/bingo/internal/core/bingo"
	"github.com/colonyops/bingo/internal/core/board"
	"github.com/colonyops/bingo/internal/core/logging"
	"github.com/colonyops/bingo/internal/core/styles"
	"github.com/colonyops/bingo/internal/core/validate"
	"github.com/colonyops/bingo/pkg/iojson"
)

type NewCmd struct {
	flags *Flags

	// Command-specific flags
	title       string
	target      int
	user        string
	restaurants []string
	out         string
	force       bool
	jsonOutput  bool

	// interactive reports whether the form may be shown. Replaced in tests.
	interactive func() bool
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags) *NewCmd {
	return &NewCmd{
		flags: flags,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Create a new board",
		UsageText: "bingo new [options]",
		Description: `Creates an empty 5x5 board with a fresh ID and writes it to --out
(default <boards_dir>/<id>.json). Restaurants given with --restaurant fill the
cells in order.

When --title is omitted and stdin is a terminal, an interactive form prompts
for the title, target and player.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "board title",
				Destination: &cmd.title,
			},
			&cli.IntFlag{
				Name:        "target",
				Usage:       "lines needed to finish the board (1, 3 or 5; defaults to config target_line_count)",
				Destination: &cmd.target,
			},
			&cli.StringFlag{
				Name:        "user",
				Aliases:     []string{"u"},
				Usage:       "player name shown on the leaderboard",
				Sources:     cli.EnvVars("BINGO_USER"),
				Destination: &cmd.user,
			},
			&cli.StringSliceFlag{
				Name:        "restaurant",
				Aliases:     []string{"r"},
				Usage:       "restaurant name for the next cell (repeatable)",
				Destination: &cmd.restaurants,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output file (.json, .yaml or .yml)",
				Destination: &cmd.out,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing file",
				Destination: &cmd.force,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the created board as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.config()
	if cmd.target == 0 {
		cmd.target = int(cfg.TargetLineCount)
	}

	if cmd.title == "" {
		if !cmd.interactive() {
			return fmt.Errorf("--title is required when stdin is not a terminal")
		}
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	if len(cmd.restaurants) > bingo.CellCount {
		return fmt.Errorf("at most %d restaurants fit on a board, got %d", bingo.CellCount, len(cmd.restaurants))
	}
	restaurants := make([]board.Restaurant, 0, len(cmd.restaurants))
	for i, name := range cmd.restaurants {
		restaurants = append(restaurants, board.Restaurant{ID: int64(i + 1), Name: strings.TrimSpace(name)})
	}

	b := board.New(strings.TrimSpace(cmd.title), bingo.Target(cmd.target), restaurants)
	b.User = cmd.user

	path := cmd.out
	if path == "" {
		path = filepath.Join(cfg.BoardsDir, b.ID+".json")
	}
	if !cmd.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := board.Save(path, b); err != nil {
		return err
	}

	logger := logging.ComponentCtx(logging.WithBoardID(ctx, b.ID), "new")
	logger.Info().Str("path", path).Int("target", cmd.target).Msg("board created")

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, b)
	}

	_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.SuccessStyle.Render("✓ Board created")))
	_, _ = fmt.Fprintf(out, "  id:     %s\n  target: %s\n  file:   %s\n", b.ID, b.Target(), path)
	return nil
}

func (cmd *NewCmd) validate() error {
	return criterio.ValidateStruct(
		validate.TitleField("title", cmd.title),
		criterio.Run("target", cmd.target, func(n int) error {
			if !bingo.Target(n).Valid() {
				return fmt.Errorf("target must be one of 1, 3 or 5, got %d", n)
			}
			return nil
		}),
		criterio.Run("user", cmd.user, validate.Username),
	)
}

func (cmd *NewCmd) runForm() error {
	targets := bingo.Targets()
	options := make([]huh.Option[int], 0, len(targets))
	for _, t := range targets {
		options = append(options, huh.NewOption(t.String(), int(t)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Board title").
				Description("Shown above the grid and on the leaderboard").
				Validate(validate.Title).
				Value(&cmd.title),
			huh.NewSelect[int]().
				Title("Target").
				Description("Completed lines needed to finish the board").
				Options(options...).
				Value(&cmd.target),
			huh.NewInput().
				Title("Player").
				Description("Optional name for the leaderboard").
				Validate(validate.Username).
				Value(&cmd.user),
		),
	).WithTheme(styles.FormTheme()).Run()
}
