package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/bingo/internal/render"
)

const defaultMarkdownWidth = 80

type ShowCmd struct {
	flags *Flags
	input boardInput

	// flags
	markdown bool
	raw      bool
	width    int
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Draw a board",
		UsageText: "bingo show [-f board.json] [--markdown [--raw]]",
		Description: `Draws the 5x5 grid with completed lines highlighted and the banner and
progress underneath.

--markdown prints a report instead: progress, completed lines, every cell and
the reviews. It is rendered for the terminal unless --raw is given or output
is not a terminal.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.BoolFlag{
				Name:        "markdown",
				Aliases:     []string{"m"},
				Usage:       "print a markdown report",
				Destination: &cmd.markdown,
			},
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "with --markdown, print the markdown source",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "cell-width",
				Usage:       "label width of each grid cell",
				Value:       render.DefaultCellWidth,
				Destination: &cmd.width,
			},
		},
		ShellComplete: BoardFileCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	b, err := cmd.input.Read(c)
	if err != nil {
		return err
	}

	ev := b.Evaluate()
	out := c.Root().Writer
	plain := cmd.flags.plain(out)

	if cmd.markdown {
		md := render.Markdown(b, ev)
		if cmd.raw || plain {
			_, err := fmt.Fprint(out, md)
			return err
		}

		rendered, err := render.RenderMarkdown(md, termWidth(out, defaultMarkdownWidth))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	}

	opts := render.DefaultOptions()
	opts.Symbols = cmd.flags.config().Symbols
	opts.CellWidth = cmd.width
	opts.Plain = plain

	_, err = fmt.Fprintln(out, render.Grid(b, ev, opts))
	return err
}
