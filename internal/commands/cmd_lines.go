package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bingo/internal/core/bingo"
	"github.com/colonyops/bingo/internal/core/styles"
	"github.com/colonyops/bingo/pkg/iojson"
)

type LinesCmd struct {
	flags *Flags
	input boardInput

	// flags
	jsonOutput bool
}

// NewLinesCmd creates a new lines command
func NewLinesCmd(flags *Flags) *LinesCmd {
	return &LinesCmd{flags: flags}
}

// Register adds the lines command to the application
func (cmd *LinesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "lines",
		Usage:     "List the completed lines of a board",
		UsageText: "bingo lines [-f board.json] [--json]",
		Description: `Evaluates a board snapshot and prints every completed line in canonical
order (rows, columns, diagonal, anti-diagonal) together with the set of
positions to highlight.

The board is read from --file, the first argument, or JSON on stdin.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		ShellComplete: BoardFileCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

// linesResult is the JSON output of bingo lines.
type linesResult struct {
	CompletedLines []bingo.Line `json:"completed_lines"`
	Highlighted    []int        `json:"highlighted_positions"`
	Count          int          `json:"completed_line_count"`
	Banner         string       `json:"banner,omitempty"`
}

func (cmd *LinesCmd) run(ctx context.Context, c *cli.Command) error {
	b, err := cmd.input.Read(c)
	if err != nil {
		return err
	}

	ev := b.Evaluate()
	log.Debug().Str("source", cmd.input.Source()).Int("lines", ev.Count).Msg("board evaluated")

	out := c.Root().Writer

	if cmd.flags.jsonOutput(cmd.jsonOutput) {
		return iojson.WriteWith(out, c.Root().ErrWriter, linesResult{
			CompletedLines: ev.Lines,
			Highlighted:    ev.Highlight.Sorted(),
			Count:          ev.Count,
			Banner:         ev.Banner,
		})
	}

	if ev.Count == 0 {
		_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.MutedStyle.Render("No completed lines")))
		return nil
	}

	for _, l := range ev.Lines {
		_, _ = fmt.Fprintf(out, "%-13s %s\n", l.Name(), joinPositions(l[:]))
	}
	_, _ = fmt.Fprintf(out, "%-13s %s\n", "highlight", joinPositions(ev.Highlight.Sorted()))
	_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.BannerStyle.Render(ev.Banner)))
	return nil
}

func joinPositions(ps []int) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, " ")
}
