package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bingo/internal/core/board"
	"github.com/colonyops/bingo/internal/core/config"
	"github.com/colonyops/bingo/internal/core/styles"
	"github.com/colonyops/bingo/pkg/iojson"
)

type CheckCmd struct {
	flags *Flags
	input boardInput

	// flags
	format string
}

// NewCheckCmd creates a new check command
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Lint a board snapshot",
		UsageText: "bingo check [-f board.json] [--format text|json]",
		Description: `Reports problems that evaluation silently tolerates: positions outside the
board, duplicate positions, cells without a position, reviews for restaurants
that are not on the board, and malformed reviews.

Exits 1 when problems are found.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Destination: &cmd.format,
			},
		},
		ShellComplete: BoardFileCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

// checkResult is the JSON output of bingo check.
type checkResult struct {
	Valid      bool             `json:"valid"`
	Issues     []issue          `json:"issues,omitempty"`
	Evaluation board.Evaluation `json:"evaluation"`
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	b, err := cmd.input.Read(c)
	if err != nil {
		return err
	}

	lintErr := b.Lint()
	issues := issuesOf(lintErr)
	log.Debug().Str("source", cmd.input.Source()).Int("issues", len(issues)).Msg("board checked")

	format := cmd.format
	if format == "" {
		format = cmd.flags.config().Output
	}

	out := c.Root().Writer
	switch format {
	case config.OutputJSON:
		err := iojson.WriteWith(out, c.Root().ErrWriter, checkResult{
			Valid:      lintErr == nil,
			Issues:     issues,
			Evaluation: b.Evaluate(),
		})
		if err != nil {
			return err
		}
	case config.OutputText:
		cmd.outputText(out, issues)
	default:
		return fmt.Errorf("unknown format %q (text, json)", format)
	}

	if lintErr != nil {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *CheckCmd) outputText(out io.Writer, issues []issue) {
	if len(issues) == 0 {
		_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.SuccessStyle.Render("✓ "+cmd.input.Source()+" is valid")))
		return
	}

	for _, is := range issues {
		_, _ = fmt.Fprintf(out, "%s %s\n",
			cmd.flags.styled(out, styles.ErrorStyle.Render("✗ "+is.Field+":")),
			is.Message,
		)
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.ErrorStyle.Render(fmt.Sprintf("%d problem(s) found", len(issues)))))
}
