package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bingo/internal/core/leaderboard"
	"github.com/colonyops/bingo/internal/core/logging"
	"github.com/colonyops/bingo/internal/core/styles"
	"github.com/colonyops/bingo/pkg/iojson"
)

type LeaderboardCmd struct {
	flags *Flags

	// flags
	limit      int
	jsonOutput bool
}

// NewLeaderboardCmd creates a new leaderboard command
func NewLeaderboardCmd(flags *Flags) *LeaderboardCmd {
	return &LeaderboardCmd{flags: flags}
}

// Register adds the leaderboard command to the application
func (cmd *LeaderboardCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "leaderboard",
		Aliases:   []string{"lb"},
		Usage:     "Rank completed boards",
		UsageText: "bingo leaderboard [glob...] [--limit n] [--json]",
		Description: `Collects board files matching the given globs (doublestar syntax, e.g.
"boards/**/*.json") and ranks players by fastest completion and by number of
completed boards.

Without arguments every JSON and YAML file below boards_dir is read. Files
that cannot be parsed are skipped.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "entries per ranking (defaults to config leaderboard.limit)",
				Destination: &cmd.limit,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LeaderboardCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.config()

	patterns := c.Args().Slice()
	if len(patterns) == 0 {
		patterns = []string{filepath.Join(cfg.BoardsDir, leaderboard.DefaultPattern)}
	}

	files, err := leaderboard.Discover(patterns)
	if err != nil {
		return err
	}

	limit := cmd.limit
	if limit <= 0 {
		limit = cfg.Leaderboard.Limit
	}

	boards := leaderboard.LoadAll(logging.Component("leaderboard"), files)
	lb := leaderboard.Build(boards, limit)
	log.Debug().Int("files", len(files)).Int("boards", len(boards)).Msg("leaderboard built")

	out := c.Root().Writer
	if cmd.flags.jsonOutput(cmd.jsonOutput) {
		return iojson.WriteWith(out, c.Root().ErrWriter, lb)
	}

	cmd.outputText(out, lb)
	return nil
}

func (cmd *LeaderboardCmd) outputText(out io.Writer, lb leaderboard.Leaderboard) {
	header := func(s string) {
		_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.HeaderStyle.Render(s)))
	}

	header("Fastest completions")
	if len(lb.FastestCompletions) == 0 {
		_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.MutedStyle.Render("  no completed boards")))
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "RANK\tPLAYER\tBOARD\tTIME\tCOMPLETED")
		for _, e := range lb.FastestCompletions {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				e.Rank, e.User, e.Title, e.CompletionTime, e.CompletedAt.Format("2006-01-02"))
		}
		_ = w.Flush()
	}

	_, _ = fmt.Fprintln(out)
	header("Most completions")
	if len(lb.MostCompletions) == 0 {
		_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.MutedStyle.Render("  no completed boards")))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "RANK\tPLAYER\tCOMPLETED")
	for _, e := range lb.MostCompletions {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\n", e.Rank, e.User, e.CompletedCount)
	}
	_ = w.Flush()
}
