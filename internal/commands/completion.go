package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bingo/internal/core/leaderboard"
)

// BoardFileCompleter returns a ShellCompleteFunc that suggests board files
// below boards_dir as positional completions. Set this as the ShellComplete
// field on any cli.Command that accepts a board file argument.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func BoardFileCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		w := cmd.Root().Writer
		for _, f := range boardFiles(flags) {
			_, _ = fmt.Fprintln(w, f)
		}
	}
}

// boardFiles lists the board files below boards_dir that parse.
func boardFiles(flags *Flags) []string {
	dir := flags.config().BoardsDir
	files, err := leaderboard.Discover([]string{filepath.Join(dir, leaderboard.DefaultPattern)})
	if err != nil {
		return nil
	}

	valid := make([]string, 0, len(files))
	for _, f := range files {
		if len(leaderboard.LoadAll(zerolog.Nop(), []string{f})) == 1 {
			valid = append(valid, f)
		}
	}
	return valid
}
