package leaderboard

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/bingo/internal/core/board"
)

// DefaultPattern matches every JSON and YAML snapshot below a directory.
const DefaultPattern = "**/*.{json,yaml,yml}"

// Discover expands glob patterns (doublestar syntax, e.g. "boards/**/*.json")
// into a sorted, de-duplicated list of files.
func Discover(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			seen[m] = struct{}{}
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// LoadAll reads every file as a board snapshot. Files that fail to parse are
// logged and skipped so one bad snapshot does not hide the rest.
func LoadAll(logger zerolog.Logger, files []string) []*board.Board {
	boards := make([]*board.Board, 0, len(files))
	for _, f := range files {
		b, err := board.Load(f)
		if err != nil {
			logger.Warn().Err(err).Str("file", f).Msg("skipping unreadable board")
			continue
		}
		boards = append(boards, b)
	}
	logger.Debug().Int("files", len(files)).Int("boards", len(boards)).Msg("boards loaded")
	return boards
}
