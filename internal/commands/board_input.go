package commands

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/bingo/internal/core/board"
	"github.com/colonyops/bingo/pkg/iojson"
)

// boardInput reads a board snapshot from --file, a positional argument or
// stdin.
type boardInput struct {
	reader iojson.FileReader[board.Board]
}

func (in *boardInput) Flag() cli.Flag {
	return in.reader.Flag()
}

// Read loads the board. A positional argument takes the place of --file.
func (in *boardInput) Read(c *cli.Command) (*board.Board, error) {
	if in.reader.Path() == "" && c.Args().Len() > 0 {
		in.reader.SetPath(c.Args().First())
	}

	b, err := in.reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	return &b, nil
}

// Source names where the board came from, for messages.
func (in *boardInput) Source() string {
	if p := in.reader.Path(); p != "" {
		return p
	}
	return "stdin"
}
