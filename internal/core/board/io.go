package board

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/bingo/pkg/iojson"
)

// Format is a snapshot file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from a file extension. Unknown extensions
// are treated as JSON.
func FormatFor(path string) Format {
	if iojson.IsYAML(path) {
		return FormatYAML
	}
	return FormatJSON
}

// Decode reads a snapshot in the given format.
func Decode(r io.Reader, format Format) (*Board, error) {
	var (
		b   Board
		err error
	)
	if format == FormatYAML {
		b, err = iojson.DecodeYAML[Board](r)
	} else {
		b, err = iojson.DecodeJSON[Board](r)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Load reads a snapshot from path, choosing the format by extension.
func Load(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board: %w", err)
	}
	defer func() { _ = f.Close() }()

	b, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Encode writes a snapshot in the given format.
func Encode(w io.Writer, b *Board, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	}
}

// Save writes b to path, creating parent directories as needed. The file is
// written to a temporary sibling first and renamed into place.
func Save(path string, b *Board) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create board dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".board-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Encode(tmp, b, FormatFor(path)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename board file: %w", err)
	}
	return nil
}
