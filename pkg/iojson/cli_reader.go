package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// FileReader decodes a T from the file named by its --file flag, or from
// stdin when the flag is unset. Files ending in .yaml or .yml are decoded as
// YAML; everything else, including stdin, as JSON.
type FileReader[T any] struct {
	fileFlagValue string

	// Stdin is read when no file is given. Defaults to os.Stdin.
	Stdin *os.File
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to a JSON or YAML board file (reads JSON from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// Path returns the file flag value, empty when reading stdin.
func (fr *FileReader[T]) Path() string {
	return fr.fileFlagValue
}

// SetPath sets the file to read, bypassing flag parsing.
func (fr *FileReader[T]) SetPath(path string) {
	fr.fileFlagValue = path
}

func (fr *FileReader[T]) Read() (T, error) {
	var input T

	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if IsYAML(fr.fileFlagValue) {
			return DecodeYAML[T](f)
		}
		return DecodeJSON[T](f)
	}

	stdin := fr.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	if term.IsTerminal(int(stdin.Fd())) {
		return input, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
	}
	return DecodeJSON[T](stdin)
}

// IsYAML reports whether path has a .yaml or .yml extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// DecodeJSON decodes a single JSON document from r.
func DecodeJSON[T any](r io.Reader) (T, error) {
	var input T
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}
	return input, nil
}

// DecodeYAML decodes a single YAML document from r.
func DecodeYAML[T any](r io.Reader) (T, error) {
	var input T
	if err := yaml.NewDecoder(r).Decode(&input); err != nil {
		return input, fmt.Errorf("decode YAML: %w", err)
	}
	return input, nil
}
