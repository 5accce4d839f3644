package iojson

import (
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// LinesReader reads newline-delimited JSON from a file flag or stdin.
type LinesReader[T any] struct {
	fileFlagValue string
}

func (lr *LinesReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path or glob (e.g. logs/**/*.jsonl) of JSON lines files (reads from stdin if not provided)",
		Destination: &lr.fileFlagValue,
	}
}

// Read returns every value in the input. A file flag holding a glob reads
// each match in lexical order. With no file flag and an interactive stdin,
// Read returns no values rather than blocking.
func (lr *LinesReader[T]) Read() ([]T, error) {
	if lr.fileFlagValue == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil
		}
		return ReadLines[T](os.Stdin)
	}

	return ReadGlob[T](lr.fileFlagValue)
}

// ReadGlob reads every file matching pattern, a doublestar glob, in lexical
// order. A pattern without matches is opened as a plain path.
func ReadGlob[T any](pattern string) ([]T, error) {
	paths, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		paths = []string{pattern}
	}
	slices.Sort(paths)

	var out []T
	for _, p := range paths {
		vals, err := readFile[T](p)
		if err != nil {
			return nil, err
		}
		out = append(out, vals...)
	}

	return out, nil
}

func readFile[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	vals, err := ReadLines[T](f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vals, nil
}
