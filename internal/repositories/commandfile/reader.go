package commandfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/hiring/internal/core/ports"
)

// ErrEmptyPath is returned when no command file path is given.
var ErrEmptyPath = errors.New("command file path cannot be empty")

// ErrInputNotFound indicates that the command file does not exist.
var ErrInputNotFound = errors.New("command file not found")

/*
CommandFile reads hiring commands from a text file on disk.
It implements the ports.LineSource interface.
*/
type CommandFile struct {
	path string
}

// NewCommandFile creates a line source for the file at path.
func NewCommandFile(path string) (ports.LineSource, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &CommandFile{path: path}, nil
}

// ReadLines returns every line of the file with its "\n" (or "\r\n")
// terminator kept. A final line without a terminator is returned as is.
func (f *CommandFile) ReadLines() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, f.path)
		}
		return nil, fmt.Errorf("failed to open command file %s: %w", f.path, err)
	}
	defer file.Close()

	return readLines(file)
}

func readLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	lines := []string{}
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return nil, fmt.Errorf("failed to read command line %d: %w", len(lines)+1, err)
		}
	}
}

func (f *CommandFile) GetSourceIdentifier() string {
	return fmt.Sprintf("File: %s", f.path)
}
