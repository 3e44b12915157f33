package transcript

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/hiring/internal/core/ports"
)

// ErrEmptyPath is returned when no output path is given.
var ErrEmptyPath = errors.New("transcript path cannot be empty")

// FileTranscript writes a run's responses to a file, replacing any previous content.
// It implements the ports.TranscriptSink interface.
type FileTranscript struct {
	path string
}

// NewFileTranscript creates a sink writing to path.
func NewFileTranscript(path string) (ports.TranscriptSink, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &FileTranscript{path: path}, nil
}

// WriteTranscript writes each line followed by "\n" in a single write.
// The parent directory is created if needed.
func (ft *FileTranscript) WriteTranscript(lines []string) error {
	if dir := filepath.Dir(ft.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if err := os.WriteFile(ft.path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write transcript file %s: %w", ft.path, err)
	}
	return nil
}

func (ft *FileTranscript) GetDestination() string {
	return ft.path
}
