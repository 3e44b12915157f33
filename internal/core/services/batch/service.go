package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonioJCosta/hiring/internal/core/domain/response"
	"github.com/AntonioJCosta/hiring/internal/core/ports"
	"github.com/google/uuid"
)

type service struct {
	interpreter ports.CommandInterpreter
	logger      *slog.Logger
}

// NewService creates a batch service around a single interpreter.
// State accumulates in the interpreter across Run calls.
// It panics if the interpreter is nil.
func NewService(interpreter ports.CommandInterpreter, logger *slog.Logger) ports.BatchService {
	if interpreter == nil {
		panic("interpreter cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &service{interpreter: interpreter, logger: logger}
}

// Run reads every line from src, processes them in order and writes the
// transcript to sink once. Nothing is written if reading fails or ctx is
// cancelled before the last line.
func (s *service) Run(ctx context.Context, src ports.LineSource, sink ports.TranscriptSink) (ports.RunSummary, error) {
	if src == nil || sink == nil {
		return ports.RunSummary{}, fmt.Errorf("line source and transcript sink are required")
	}

	summary := ports.RunSummary{
		RunID:       uuid.NewString(),
		Source:      src.GetSourceIdentifier(),
		Destination: sink.GetDestination(),
		KindCounts:  make(map[response.Kind]int),
	}
	logger := s.logger.With("run_id", summary.RunID)

	lines, err := src.ReadLines()
	if err != nil {
		return summary, fmt.Errorf("failed to read commands from %s: %w", summary.Source, err)
	}
	logger.Info("run started", "source", summary.Source, "lines", len(lines))

	transcript := make([]string, 0, len(lines))
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("run cancelled after %d of %d lines: %w", i, len(lines), err)
		}
		resp := s.interpreter.ProcessLine(line)
		summary.KindCounts[resp.Kind]++
		summary.LinesProcessed++
		if resp.Kind.IsError() {
			logger.Debug("line rejected", "line_no", i+1, "kind", resp.Kind.String())
		}
		transcript = append(transcript, resp.Text)
	}

	if err := sink.WriteTranscript(transcript); err != nil {
		return summary, fmt.Errorf("failed to write transcript to %s: %w", summary.Destination, err)
	}
	summary.FinalStats = s.interpreter.Stats()

	logger.Info("run finished",
		"destination", summary.Destination,
		"lines", summary.LinesProcessed,
		"errors", summary.Errors(),
	)
	return summary, nil
}
