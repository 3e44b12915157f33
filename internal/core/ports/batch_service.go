package ports

import (
	"context"

	"github.com/AntonioJCosta/hiring/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/hiring/internal/core/domain/response"
)

// RunSummary describes a completed batch run.
type RunSummary struct {
	RunID          string
	Source         string
	Destination    string
	LinesProcessed int
	KindCounts     map[response.Kind]int
	FinalStats     pipeline.Stats
}

// Errors is the number of lines that produced an error response.
func (s RunSummary) Errors() int {
	n := 0
	for k, c := range s.KindCounts {
		if k.IsError() {
			n += c
		}
	}
	return n
}

// BatchService drives a CommandInterpreter over a whole command file.
type BatchService interface {
	Run(ctx context.Context, src LineSource, sink TranscriptSink) (RunSummary, error)
}
