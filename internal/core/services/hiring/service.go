package hiring

import (
	"io"
	"log/slog"
	"slices"

	"github.com/AntonioJCosta/hiring/internal/core/domain/applicant"
	"github.com/AntonioJCosta/hiring/internal/core/domain/command"
	"github.com/AntonioJCosta/hiring/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/hiring/internal/core/domain/response"
	"github.com/AntonioJCosta/hiring/internal/core/ports"
)

type service struct {
	stages     []string
	applicants map[string]applicant.Status
	logger     *slog.Logger
}

// Option configures a new interpreter.
type Option func(*service)

// WithStages seeds the stage list, as if a DEFINE had already been processed.
func WithStages(stages ...string) Option {
	return func(s *service) {
		s.stages = append(s.stages, stages...)
	}
}

// WithLogger sets the logger used for state-change diagnostics.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates an interpreter with an empty applicant registry.
func NewService(opts ...Option) ports.CommandInterpreter {
	s := &service{
		applicants: make(map[string]applicant.Status),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessLine parses line and applies it.
func (s *service) ProcessLine(line string) response.Response {
	cmd, ok := command.Parse(line)
	if !ok {
		return response.CommandNotFound(line)
	}

	switch cmd.Kind {
	case command.Define:
		return s.define(cmd)
	case command.Create:
		return s.create(cmd)
	case command.Advance:
		return s.advance(cmd)
	case command.Decide:
		return s.decide(cmd)
	case command.Stats:
		return s.stats(cmd)
	}
	// command.Parse only yields the kinds above.
	return response.CommandNotFound(line)
}

func (s *service) Stages() []string {
	return slices.Clone(s.stages)
}

func (s *service) Stats() pipeline.Stats {
	stats := pipeline.Stats{Stages: make([]pipeline.StageCount, len(s.stages))}
	for i, name := range s.stages {
		stats.Stages[i].Name = name
	}
	for _, status := range s.applicants {
		if idx, ok := status.Stage(); ok {
			// An applicant created before any DEFINE sits at index 0 with no stage to count against.
			if idx < len(stats.Stages) {
				stats.Stages[idx].Count++
			}
			continue
		}
		switch outcome, _ := status.Outcome(); outcome {
		case applicant.Hired:
			stats.Hired++
		case applicant.Rejected:
			stats.Rejected++
		}
	}
	return stats
}

// stageName returns "" for an index with no defined stage.
func (s *service) stageName(idx int) string {
	if idx < 0 || idx >= len(s.stages) {
		return ""
	}
	return s.stages[idx]
}
