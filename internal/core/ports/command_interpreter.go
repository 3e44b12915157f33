package ports

import (
	"github.com/AntonioJCosta/hiring/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/hiring/internal/core/domain/response"
)

/*
CommandInterpreter applies hiring commands, one line at a time, to the state it
owns. Every line yields exactly one Response; input never produces a Go error.
*/
type CommandInterpreter interface {
	ProcessLine(line string) response.Response

	// Stages returns a copy of the current stage list in pipeline order.
	Stages() []string

	// Stats returns the same snapshot a STATS command would report.
	Stats() pipeline.Stats
}
