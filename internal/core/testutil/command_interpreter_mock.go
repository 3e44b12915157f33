package testutil

import (
	"github.com/AntonioJCosta/hiring/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/hiring/internal/core/domain/response"
	"github.com/AntonioJCosta/hiring/internal/core/ports"
)

// MockCommandInterpreter is a mock implementation of ports.CommandInterpreter.
type MockCommandInterpreter struct {
	// ProcessLineFunc allows you to set a custom function for the ProcessLine method.
	ProcessLineFunc func(line string) response.Response
	StagesFunc      func() []string
	StatsFunc       func() pipeline.Stats
	// ProcessLineCalls keeps track of the lines passed to ProcessLine.
	ProcessLineCalls []string
}

// ProcessLine echoes the line back as an Echo response unless ProcessLineFunc is set.
func (m *MockCommandInterpreter) ProcessLine(line string) response.Response {
	m.ProcessLineCalls = append(m.ProcessLineCalls, line)
	if m.ProcessLineFunc != nil {
		return m.ProcessLineFunc(line)
	}
	return response.Response{Kind: response.Echo, Text: line}
}

func (m *MockCommandInterpreter) Stages() []string {
	if m.StagesFunc != nil {
		return m.StagesFunc()
	}
	return nil
}

func (m *MockCommandInterpreter) Stats() pipeline.Stats {
	if m.StatsFunc != nil {
		return m.StatsFunc()
	}
	return pipeline.Stats{}
}

var _ ports.CommandInterpreter = (*MockCommandInterpreter)(nil)
