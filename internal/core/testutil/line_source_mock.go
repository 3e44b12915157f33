package testutil

import (
	"errors"

	"github.com/AntonioJCosta/hiring/internal/core/ports"
)

// MockLineSource is a mock implementation of ports.LineSource.
type MockLineSource struct {
	ReadLinesFunc           func() ([]string, error)
	GetSourceIdentifierFunc func() string
}

// NewMockLineSource returns a source that yields lines.
func NewMockLineSource(lines ...string) *MockLineSource {
	return &MockLineSource{
		ReadLinesFunc: func() ([]string, error) { return lines, nil },
	}
}

func (m *MockLineSource) ReadLines() ([]string, error) {
	if m.ReadLinesFunc != nil {
		return m.ReadLinesFunc()
	}
	return nil, errors.New("MockLineSource: ReadLinesFunc not implemented")
}

func (m *MockLineSource) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return "mock-source"
}

var _ ports.LineSource = (*MockLineSource)(nil)
