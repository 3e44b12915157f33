package testutil

import "github.com/AntonioJCosta/hiring/internal/core/ports"

// MockTranscriptSink is a mock implementation of ports.TranscriptSink.
// Every successful WriteTranscript call is recorded in Written.
type MockTranscriptSink struct {
	WriteTranscriptFunc func(lines []string) error
	GetDestinationFunc  func() string
	Written             [][]string
}

func (m *MockTranscriptSink) WriteTranscript(lines []string) error {
	if m.WriteTranscriptFunc != nil {
		if err := m.WriteTranscriptFunc(lines); err != nil {
			return err
		}
	}
	m.Written = append(m.Written, lines)
	return nil
}

func (m *MockTranscriptSink) GetDestination() string {
	if m.GetDestinationFunc != nil {
		return m.GetDestinationFunc()
	}
	return "mock-destination"
}

var _ ports.TranscriptSink = (*MockTranscriptSink)(nil)
