package testutil

import (
	"github.com/AntonioJCosta/hiring/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/hiring/internal/core/ports"
)

// MockStagePresetProvider is a mock implementation of ports.StagePresetProvider.
type MockStagePresetProvider struct {
	GetPresetsFunc func() ([]pipeline.Preset, error)
}

func (m *MockStagePresetProvider) GetPresets() ([]pipeline.Preset, error) {
	if m.GetPresetsFunc != nil {
		return m.GetPresetsFunc()
	}
	return nil, nil // Default behavior
}

var _ ports.StagePresetProvider = (*MockStagePresetProvider)(nil)
