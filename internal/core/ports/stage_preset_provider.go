package ports

import "github.com/AntonioJCosta/hiring/internal/core/domain/pipeline"

// StagePresetProvider defines the interface for sourcing named stage lists
// from configuration, like a YAML file.
type StagePresetProvider interface {
	GetPresets() ([]pipeline.Preset, error)
}
