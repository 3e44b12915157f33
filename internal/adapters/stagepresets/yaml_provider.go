package stagepresets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/hiring/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/hiring/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the StagePresetProvider interface
// by reading presets from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing stage presets.
func NewYAMLProvider(filePath string) (ports.StagePresetProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetPresets reads and parses presets from the configured YAML file.
// A missing or empty file yields an empty list and no error.
func (p *YAMLProvider) GetPresets() ([]pipeline.Preset, error) {
	presets := []pipeline.Preset{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return presets, nil
		}
		return nil, fmt.Errorf("failed to read stage presets file %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return presets, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&presets); err != nil {
		// A file holding only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return presets, nil
		}
		return nil, fmt.Errorf("failed to unmarshal stage presets from %s: %w", p.filePath, err)
	}

	if err := validatePresets(presets); err != nil {
		return nil, fmt.Errorf("invalid stage presets in %s: %w", p.filePath, err)
	}
	return presets, nil
}

func validatePresets(presets []pipeline.Preset) error {
	seen := make(map[string]bool, len(presets))
	for i, preset := range presets {
		if preset.Name == "" {
			return fmt.Errorf("preset #%d has no name", i+1)
		}
		if seen[preset.Name] {
			return fmt.Errorf("preset %q is defined more than once", preset.Name)
		}
		seen[preset.Name] = true
		if len(preset.Stages) == 0 {
			return fmt.Errorf("preset %q has no stages", preset.Name)
		}
	}
	return nil
}
