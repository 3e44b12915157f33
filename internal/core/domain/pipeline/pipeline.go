/*
Package pipeline defines the stage list entities: stage presets loaded from
configuration and the aggregate statistics reported by STATS.
*/
package pipeline

import (
	"fmt"
	"strings"
)

/*
Preset is a named, reusable stage list. Presets seed an interpreter's
pipeline before the first command line is processed.
*/
type Preset struct {
	Name   string   `yaml:"name"`
	Stages []string `yaml:"stages"`
}

// FindPreset returns the first preset called name.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// StageCount is the number of undecided applicants sitting at one stage.
type StageCount struct {
	Name  string
	Count int
}

// Stats is a snapshot of the pipeline: one entry per defined stage, in order,
// plus the terminal totals.
type Stats struct {
	Stages   []StageCount
	Hired    int
	Rejected int
}

// String renders the STATS transcript line, e.g.
// "ManualReview 0 BackgroundCheck 1 Hired 0 Rejected 0".
func (s Stats) String() string {
	var sb strings.Builder
	for _, sc := range s.Stages {
		fmt.Fprintf(&sb, "%s %d ", sc.Name, sc.Count)
	}
	fmt.Fprintf(&sb, "Hired %d Rejected %d", s.Hired, s.Rejected)
	return sb.String()
}

// InPipeline is the number of applicants not yet decided.
func (s Stats) InPipeline() int {
	total := 0
	for _, sc := range s.Stages {
		total += sc.Count
	}
	return total
}
