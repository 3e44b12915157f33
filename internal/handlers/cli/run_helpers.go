package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AntonioJCosta/hiring/internal/adapters/stagepresets"
	"github.com/AntonioJCosta/hiring/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/hiring/internal/core/domain/response"
	"github.com/AntonioJCosta/hiring/internal/core/ports"
	"github.com/AntonioJCosta/hiring/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type runCommandFlags struct {
	output      string
	preset      string
	presetsFile string
	summary     bool
	quiet       bool
}

func parseRunCommandFlags(cmd *cobra.Command) runCommandFlags {
	output, _ := cmd.Flags().GetString("output")
	preset, _ := cmd.Flags().GetString("preset")
	presetsFile, _ := cmd.Flags().GetString("presets-file")
	summary, _ := cmd.Flags().GetBool("summary")
	quiet, _ := cmd.Flags().GetBool("quiet")

	// Default value if the flag was cleared explicitly
	if output == "" {
		output = "output.txt"
	}

	return runCommandFlags{
		output:      output,
		preset:      preset,
		presetsFile: presetsFile,
		summary:     summary,
		quiet:       quiet,
	}
}

func loadPresetStages(presetsFile, name string) ([]string, error) {
	if name == "" {
		return nil, nil
	}
	provider, err := stagepresets.NewYAMLProvider(presetsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open stage presets: %w", err)
	}
	return resolvePresetStages(provider, presetsFile, name)
}

// resolvePresetStages returns nil when no preset was requested.
func resolvePresetStages(provider ports.StagePresetProvider, presetsFile, name string) ([]string, error) {
	if name == "" {
		return nil, nil
	}
	presets, err := provider.GetPresets()
	if err != nil {
		return nil, fmt.Errorf("could not load stage presets: %w", err)
	}
	preset, ok := pipeline.FindPreset(presets, name)
	if !ok {
		return nil, fmt.Errorf("stage preset %q not found in %s", name, presetsFile)
	}
	return preset.Stages, nil
}

func printRunSummary(w io.Writer, summary ports.RunSummary) {
	fmt.Fprintln(w, ui.HeaderColor("\nRun summary"))
	fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("run %s, %s -> %s", summary.RunID, summary.Source, summary.Destination)))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Response", "Lines"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, k := range response.Kinds() {
		count := summary.KindCounts[k]
		if count == 0 {
			continue
		}
		table.Append([]string{ui.KindColor(k)(k.String()), strconv.Itoa(count)})
	}
	table.SetFooter([]string{"total", strconv.Itoa(summary.LinesProcessed)})
	table.Render()

	stats := tablewriter.NewWriter(w)
	stats.SetHeader([]string{"Stage", "Applicants"})
	stats.SetBorder(true)
	stats.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, sc := range summary.FinalStats.Stages {
		stats.Append([]string{ui.StageColor(sc.Name), strconv.Itoa(sc.Count)})
	}
	stats.Append([]string{"Hired", strconv.Itoa(summary.FinalStats.Hired)})
	stats.Append([]string{"Rejected", strconv.Itoa(summary.FinalStats.Rejected)})
	stats.Render()

	if n := summary.Errors(); n > 0 {
		fmt.Fprintln(w, ui.WarningColor(fmt.Sprintf("%d line(s) produced an error response.", n)))
	}
}
