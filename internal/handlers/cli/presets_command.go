package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/hiring/internal/adapters/stagepresets"
	"github.com/AntonioJCosta/hiring/internal/config"
	"github.com/AntonioJCosta/hiring/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPresetsCommand creates the 'presets' subcommand.
func NewPresetsCommand(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the stage presets available to 'run --preset'.",
		Args:  cobra.NoArgs,
		RunE:  runPresetsCmd,
	}
	cmd.Flags().String("presets-file", cfg.PresetsFile, "YAML file holding stage presets.")
	return cmd
}

func runPresetsCmd(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("presets-file")
	provider, err := stagepresets.NewYAMLProvider(path)
	if err != nil {
		return fmt.Errorf("could not open stage presets: %w", err)
	}
	presets, err := provider.GetPresets()
	if err != nil {
		return fmt.Errorf("could not list stage presets: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(presets) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No stage presets found in %s.", path)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Stage presets (%s):", path)))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Preset", "Stages"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for _, p := range presets {
		table.Append([]string{p.Name, strings.Join(p.Stages, " > ")})
	}
	table.Render()
	return nil
}
