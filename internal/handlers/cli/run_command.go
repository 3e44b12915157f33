package cli

import (
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/hiring/internal/config"
	"github.com/AntonioJCosta/hiring/internal/core/services/batch"
	"github.com/AntonioJCosta/hiring/internal/core/services/hiring"
	"github.com/AntonioJCosta/hiring/internal/handlers/ui"
	"github.com/AntonioJCosta/hiring/internal/repositories/commandfile"
	"github.com/AntonioJCosta/hiring/internal/repositories/transcript"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(cfg config.Config, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <input-file>",
		Short: "Process a command file and write the responses.",
		Long: `Reads every line of the input file, applies it to a fresh pipeline and
writes one response per line to the output file once all lines are processed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCmd(cmd, args, logger)
		},
	}

	cmd.Flags().StringP("output", "o", cfg.OutputPath, "File the responses are written to.")
	cmd.Flags().StringP("preset", "p", "", "Name of a stage preset to define before the first line.")
	cmd.Flags().String("presets-file", cfg.PresetsFile, "YAML file holding stage presets.")
	cmd.Flags().BoolP("summary", "s", false, "Print a summary table after the run.")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print the completion notice.")

	return cmd
}

func runRunCmd(cmd *cobra.Command, args []string, logger *slog.Logger) error {
	flags := parseRunCommandFlags(cmd)

	source, err := commandfile.NewCommandFile(args[0])
	if err != nil {
		return fmt.Errorf("invalid input file: %w", err)
	}
	sink, err := transcript.NewFileTranscript(flags.output)
	if err != nil {
		return fmt.Errorf("invalid output file: %w", err)
	}

	stages, err := loadPresetStages(flags.presetsFile, flags.preset)
	if err != nil {
		return err
	}

	interpreter := hiring.NewService(hiring.WithStages(stages...), hiring.WithLogger(logger))
	summary, err := batch.NewService(interpreter, logger).Run(cmd.Context(), source, sink)
	if err != nil {
		return fmt.Errorf("hiring run failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if !flags.quiet {
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Hiring complete. Please check %s", summary.Destination)))
	}
	if flags.summary {
		printRunSummary(out, summary)
	}
	return nil
}
