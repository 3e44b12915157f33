package cli

import (
	"log/slog"

	"github.com/AntonioJCosta/hiring/internal/config"
	"github.com/spf13/cobra"
)

func NewRootCommand(version string, cfg config.Config, logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hiring",
		Short: "hiring runs a hiring pipeline command file.",
		Long: `hiring interprets a line-oriented command file (DEFINE, CREATE, ADVANCE,
DECIDE, STATS) and writes one response line per command to an output file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewRunCommand(cfg, logger))
	rootCmd.AddCommand(NewPresetsCommand(cfg))

	return rootCmd
}
