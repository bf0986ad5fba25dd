package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFormat  string
	flagNoColor bool
	flagVerbose bool
	flagSummary bool
)

var rootCmd = &cobra.Command{
	Use:   "topscore",
	Short: "Keep the top-scoring epitope per variant in a report",
	Long: `topscore deduplicates pVACtools report rows by variant (or by mutation for pVACbind),
keeping only the row with the lowest median or best MT binding score.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(flagVerbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "terminal", "Summary format (terminal, json, markdown)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagSummary, "summary", false, "Print a run summary to stderr")
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
