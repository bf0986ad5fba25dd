package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vartools/topscore"
	"github.com/vartools/topscore/internal/config"
	"github.com/vartools/topscore/internal/output"
	"github.com/vartools/topscore/internal/types"
)

var (
	flagMetric   string
	flagFileType string
)

var filterCmd = &cobra.Command{
	Use:   "filter <input_file> <output_file>",
	Short: "Keep only the top-scoring epitope per variant",
	Long: `Reads a final report .tsv, sorts it, and writes a .tsv containing only the
top epitope per variant (or per mutation for pVACbind reports).`,
	Args: cobra.ExactArgs(2),
	RunE: runFilter,
}

func init() {
	addReportFlags(filterCmd)
	rootCmd.AddCommand(filterCmd)
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagMetric, "top-score-metric", "m", "median",
		"The ic50 scoring metric to use for filtering. "+
			"lowest: use the Best MT Score (the lowest MT ic50 binding score of all chosen prediction methods). "+
			"median: use the Median MT Score (the median MT ic50 binding score of all chosen prediction methods).")
	cmd.Flags().StringVar(&flagFileType, "file-type", "pVACseq",
		fmt.Sprintf("Report producer (%s); pVACbind reports are grouped by Mutation", strings.Join(types.FileTypes, ", ")))
}

func runFilter(cmd *cobra.Command, args []string) error {
	return runReport(cmd, args[0], args[1], topscore.FilterFile)
}

type reportFunc func(ctx context.Context, in, out string, opts ...topscore.Option) (*topscore.Summary, error)

func runReport(cmd *cobra.Command, in, out string, fn reportFunc) error {
	src := loadRunConfig(cmd, in)

	metric, err := topscore.ParseMetric(flagMetric)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", src.metric, err)
	}
	mode, err := topscore.ParseFileType(flagFileType)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", src.fileType, err)
	}
	if err := output.ValidFormat(flagFormat); err != nil {
		return fmt.Errorf("invalid %s: %w", src.format, err)
	}

	ctx, cancel := contextWithInterrupt()
	defer cancel()

	slog.Debug("processing report", "command", cmd.Name(), "input", in, "output", out, "mode", mode, "metric", metric)
	summary, err := fn(ctx, in, out, topscore.WithMetric(metric), topscore.WithMode(mode))
	if err != nil {
		return err
	}

	if flagSummary {
		noColor := flagNoColor || os.Getenv("NO_COLOR") != ""
		return output.New(flagFormat, noColor).Format(cmd.ErrOrStderr(), summary)
	}
	return nil
}

// settingSources names where each setting's value came from.
type settingSources struct {
	metric   string
	fileType string
	format   string
}

// loadRunConfig applies .topscore.yml values for any flag not set explicitly.
func loadRunConfig(cmd *cobra.Command, input string) settingSources {
	src := settingSources{
		metric:   "--top-score-metric",
		fileType: "--file-type",
		format:   "--format",
	}
	cfg, err := config.Load(input)
	if err != nil {
		slog.Warn("ignoring config file", "error", err)
		return src
	}
	if !cmd.Flags().Changed("top-score-metric") && cfg.TopScoreMetric != "" {
		flagMetric = cfg.TopScoreMetric
		src.metric = fmt.Sprintf("top_score_metric in %s", cfg.Path)
	}
	if !cmd.Flags().Changed("file-type") && cfg.FileType != "" {
		flagFileType = cfg.FileType
		src.fileType = fmt.Sprintf("file_type in %s", cfg.Path)
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		flagFormat = cfg.Format
		src.format = fmt.Sprintf("format in %s", cfg.Path)
	}
	return src
}

func contextWithInterrupt() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
