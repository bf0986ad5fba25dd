package commands

import (
	"github.com/spf13/cobra"

	"github.com/vartools/topscore"
)

var sortCmd = &cobra.Command{
	Use:   "sort <input_file> <output_file>",
	Short: "Sort a report in the order the filter consumes it",
	Long: `Writes every row of the report, ordered by chromosome, position, alleles and
score (or by mutation and score for pVACbind reports), without removing any.`,
	Args: cobra.ExactArgs(2),
	RunE: runSort,
}

func init() {
	addReportFlags(sortCmd)
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	return runReport(cmd, args[0], args[1], topscore.SortFile)
}
