package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vartools/topscore/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a .topscore.yml with default settings",
	Long:  `Scaffolds a .topscore.yml next to your reports. Settings in it apply to any report in that directory unless overridden by flags.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.FileNames[0])
	if _, err := os.Stat(path); err == nil {
		printf(cmd, "  skip %s (already exists)\n", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	printf(cmd, "  create %s\n", path)
	return nil
}

func printf(cmd *cobra.Command, format string, a ...any) {
	if cmd == nil {
		fmt.Printf(format, a...)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}

const configTemplate = `# topscore configuration
# Flags passed on the command line take precedence over these values.

# Score to minimize per variant: median or lowest
top_score_metric: median

# Report producer: pVACseq, pVACfuse, pVACvector, pVACsplice, or pVACbind
file_type: pVACseq

# Summary format for --summary: terminal, json, or markdown
format: terminal
`
