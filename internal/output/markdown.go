package output

import (
	"fmt"
	"io"

	"github.com/vartools/topscore/internal/types"
)

// MarkdownFormatter outputs the summary as GitHub-flavored markdown,
// suitable for CI job summaries.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, s *types.Summary) error {
	fmt.Fprintf(w, "### Top score filter: %s of %s rows kept\n\n", count(s.RowsWritten), count(s.RowsRead))

	if s.Input != "" {
		fmt.Fprintf(w, "> **Input:** `%s`", s.Input)
		if s.Output != "" {
			fmt.Fprintf(w, " · **Output:** `%s`", s.Output)
		}
		fmt.Fprintf(w, "\n\n")
	}

	fmt.Fprintf(w, "| Mode | Metric | Read | Kept | Replaced | Discarded |\n")
	fmt.Fprintf(w, "|------|--------|-----:|-----:|---------:|----------:|\n")
	fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
		s.Mode, s.Metric,
		count(s.RowsRead), count(s.RowsWritten), count(s.Replaced), count(s.Discarded))

	fmt.Fprintf(w, "\n<sub>%.2fs</sub>\n", s.Duration.Seconds())
	return nil
}
