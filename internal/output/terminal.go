package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vartools/topscore/internal/types"
)

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

const (
	barWidth  = 40
	lineWidth = 72
)

// TerminalFormatter outputs a compact run report.
type TerminalFormatter struct {
	NoColor bool
}

func (f *TerminalFormatter) color(code, text string) string {
	if f.NoColor {
		return text
	}
	return code + text + reset
}

func (f *TerminalFormatter) Format(w io.Writer, s *types.Summary) error {
	if os.Getenv("NO_COLOR") != "" {
		f.NoColor = true
	}

	f.printHeader(w, s)
	f.printCounts(w, s)
	f.printFooter(w, s)
	return nil
}

func (f *TerminalFormatter) separator() string {
	return strings.Repeat("─", lineWidth)
}

func (f *TerminalFormatter) sectionHeader(title string) string {
	prefix := "── " + title + " "
	remaining := max(lineWidth-utf8.RuneCountInString(prefix), 0)
	return prefix + strings.Repeat("─", remaining)
}

func (f *TerminalFormatter) printHeader(w io.Writer, s *types.Summary) {
	sep := f.separator()
	fmt.Fprintf(w, "\n%s\n", f.color(dim, sep))
	fmt.Fprintf(w, "  %s\n", f.color(bold, "TOP SCORE FILTER"))

	parts := []string{}
	if s.Input != "" {
		parts = append(parts, fmt.Sprintf("Input: %s", s.Input))
	}
	parts = append(parts, fmt.Sprintf("%s mode", s.Mode))
	parts = append(parts, fmt.Sprintf("metric %s", s.Metric))
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ·  "))
	fmt.Fprintf(w, "%s\n", f.color(dim, sep))
}

func (f *TerminalFormatter) printCounts(w io.Writer, s *types.Summary) {
	fmt.Fprintf(w, "\n%s\n\n", f.color(bold, f.sectionHeader("ROWS")))

	rows := []struct {
		label string
		n     int
		code  string
	}{
		{"kept", s.RowsWritten, green},
		{"replaced", s.Replaced, yellow},
		{"discarded", s.Discarded, dim},
	}
	for _, r := range rows {
		label := fmt.Sprintf("  %-10s", r.label)
		bar := f.renderBar(r.n, s.RowsRead, r.code)
		fmt.Fprintf(w, "%s %s %s\n", f.color(bold, label), bar, count(r.n))
	}
}

func (f *TerminalFormatter) printFooter(w io.Writer, s *types.Summary) {
	sep := f.separator()
	fmt.Fprintf(w, "\n%s\n", f.color(dim, sep))

	parts := []string{
		fmt.Sprintf("%s rows read", count(s.RowsRead)),
		fmt.Sprintf("%s written", count(s.RowsWritten)),
	}
	if d := dropped(s); d > 0 {
		parts = append(parts, fmt.Sprintf("%s dropped", count(d)))
	}
	if s.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.2fs", s.Duration.Seconds()))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, " · "))
	if s.Output != "" {
		fmt.Fprintf(w, "  %s %s\n", f.color(cyan, "→"), s.Output)
	}
	fmt.Fprintf(w, "%s\n", f.color(dim, sep))
}

func (f *TerminalFormatter) renderBar(n, total int, code string) string {
	if total == 0 {
		return f.color(dim, strings.Repeat("░", barWidth))
	}
	filled := n * barWidth / total
	if filled == 0 && n > 0 {
		filled = 1
	}
	empty := barWidth - filled
	return f.color(code, strings.Repeat("█", filled)) + f.color(dim, strings.Repeat("░", empty))
}
