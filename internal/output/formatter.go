// Package output formats run summaries for terminal (ANSI), JSON,
// and Markdown output.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vartools/topscore/internal/types"
)

// Formatter is the interface for outputting run summaries.
type Formatter interface {
	Format(w io.Writer, s *types.Summary) error
}

// New returns the formatter registered for name. Unknown names fall back to
// the terminal formatter.
func New(name string, noColor bool) Formatter {
	switch strings.ToLower(name) {
	case "json":
		return &JSONFormatter{}
	case "markdown", "md":
		return &MarkdownFormatter{}
	default:
		return &TerminalFormatter{NoColor: noColor}
	}
}

// Formats lists the accepted formatter names.
var Formats = []string{"terminal", "json", "markdown"}

// ValidFormat reports whether name selects a known formatter.
func ValidFormat(name string) error {
	switch strings.ToLower(name) {
	case "terminal", "json", "markdown", "md":
		return nil
	}
	return fmt.Errorf("unknown format: %q (want one of %s)", name, strings.Join(Formats, ", "))
}

var printer = message.NewPrinter(language.English)

// count renders n with thousands separators.
func count(n int) string {
	return printer.Sprintf("%d", n)
}

func dropped(s *types.Summary) int {
	return s.Replaced + s.Discarded
}
