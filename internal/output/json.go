package output

import (
	"encoding/json"
	"io"

	"github.com/vartools/topscore/internal/types"
)

// JSONFormatter outputs the summary as an indented JSON object.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, s *types.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
