package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vartools/topscore/internal/types"
)

// Record is one report row, groupable by key and scoreable by metric.
// Records are never mutated after decoding.
type Record interface {
	// GroupKey identifies the variant or mutation the row predicts against.
	GroupKey() string
	// MedianScore parses the mode's median score column.
	MedianScore() (float64, error)
	// BestScore parses the mode's best score column.
	BestScore() (float64, error)
	// Field returns the text of any column named in the header.
	Field(column string) (string, error)
	// Values returns the row in header order, verbatim.
	Values() []string
	// Line is the 1-based input line the row was read from.
	Line() int
}

type row struct {
	schema *Schema
	values []string
	line   int
}

func (r *row) Field(column string) (string, error) {
	i, ok := r.schema.Index(column)
	if !ok {
		return "", &types.ColumnError{Column: column, Line: r.line, Err: types.ErrMissingColumn}
	}
	return r.values[i], nil
}

func (r *row) Values() []string { return r.values }

func (r *row) Line() int { return r.line }

// VariantRecord is a row of a variant-style report.
type VariantRecord struct {
	row
	Chromosome string
	Start      string
	Stop       string
	Reference  string
	Variant    string
	MedianMT   string
	BestMT     string
}

// GroupKey joins the variant coordinates with '.'.
func (v *VariantRecord) GroupKey() string {
	return fmt.Sprintf("%s.%s.%s.%s.%s", v.Chromosome, v.Start, v.Stop, v.Reference, v.Variant)
}

func (v *VariantRecord) MedianScore() (float64, error) {
	return ParseFloat(ColMedianMTScore, v.line, v.MedianMT)
}

func (v *VariantRecord) BestScore() (float64, error) {
	return ParseFloat(ColBestMTScore, v.line, v.BestMT)
}

// BinderRecord is a row of a binder-style report.
type BinderRecord struct {
	row
	Mutation string
	Median   string
	Best     string
}

// GroupKey is the mutation identifier.
func (b *BinderRecord) GroupKey() string { return b.Mutation }

func (b *BinderRecord) MedianScore() (float64, error) {
	return ParseFloat(ColMedianScore, b.line, b.Median)
}

func (b *BinderRecord) BestScore() (float64, error) {
	return ParseFloat(ColBestScore, b.line, b.Best)
}

// ParseFloat parses a numeric column value, attributing failures to column
// and line. Surrounding whitespace is ignored. Digit-separating underscores
// ("1_000") are accepted and hexadecimal literals ("0x1p-2") are rejected,
// the same set of spellings the upstream report writers accept.
func ParseFloat(column string, line int, value string) (float64, error) {
	text, ok := numberText(value)
	if !ok {
		return 0, &types.ColumnError{Column: column, Line: line, Value: value, Err: types.ErrInvalidNumber}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &types.ColumnError{Column: column, Line: line, Value: value, Err: types.ErrInvalidNumber}
	}
	return f, nil
}

// ParseInt parses a base-10 integer column value the same way ParseFloat does.
func ParseInt(column string, line int, value string) (int64, error) {
	text, ok := numberText(value)
	if !ok {
		return 0, &types.ColumnError{Column: column, Line: line, Value: value, Err: types.ErrInvalidNumber}
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &types.ColumnError{Column: column, Line: line, Value: value, Err: types.ErrInvalidNumber}
	}
	return n, nil
}

// numberText trims value, rejects hex literals and strips underscores that
// sit between two digits. Any other underscore makes the value invalid.
func numberText(value string) (string, bool) {
	s := strings.TrimSpace(value)
	body := strings.TrimLeft(s, "+-")
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return "", false
	}
	if !strings.Contains(s, "_") {
		return s, true
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return strings.ReplaceAll(s, "_", ""), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
