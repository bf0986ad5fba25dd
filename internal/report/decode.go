package report

import (
	"fmt"

	"github.com/vartools/topscore/internal/types"
)

// Decode builds one typed record per raw row. lines gives the 1-based input
// line of each row; when nil, rows are numbered from line 2.
//
// Rows shorter than the header are padded with empty values so the output
// keeps the header's shape. A required column falling in the padded tail is
// reported as ErrMissingColumn. Rows longer than the header are rejected.
func Decode(schema *Schema, rows [][]string, lines []int) ([]Record, error) {
	width := len(schema.header)
	records := make([]Record, 0, len(rows))
	for i, raw := range rows {
		line := i + 2
		if lines != nil {
			line = lines[i]
		}
		if len(raw) > width {
			return nil, fmt.Errorf("line %d: %w (%d > %d)", line, types.ErrRaggedRow, len(raw), width)
		}
		for _, col := range RequiredColumns(schema.mode) {
			if schema.index[col] >= len(raw) {
				return nil, &types.ColumnError{Column: col, Line: line, Err: types.ErrMissingColumn}
			}
		}
		values := raw
		if len(raw) < width {
			values = make([]string, width)
			copy(values, raw)
		}
		records = append(records, newRecord(schema, values, line))
	}
	return records, nil
}

func newRecord(schema *Schema, values []string, line int) Record {
	base := row{schema: schema, values: values, line: line}
	at := func(col string) string { return values[schema.index[col]] }

	if schema.mode == types.ModeBinder {
		return &BinderRecord{
			row:      base,
			Mutation: at(ColMutation),
			Median:   at(ColMedianScore),
			Best:     at(ColBestScore),
		}
	}
	return &VariantRecord{
		row:        base,
		Chromosome: at(ColChromosome),
		Start:      at(ColStart),
		Stop:       at(ColStop),
		Reference:  at(ColReference),
		Variant:    at(ColVariant),
		MedianMT:   at(ColMedianMTScore),
		BestMT:     at(ColBestMTScore),
	}
}

// Rows flattens records back into raw rows in the given order.
func Rows(records []Record) [][]string {
	out := make([][]string, len(records))
	for i, r := range records {
		out[i] = r.Values()
	}
	return out
}
