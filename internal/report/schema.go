// Package report turns raw tab-delimited report rows into typed records.
//
// Variant-style reports (pVACseq, pVACfuse, pVACvector, pVACsplice) group rows
// by genomic coordinates; binder-style reports (pVACbind) group rows by a
// single mutation identifier. Both record kinds satisfy Record, so sorting and
// reduction never branch on the report mode themselves.
package report

import (
	"github.com/vartools/topscore/internal/types"
)

// Column names consulted for grouping and scoring.
const (
	ColChromosome    = "Chromosome"
	ColStart         = "Start"
	ColStop          = "Stop"
	ColReference     = "Reference"
	ColVariant       = "Variant"
	ColMedianMTScore = "Median MT Score"
	ColBestMTScore   = "Best MT Score"

	ColMutation    = "Mutation"
	ColMedianScore = "Median Score"
	ColBestScore   = "Best Score"
)

// ScoreColumns returns the (median, best) score column pair for a mode.
func ScoreColumns(mode types.Mode) (median, best string) {
	if mode == types.ModeBinder {
		return ColMedianScore, ColBestScore
	}
	return ColMedianMTScore, ColBestMTScore
}

// MetricColumn returns the score column the metric minimizes in this mode.
func MetricColumn(mode types.Mode, metric types.Metric) string {
	median, best := ScoreColumns(mode)
	if metric == types.MetricLowest {
		return best
	}
	return median
}

// RequiredColumns lists the columns every row of a mode must carry.
func RequiredColumns(mode types.Mode) []string {
	median, best := ScoreColumns(mode)
	if mode == types.ModeBinder {
		return []string{ColMutation, median, best}
	}
	return []string{ColChromosome, ColStart, ColStop, ColReference, ColVariant, median, best}
}

// Schema resolves column names to positions for one report header.
type Schema struct {
	mode   types.Mode
	header []string
	index  map[string]int
}

// NewSchema indexes header and checks that it names every column the mode
// requires. A missing column is reported against line 1.
func NewSchema(header []string, mode types.Mode) (*Schema, error) {
	s := &Schema{
		mode:   mode,
		header: header,
		index:  make(map[string]int, len(header)),
	}
	// last occurrence wins for duplicated header names
	for i, name := range header {
		s.index[name] = i
	}
	for _, col := range RequiredColumns(mode) {
		if _, ok := s.index[col]; !ok {
			return nil, &types.ColumnError{Column: col, Line: 1, Err: types.ErrMissingColumn}
		}
	}
	return s, nil
}

// Header returns the column names in input order.
func (s *Schema) Header() []string { return s.header }

// Index returns the position of a column.
func (s *Schema) Index(column string) (int, bool) {
	i, ok := s.index[column]
	return i, ok
}
