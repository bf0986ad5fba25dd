package sorter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vartools/topscore/internal/report"
	"github.com/vartools/topscore/internal/sorter"
	"github.com/vartools/topscore/internal/types"
)

var header = []string{"Chromosome", "Start", "Stop", "Reference", "Variant", "Median MT Score", "Best MT Score", "ID"}

func decode(t *testing.T, mode types.Mode, header []string, rows [][]string) []report.Record {
	t.Helper()
	schema, err := report.NewSchema(header, mode)
	require.NoError(t, err)
	recs, err := report.Decode(schema, rows, nil)
	require.NoError(t, err)
	return recs
}

func ids(t *testing.T, recs []report.Record) []string {
	t.Helper()
	var out []string
	for _, r := range recs {
		id, err := r.Field("ID")
		require.NoError(t, err)
		out = append(out, id)
	}
	return out
}

func TestSortVariantOrder(t *testing.T) {
	recs := decode(t, types.ModeVariant, header, [][]string{
		{"X", "5", "5", "A", "T", "1", "1", "x"},
		{"10", "5", "5", "A", "T", "1", "1", "ten"},
		{"2", "900", "900", "A", "T", "1", "1", "two-late"},
		{"2", "100", "100", "G", "C", "9", "1", "two-G"},
		{"2", "100", "100", "A", "T", "40", "1", "two-A-40"},
		{"2", "100", "100", "A", "T", "7.5", "1", "two-A-7.5"},
	})

	sorted, err := sorter.Sort(recs, types.MetricMedian, sorter.Variant)
	require.NoError(t, err)
	require.Equal(t, []string{"two-A-7.5", "two-A-40", "two-G", "two-late", "ten", "x"}, ids(t, sorted))

	// input left in place
	require.Equal(t, "x", ids(t, recs)[0])
}

func TestSortUsesMetricColumn(t *testing.T) {
	recs := decode(t, types.ModeVariant, header, [][]string{
		{"1", "100", "100", "A", "T", "10", "90", "a"},
		{"1", "100", "100", "A", "T", "20", "80", "b"},
	})

	byMedian, err := sorter.Sort(recs, types.MetricMedian, sorter.Variant)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, ids(t, byMedian))

	byBest, err := sorter.Sort(recs, types.MetricLowest, sorter.Variant)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, ids(t, byBest))
}

func TestSortStable(t *testing.T) {
	recs := decode(t, types.ModeBinder, []string{"Mutation", "Median Score", "Best Score", "ID"}, [][]string{
		{"MT.2", "10.0", "1", "first"},
		{"MT.1", "3", "1", "other"},
		{"MT.2", "10", "5", "second"},
		{"MT.2", "1e1", "2", "third"},
	})

	sorted, err := sorter.Sort(recs, types.MetricMedian, sorter.ForMode(types.ModeBinder))
	require.NoError(t, err)
	require.Equal(t, []string{"other", "first", "second", "third"}, ids(t, sorted))
}

func TestSortInvalidNumber(t *testing.T) {
	recs := decode(t, types.ModeVariant, header, [][]string{
		{"1", "100", "100", "A", "T", "10", "90", "a"},
		{"1", "abc", "100", "A", "T", "20", "80", "b"},
	})

	_, err := sorter.Sort(recs, types.MetricMedian, sorter.Variant)
	require.True(t, errors.Is(err, types.ErrInvalidNumber))
	var ce *types.ColumnError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, "Start", ce.Column)
	require.Equal(t, 3, ce.Line)
}

func TestSortCustomPolicy(t *testing.T) {
	recs := decode(t, types.ModeVariant, header, [][]string{
		{"1", "100", "100", "A", "T", "10", "90", "a"},
		{"1", "200", "200", "A", "T", "20", "80", "b"},
	})

	byStartDesc := func(types.Metric) []sorter.Column {
		return []sorter.Column{{Name: "Start", Kind: sorter.Integer, Descending: true}}
	}
	sorted, err := sorter.Sort(recs, types.MetricMedian, byStartDesc)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, ids(t, sorted))

	byUnknown := func(types.Metric) []sorter.Column {
		return []sorter.Column{{Name: "Tier"}}
	}
	_, err = sorter.Sort(recs, types.MetricMedian, byUnknown)
	require.True(t, errors.Is(err, types.ErrMissingColumn))
}
