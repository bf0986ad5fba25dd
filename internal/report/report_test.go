package report_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vartools/topscore/internal/report"
	"github.com/vartools/topscore/internal/types"
)

var variantHeader = []string{"Chromosome", "Start", "Stop", "Reference", "Variant", "Gene Name", "Median MT Score", "Best MT Score"}

func TestNewSchemaMissingColumn(t *testing.T) {
	_, err := report.NewSchema([]string{"Chromosome", "Start"}, types.ModeVariant)
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrMissingColumn))

	var ce *types.ColumnError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, 1, ce.Line)
	require.Equal(t, "Stop", ce.Column)
}

func TestDecodeVariant(t *testing.T) {
	schema, err := report.NewSchema(variantHeader, types.ModeVariant)
	require.NoError(t, err)

	recs, err := report.Decode(schema, [][]string{
		{"1", "100", "100", "A", "T", "KRAS", "50.0", "30.0"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	require.Equal(t, "1.100.100.A.T", r.GroupKey())
	require.Equal(t, 2, r.Line())

	median, err := r.MedianScore()
	require.NoError(t, err)
	require.Equal(t, 50.0, median)
	best, err := r.BestScore()
	require.NoError(t, err)
	require.Equal(t, 30.0, best)

	gene, err := r.Field("Gene Name")
	require.NoError(t, err)
	require.Equal(t, "KRAS", gene)

	_, err = r.Field("Tier")
	require.True(t, errors.Is(err, types.ErrMissingColumn))
}

func TestDecodeBinder(t *testing.T) {
	schema, err := report.NewSchema([]string{"Mutation", "Epitope Seq", "Median Score", "Best Score"}, types.ModeBinder)
	require.NoError(t, err)

	recs, err := report.Decode(schema, [][]string{
		{"MT.1.KRAS", "VVGAGGVGK", " 10.5 ", "7"},
	}, []int{5})
	require.NoError(t, err)

	r := recs[0]
	require.Equal(t, "MT.1.KRAS", r.GroupKey())
	require.Equal(t, 5, r.Line())

	median, err := r.MedianScore()
	require.NoError(t, err)
	require.Equal(t, 10.5, median)
}

func TestDecodeShortRow(t *testing.T) {
	// trailing non-required column absent: padded
	header := append(append([]string{}, variantHeader...), "Tier")
	schema, err := report.NewSchema(header, types.ModeVariant)
	require.NoError(t, err)
	recs, err := report.Decode(schema, [][]string{
		{"1", "100", "100", "A", "T", "KRAS", "50.0", "30.0"},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, len(header), len(recs[0].Values()))
	require.Equal(t, "", recs[0].Values()[len(header)-1])

	// required score column absent: fatal
	_, err = report.Decode(schema, [][]string{
		{"1", "100", "100", "A", "T", "KRAS", "50.0"},
	}, nil)
	require.True(t, errors.Is(err, types.ErrMissingColumn))
	var ce *types.ColumnError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, "Best MT Score", ce.Column)
	require.Equal(t, 2, ce.Line)
}

func TestDecodeLongRow(t *testing.T) {
	schema, err := report.NewSchema(variantHeader, types.ModeVariant)
	require.NoError(t, err)
	_, err = report.Decode(schema, [][]string{
		{"1", "100", "100", "A", "T", "KRAS", "50.0", "30.0", "extra"},
	}, nil)
	require.True(t, errors.Is(err, types.ErrRaggedRow))
}

func TestScoreInvalidNumber(t *testing.T) {
	schema, err := report.NewSchema(variantHeader, types.ModeVariant)
	require.NoError(t, err)
	recs, err := report.Decode(schema, [][]string{
		{"1", "100", "100", "A", "T", "KRAS", "NA", "30.0"},
	}, nil)
	require.NoError(t, err)

	_, err = recs[0].MedianScore()
	require.True(t, errors.Is(err, types.ErrInvalidNumber))
	require.Contains(t, err.Error(), "Median MT Score")
}

func TestMetricColumn(t *testing.T) {
	require.Equal(t, "Median MT Score", report.MetricColumn(types.ModeVariant, types.MetricMedian))
	require.Equal(t, "Best MT Score", report.MetricColumn(types.ModeVariant, types.MetricLowest))
	require.Equal(t, "Median Score", report.MetricColumn(types.ModeBinder, types.MetricMedian))
	require.Equal(t, "Best Score", report.MetricColumn(types.ModeBinder, types.MetricLowest))
}

func TestParseNumberSpellings(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		err   bool
	}{
		{"42.5", 42.5, false},
		{"  7 ", 7, false},
		{"1e3", 1000, false},
		{"1_000.5", 1000.5, false},
		{"-2_5", -25, false},
		{"0x1p-2", 0, true},
		{"0X10", 0, true},
		{"1__000", 0, true},
		{"_100", 0, true},
		{"100_", 0, true},
		{"1_.5", 0, true},
		{"", 0, true},
		{"NA", 0, true},
	}
	for _, tt := range tests {
		got, err := report.ParseFloat("Median MT Score", 3, tt.input)
		if tt.err {
			require.True(t, errors.Is(err, types.ErrInvalidNumber), "ParseFloat(%q)", tt.input)
			continue
		}
		require.NoError(t, err, "ParseFloat(%q)", tt.input)
		require.Equal(t, tt.want, got, "ParseFloat(%q)", tt.input)
	}

	n, err := report.ParseInt("Start", 3, "12_345")
	require.NoError(t, err)
	require.Equal(t, int64(12345), n)
	_, err = report.ParseInt("Start", 3, "0x10")
	require.True(t, errors.Is(err, types.ErrInvalidNumber))
}

func TestNewSchemaDuplicateHeaderLastWins(t *testing.T) {
	header := []string{"Mutation", "Median Score", "Best Score", "Median Score"}
	schema, err := report.NewSchema(header, types.ModeBinder)
	require.NoError(t, err)

	i, ok := schema.Index("Median Score")
	require.True(t, ok)
	require.Equal(t, 3, i)

	recs, err := report.Decode(schema, [][]string{{"MT.1", "99", "5", "11"}}, nil)
	require.NoError(t, err)
	median, err := recs[0].MedianScore()
	require.NoError(t, err)
	require.Equal(t, 11.0, median)
	require.Equal(t, []string{"MT.1", "99", "5", "11"}, recs[0].Values())
}
