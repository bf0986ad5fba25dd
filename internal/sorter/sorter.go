// Package sorter orders report records ahead of top-score reduction.
//
// The sort itself is generic: a Policy lists column directives and Sort
// applies them as a stable lexicographic comparison. Keys are extracted once
// per record up front, so conversion failures surface before any reordering.
package sorter

import (
	"cmp"
	"slices"

	"github.com/maruel/natural"

	"github.com/vartools/topscore/internal/report"
	"github.com/vartools/topscore/internal/types"
)

// Kind selects how a column's text is compared.
type Kind int

const (
	// Text compares byte-wise.
	Text Kind = iota
	// Natural compares digit runs numerically ("2" < "10" < "X").
	Natural
	// Integer parses base-10 integers.
	Integer
	// Float parses floating-point numbers.
	Float
)

// Column is one ordering directive.
type Column struct {
	Name       string
	Kind       Kind
	Descending bool
}

// Policy returns the ordering directives to apply under a metric.
type Policy func(metric types.Metric) []Column

// Variant orders variant-style reports by position, then allele, then score.
func Variant(metric types.Metric) []Column {
	return []Column{
		{Name: report.ColChromosome, Kind: Natural},
		{Name: report.ColStart, Kind: Integer},
		{Name: report.ColStop, Kind: Integer},
		{Name: report.ColReference, Kind: Text},
		{Name: report.ColVariant, Kind: Text},
		{Name: report.MetricColumn(types.ModeVariant, metric), Kind: Float},
	}
}

// Binder orders binder-style reports by mutation, then score.
func Binder(metric types.Metric) []Column {
	return []Column{
		{Name: report.ColMutation, Kind: Text},
		{Name: report.MetricColumn(types.ModeBinder, metric), Kind: Float},
	}
}

// ForMode returns the built-in policy for a report mode.
func ForMode(mode types.Mode) Policy {
	if mode == types.ModeBinder {
		return Binder
	}
	return Variant
}

type key struct {
	text string
	num  float64
}

// Sort returns records permuted into policy order. Records comparing equal
// keep their input order. The input slice is left untouched.
func Sort(records []report.Record, metric types.Metric, policy Policy) ([]report.Record, error) {
	cols := policy(metric)

	keys := make([][]key, len(records))
	for i, r := range records {
		k, err := extract(r, cols)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return compareKeys(keys[a], keys[b], cols)
	})

	sorted := make([]report.Record, len(records))
	for i, j := range order {
		sorted[i] = records[j]
	}
	return sorted, nil
}

func extract(r report.Record, cols []Column) ([]key, error) {
	k := make([]key, len(cols))
	for i, c := range cols {
		text, err := r.Field(c.Name)
		if err != nil {
			return nil, err
		}
		k[i].text = text
		switch c.Kind {
		case Integer:
			n, err := report.ParseInt(c.Name, r.Line(), text)
			if err != nil {
				return nil, err
			}
			k[i].num = float64(n)
		case Float:
			f, err := report.ParseFloat(c.Name, r.Line(), text)
			if err != nil {
				return nil, err
			}
			k[i].num = f
		}
	}
	return k, nil
}

func compareKeys(a, b []key, cols []Column) int {
	for i, c := range cols {
		var d int
		switch c.Kind {
		case Integer, Float:
			d = cmp.Compare(a[i].num, b[i].num)
		case Natural:
			d = compareNatural(a[i].text, b[i].text)
		default:
			d = cmp.Compare(a[i].text, b[i].text)
		}
		if d != 0 {
			if c.Descending {
				return -d
			}
			return d
		}
	}
	return 0
}

func compareNatural(a, b string) int {
	switch {
	case a == b:
		return 0
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}
