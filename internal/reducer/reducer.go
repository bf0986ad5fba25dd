// Package reducer keeps the best-scoring record per group key.
package reducer

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/vartools/topscore/internal/report"
	"github.com/vartools/topscore/internal/types"
)

// Result is the outcome of one reduction pass.
type Result struct {
	// Records holds one record per group key, in order of first appearance.
	Records []report.Record
	// Replaced counts candidates that displaced an incumbent.
	Replaced int
	// Discarded counts candidates that lost to an incumbent.
	Discarded int
}

// Reduce streams records in order and keeps, per group key, the record with
// the lowest score under metric. A candidate replaces the incumbent only when
// strictly lower, so ties keep whichever record came first. Replacement does
// not move the key's position.
//
// Scores are parsed only when a key is seen twice; any parse failure aborts
// the pass.
func Reduce(records []report.Record, metric types.Metric) (*Result, error) {
	table := linkedhashmap.New()
	res := &Result{}

	for _, candidate := range records {
		k := candidate.GroupKey()
		v, found := table.Get(k)
		if !found {
			table.Put(k, candidate)
			continue
		}
		incumbent := v.(report.Record)

		better, err := beats(candidate, incumbent, metric)
		if err != nil {
			return nil, err
		}
		if better {
			table.Put(k, candidate)
			res.Replaced++
		} else {
			res.Discarded++
		}
	}

	res.Records = make([]report.Record, 0, table.Size())
	for _, v := range table.Values() {
		res.Records = append(res.Records, v.(report.Record))
	}
	return res, nil
}

// beats reports whether candidate scores strictly lower than incumbent. Both
// score columns of both records are parsed regardless of metric.
func beats(candidate, incumbent report.Record, metric types.Metric) (bool, error) {
	topMedian, err := incumbent.MedianScore()
	if err != nil {
		return false, err
	}
	topBest, err := incumbent.BestScore()
	if err != nil {
		return false, err
	}
	median, err := candidate.MedianScore()
	if err != nil {
		return false, err
	}
	best, err := candidate.BestScore()
	if err != nil {
		return false, err
	}

	switch metric {
	case types.MetricLowest:
		return best < topBest, nil
	default:
		return median < topMedian, nil
	}
}
