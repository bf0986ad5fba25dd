// Package topscore keeps the single best-scoring epitope prediction per
// variant in a tab-delimited report.
//
// Rows are loaded, ordered by a sort policy, then reduced so that exactly one
// row survives per grouping key: the one with the lowest median or best
// binding score. Output keeps the input header and lists survivors in order
// of first appearance of their key.
//
// This is the library entry point. For the CLI tool, see cmd/topscore/.
package topscore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vartools/topscore/internal/reducer"
	"github.com/vartools/topscore/internal/report"
	"github.com/vartools/topscore/internal/sorter"
	"github.com/vartools/topscore/internal/tsv"
	"github.com/vartools/topscore/internal/types"
)

// Re-export core types from internal packages so consumers don't need to
// import them.
type (
	Metric      = types.Metric
	Mode        = types.Mode
	Summary     = types.Summary
	ColumnError = types.ColumnError
	SortPolicy  = sorter.Policy
	SortColumn  = sorter.Column
	SortKind    = sorter.Kind
)

const (
	MetricMedian = types.MetricMedian
	MetricLowest = types.MetricLowest

	ModeVariant = types.ModeVariant
	ModeBinder  = types.ModeBinder

	SortText    = sorter.Text
	SortNatural = sorter.Natural
	SortInteger = sorter.Integer
	SortFloat   = sorter.Float
)

var (
	ErrMissingColumn = types.ErrMissingColumn
	ErrInvalidNumber = types.ErrInvalidNumber
	ErrRaggedRow     = types.ErrRaggedRow
	ErrNoHeader      = tsv.ErrNoHeader

	ParseMetric   = types.ParseMetric
	ParseFileType = types.ParseFileType
)

// Filter reads a report from r and writes one row per grouping key to w.
// Nothing is written to w unless the whole report sorts and reduces cleanly.
func Filter(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) (*Summary, error) {
	res, err := run(ctx, r, applyOpts(opts), true)
	if err != nil {
		return nil, err
	}
	if err := tsv.Write(w, res.header, res.rows); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	res.summary.Duration = time.Since(res.start)
	return res.summary, nil
}

// FilterFile filters the report at in and writes the result to out. The output
// file is replaced atomically; on failure any existing out is left untouched.
func FilterFile(ctx context.Context, in, out string, opts ...Option) (*Summary, error) {
	return runFile(ctx, in, out, applyOpts(opts), true)
}

// Sort reads a report from r and writes every row to w in sort-policy order.
func Sort(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) (*Summary, error) {
	res, err := run(ctx, r, applyOpts(opts), false)
	if err != nil {
		return nil, err
	}
	if err := tsv.Write(w, res.header, res.rows); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	res.summary.Duration = time.Since(res.start)
	return res.summary, nil
}

// SortFile sorts the report at in and writes the result to out atomically.
func SortFile(ctx context.Context, in, out string, opts ...Option) (*Summary, error) {
	return runFile(ctx, in, out, applyOpts(opts), false)
}

// --- internal helpers ---

func applyOpts(opts []Option) *runConfig {
	cfg := &runConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.policy == nil {
		cfg.policy = sorter.ForMode(cfg.mode)
	}
	return cfg
}

type runResult struct {
	header  []string
	rows    [][]string
	summary *Summary
	start   time.Time
}

func runFile(ctx context.Context, in, out string, cfg *runConfig, reduce bool) (*Summary, error) {
	start := time.Now()
	tbl, err := tsv.ReadFile(in)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	res, err := process(ctx, tbl, cfg, reduce)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}
	if err := tsv.WriteFile(out, res.header, res.rows); err != nil {
		return nil, err
	}
	res.summary.Input = in
	res.summary.Output = out
	res.summary.Duration = time.Since(start)
	return res.summary, nil
}

func run(ctx context.Context, r io.Reader, cfg *runConfig, reduce bool) (*runResult, error) {
	start := time.Now()
	tbl, err := tsv.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	res, err := process(ctx, tbl, cfg, reduce)
	if err != nil {
		return nil, err
	}
	res.start = start
	return res, nil
}

// process decodes, sorts and (optionally) reduces an in-memory table.
func process(ctx context.Context, tbl *tsv.Table, cfg *runConfig, reduce bool) (*runResult, error) {
	schema, err := report.NewSchema(tbl.Header, cfg.mode)
	if err != nil {
		return nil, err
	}
	records, err := report.Decode(schema, tbl.Rows, tbl.Lines)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sorted, err := sorter.Sort(records, cfg.metric, cfg.policy)
	if err != nil {
		return nil, fmt.Errorf("sorting: %w", err)
	}
	slog.Debug("sorted report", "rows", len(sorted), "mode", cfg.mode, "metric", cfg.metric)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Mode:     cfg.mode,
		Metric:   cfg.metric,
		RowsRead: len(records),
	}
	kept := sorted
	if reduce {
		red, err := reducer.Reduce(sorted, cfg.metric)
		if err != nil {
			return nil, fmt.Errorf("filtering: %w", err)
		}
		kept = red.Records
		summary.Replaced = red.Replaced
		summary.Discarded = red.Discarded
		slog.Debug("reduced report", "kept", len(kept), "replaced", red.Replaced, "discarded", red.Discarded)
	}
	summary.RowsWritten = len(kept)

	return &runResult{
		header:  schema.Header(),
		rows:    report.Rows(kept),
		summary: summary,
	}, nil
}
