// Package types defines shared data structures (Metric, Mode, ColumnError, Summary)
// used across report, sorter, reducer, and output packages to prevent import cycles.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Metric selects which score column drives the minimality comparison.
type Metric int

const (
	// MetricMedian minimizes the median score across prediction methods.
	MetricMedian Metric = iota
	// MetricLowest minimizes the best (lowest) score across prediction methods.
	MetricLowest
)

func (m Metric) String() string {
	switch m {
	case MetricMedian:
		return "median"
	case MetricLowest:
		return "lowest"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMetric converts a metric name to a Metric. The empty string yields the
// default, MetricMedian.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "median":
		return MetricMedian, nil
	case "lowest":
		return MetricLowest, nil
	default:
		return MetricMedian, fmt.Errorf("unknown top score metric: %q (want lowest or median)", s)
	}
}

// Mode distinguishes variant-style reports from binder-style reports.
type Mode int

const (
	// ModeVariant reports carry genomic coordinates per mutation.
	ModeVariant Mode = iota
	// ModeBinder reports carry a single mutation identifier.
	ModeBinder
)

func (m Mode) String() string {
	switch m {
	case ModeVariant:
		return "variant"
	case ModeBinder:
		return "binder"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// FileTypes lists the report producers recognized by ParseFileType.
var FileTypes = []string{"pVACseq", "pVACfuse", "pVACvector", "pVACsplice", "pVACbind"}

// ParseFileType maps a report producer name to a Mode. Only pVACbind reports
// are binder-style; every other producer writes variant-style reports.
// The empty string yields ModeVariant.
func ParseFileType(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModeVariant, nil
	}
	for _, ft := range FileTypes {
		if strings.EqualFold(s, ft) {
			if ft == "pVACbind" {
				return ModeBinder, nil
			}
			return ModeVariant, nil
		}
	}
	switch strings.ToLower(s) {
	case "variant":
		return ModeVariant, nil
	case "binder":
		return ModeBinder, nil
	}
	return ModeVariant, fmt.Errorf("unknown file type: %q (want one of %s)", s, strings.Join(FileTypes, ", "))
}

var (
	// ErrMissingColumn reports a required column absent from the header or a row.
	ErrMissingColumn = errors.New("missing column")
	// ErrInvalidNumber reports a numeric column whose text does not parse.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrRaggedRow reports a row with more fields than the header.
	ErrRaggedRow = errors.New("row has more fields than header")
)

// ColumnError describes a failure tied to one column of one input line.
// Line is 1-based and counts the header as line 1.
type ColumnError struct {
	Column string
	Line   int
	Value  string
	Err    error
}

func (e *ColumnError) Error() string {
	if errors.Is(e.Err, ErrInvalidNumber) {
		return fmt.Sprintf("line %d: column %q: %v %q", e.Line, e.Column, e.Err, e.Value)
	}
	return fmt.Sprintf("line %d: column %q: %v", e.Line, e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

// Summary holds the outcome of one filter or sort run.
type Summary struct {
	Input       string        `json:"input,omitempty"`
	Output      string        `json:"output,omitempty"`
	Mode        Mode          `json:"mode"`
	Metric      Metric        `json:"metric"`
	RowsRead    int           `json:"rows_read"`
	RowsWritten int           `json:"rows_written"`
	Replaced    int           `json:"replaced"`
	Discarded   int           `json:"discarded"`
	Duration    time.Duration `json:"-"`
}

// MarshalJSON implements custom JSON marshaling so Duration serializes as milliseconds.
func (s Summary) MarshalJSON() ([]byte, error) {
	type Alias Summary
	return json.Marshal(struct {
		Alias
		DurationMS int64 `json:"duration_ms"`
	}{
		Alias:      Alias(s),
		DurationMS: s.Duration.Milliseconds(),
	})
}
