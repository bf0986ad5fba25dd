package topscore

import "github.com/vartools/topscore/internal/sorter"

// runConfig holds the resolved configuration for a run.
type runConfig struct {
	metric Metric
	mode   Mode
	policy sorter.Policy
}

// Option configures a filter or sort run.
type Option func(*runConfig)

// WithMetric selects the score the filter minimizes (default: MetricMedian).
func WithMetric(m Metric) Option {
	return func(c *runConfig) {
		c.metric = m
	}
}

// WithMode selects variant-style or binder-style reports (default: ModeVariant).
func WithMode(m Mode) Option {
	return func(c *runConfig) {
		c.mode = m
	}
}

// WithSortPolicy replaces the mode's built-in row ordering.
func WithSortPolicy(p SortPolicy) Option {
	return func(c *runConfig) {
		c.policy = p
	}
}
