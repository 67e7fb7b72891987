package sizing

import (
	"errors"
	"time"
)

// Strategy selects how many rows the estimator samples.
type Strategy int

const (
	// StrategyLazy estimates from the rows seen so far: everything from the
	// top of the viewport down to at least InitialSampleRows.
	StrategyLazy Strategy = iota
	// StrategyFull estimates from the entire data set once, up front.
	// Requires TotalRows at construction.
	StrategyFull
)

// Default configuration values, used for zero-valued Config fields.
const (
	DefaultInitialSampleRows = 20
	DefaultMinColumnWidth    = 60
	DefaultCellMargin        = 10
	DefaultDebounceDelay     = 300 * time.Millisecond
)

// ErrTotalRowsRequired is returned by New when the full strategy is
// requested without a known total row count.
var ErrTotalRowsRequired = errors.New("sizing: StrategyFull requires TotalRows")

// Config holds construction-time options for a ColumnSizer.
// The zero value is usable: lazy strategy, scroll recalculation enabled,
// defaults for every numeric field.
type Config struct {
	// InitialSampleRows is the minimum number of rows sampled under the
	// lazy strategy, even before the viewport has grown that far.
	InitialSampleRows int

	// MinColumnWidth is the floor below which ColumnWidth never returns.
	MinColumnWidth int

	// CellMargin is added to every measured value width.
	CellMargin int

	// DebounceDelay is the quiet period before a scheduled re-layout fires.
	DebounceDelay time.Duration

	// Strategy selects lazy or full sampling.
	Strategy Strategy

	// IgnoreScroll disables scroll-triggered width recalculation.
	// The zero value keeps recalculation on.
	IgnoreScroll bool

	// Font names the measurement profile passed to the Measurer at
	// construction. Empty leaves the Measurer's active profile untouched.
	Font string

	// TotalRows is the size of the data set. Required for StrategyFull,
	// ignored otherwise.
	TotalRows int
}

// withDefaults returns a copy with defaults applied to zero-valued fields.
func (c Config) withDefaults() Config {
	if c.InitialSampleRows == 0 {
		c.InitialSampleRows = DefaultInitialSampleRows
	}
	if c.MinColumnWidth == 0 {
		c.MinColumnWidth = DefaultMinColumnWidth
	}
	if c.CellMargin == 0 {
		c.CellMargin = DefaultCellMargin
	}
	if c.DebounceDelay == 0 {
		c.DebounceDelay = DefaultDebounceDelay
	}
	return c
}

// validate checks cross-field invariants before defaults are relevant.
func (c Config) validate() error {
	if c.Strategy == StrategyFull && c.TotalRows <= 0 {
		return ErrTotalRowsRequired
	}
	return nil
}
