package sizing

import "math"

// Estimator computes a column's display width by sampling a bounded range
// of that column's values and measuring each one. It reads the viewport
// cached by the Coordinator but never writes it.
type Estimator struct {
	cfg  Config
	src  ValueSource
	meas Measurer
	view *Viewport
}

func newEstimator(cfg Config, src ValueSource, meas Measurer, view *Viewport) *Estimator {
	return &Estimator{cfg: cfg, src: src, meas: meas, view: view}
}

// ColumnWidth returns the width for col: the maximum measured value width
// in the sample range plus the cell margin, floored at MinColumnWidth.
// One measurement call per sampled non-null value.
func (e *Estimator) ColumnWidth(col int) int {
	width := e.cfg.MinColumnWidth

	if e.src == nil || e.meas == nil {
		return width
	}

	for row := e.view.RowStart; row < e.sampleBound(); row++ {
		val, ok := e.src.Value(row, col)
		if !ok {
			continue
		}
		m, err := e.meas.MeasureText(val)
		if err != nil {
			// Measurement surface not ready; treat like a null value.
			continue
		}
		if w := int(math.Ceil(m.Width)) + e.cfg.CellMargin; w > width {
			width = w
		}
	}

	return width
}

// sampleBound is the exclusive upper row index for sampling. The full
// strategy always considers the whole data set; lazy considers everything
// down to the bottom of the viewport, but at least InitialSampleRows.
func (e *Estimator) sampleBound() int {
	if e.cfg.Strategy == StrategyFull {
		return e.cfg.TotalRows
	}
	if e.view.RowStop > e.cfg.InitialSampleRows {
		return e.view.RowStop
	}
	return e.cfg.InitialSampleRows
}
