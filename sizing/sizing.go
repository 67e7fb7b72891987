package sizing

// ValueSource is the host grid's cell value accessor. The second return
// value reports whether the cell holds a value; absent cells are skipped
// during estimation.
type ValueSource interface {
	Value(row, col int) (string, bool)
}

// LayoutResetter is the host grid's layout invalidation hook. All rows and
// columns at or after the given origin are considered stale and must be
// re-measured by the host on its next width query.
type LayoutResetter interface {
	ResetAfterIndices(row, col int)
}

// Measurer measures rendered text under a mutable font profile.
// Measurements taken under a previous profile are not guaranteed to
// remain valid after SetFont.
type Measurer interface {
	MeasureText(s string) (Metrics, error)
	SetFont(font string) error
}

// Metrics is the measured rendered extent of a string.
type Metrics struct {
	Width float64
}

// ColumnSizer ties a width estimator and a viewport change coordinator to
// one host grid. All methods must be called from the host's event
// goroutine; only the debounced re-layout fires elsewhere.
type ColumnSizer struct {
	est   *Estimator
	coord *Coordinator
	meas  Measurer
}

// New builds a ColumnSizer. src and meas may be nil, in which case every
// sample is skipped and ColumnWidth returns the configured floor.
// Construction fails iff the config is invalid.
func New(cfg Config, src ValueSource, meas Measurer) (*ColumnSizer, error) {
	return NewWithClock(cfg, src, meas, systemClock{})
}

// NewWithClock is New with an explicit timer source. It is the seam that
// lets tests drive the debounce window with virtual time.
func NewWithClock(cfg Config, src ValueSource, meas Measurer, clock Clock) (*ColumnSizer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	if cfg.Font != "" && meas != nil {
		if err := meas.SetFont(cfg.Font); err != nil {
			return nil, err
		}
	}

	view := &Viewport{}
	return &ColumnSizer{
		est:   newEstimator(cfg, src, meas, view),
		coord: newCoordinator(cfg, view, newDebouncer(cfg.DebounceDelay, clock)),
		meas:  meas,
	}, nil
}

// ColumnWidth returns the display width for the given column, derived from
// the sampled values currently in scope. Pluggable into the host grid's
// column-sizing slot.
func (s *ColumnSizer) ColumnWidth(col int) int {
	return s.est.ColumnWidth(col)
}

// OnViewportChange is the handler for the host grid's viewport-change
// event stream.
func (s *ColumnSizer) OnViewportChange(vp Viewport) {
	s.coord.OnViewportChange(vp)
}

// AttachHost late-binds the host grid's re-layout hook. Until it is
// called, scheduled re-layouts are silently dropped.
func (s *ColumnSizer) AttachHost(h LayoutResetter) {
	s.coord.AttachHost(h)
}

// MarkMounted records that the host completed its first stable layout.
// Viewport changes before this never trigger a re-layout.
func (s *ColumnSizer) MarkMounted() {
	s.coord.MarkMounted()
}

// SetFont switches the measurement profile for subsequent width queries.
// The cached viewport is unaffected.
func (s *ColumnSizer) SetFont(font string) error {
	if s.meas == nil {
		return nil
	}
	return s.meas.SetFont(font)
}

// Viewport returns a copy of the most recently cached viewport.
func (s *ColumnSizer) Viewport() Viewport {
	return s.coord.Viewport()
}

// Close stops any pending debounced re-layout.
func (s *ColumnSizer) Close() {
	s.coord.Close()
}
