package sizing

// Coordinator owns the cached viewport and decides whether a viewport
// change warrants asking the host grid to re-layout. Qualifying changes
// are debounced so a burst of scroll events produces one trailing reset.
type Coordinator struct {
	cfg     Config
	view    *Viewport
	deb     *debouncer
	host    LayoutResetter
	mounted bool
}

func newCoordinator(cfg Config, view *Viewport, deb *debouncer) *Coordinator {
	return &Coordinator{cfg: cfg, view: view, deb: deb}
}

// AttachHost late-binds the host grid. Scheduled resets that fire while
// the host is still absent are dropped, not queued.
func (c *Coordinator) AttachHost(h LayoutResetter) {
	c.host = h
}

// MarkMounted transitions the coordinator out of its pre-mount state.
// One-way; the initial layout pass already computed widths, so changes
// before this point must not re-trigger it.
func (c *Coordinator) MarkMounted() {
	c.mounted = true
}

// Viewport returns a copy of the cached viewport.
func (c *Coordinator) Viewport() Viewport {
	return *c.view
}

// OnViewportChange caches vp and, unless suppressed, schedules a debounced
// re-layout with vp's start indices as the invalidation origin.
//
// The cache write happens before the suppression decision so the estimator
// always reflects the latest scroll position even when no re-layout runs.
func (c *Coordinator) OnViewportChange(vp Viewport) {
	prev := *c.view
	*c.view = vp

	if c.suppress(vp, prev) {
		return
	}

	row, col := vp.RowStart, vp.ColStart
	c.deb.call(func() {
		if h := c.host; h != nil {
			h.ResetAfterIndices(row, col)
		}
	})
}

// suppress reports whether a recalculation trigger should be swallowed.
// Any one condition suffices.
func (c *Coordinator) suppress(vp, prev Viewport) bool {
	switch {
	case c.cfg.Strategy == StrategyFull:
		// All rows were considered up front; re-sampling on scroll
		// cannot change the answer.
		return true
	case c.cfg.IgnoreScroll:
		return true
	case vp.sameOrigin(prev):
		// Sub-row scrolling or a stop-index-only change; no new rows
		// entered at the top-left.
		return true
	case !c.mounted:
		return true
	}
	return false
}

// Close cancels any pending debounced reset.
func (c *Coordinator) Close() {
	c.deb.stop()
}
