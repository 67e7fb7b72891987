// Package sizing computes and maintains per-column display widths for a
// virtualized grid. It samples visible cell values, measures their rendered
// width, and decides when a scroll warrants asking the host grid to re-layout.
package sizing

// Viewport describes the currently visible cell rectangle of the grid.
// All indices are non-negative and each stop index is >= its start index.
// The host replaces the whole record on every change notification.
type Viewport struct {
	RowStart int
	RowStop  int
	ColStart int
	ColStop  int
}

// sameOrigin reports whether both start indices match. Stop-index-only
// changes (e.g. the window growing taller) do not count as scrolling.
func (v Viewport) sameOrigin(o Viewport) bool {
	return v.RowStart == o.RowStart && v.ColStart == o.ColStart
}
