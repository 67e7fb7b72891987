// Package tui implements the demo host grid: a virtualized, scrollable
// table over a dataset, with column widths supplied by the sizing package.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/neuroradiology/grid/sizing"
)

// RowSource provides the grid's data. *dataset.Store satisfies it.
type RowSource interface {
	Value(row, col int) (string, bool)
	Header(col int) (string, bool)
	RowCount() int
	ColCount() int
}

// Model represents the grid state.
type Model struct {
	src   RowSource
	sizer *sizing.ColumnSizer

	// Terminal size
	width  int
	height int

	// Scroll position (top-left visible cell)
	rowOffset int
	colOffset int

	// Data dimensions, refreshed on reload
	rowCount int
	colCount int

	// Cached column widths; entries are dropped when the sizer asks the
	// host to re-layout from an origin onward.
	widths map[int]int

	// State
	ready    bool
	quitting bool
	status   string
	err      error

	// Styles
	styles Styles
}

// Styles contains the lipgloss styles for the grid.
type Styles struct {
	Header    lipgloss.Style
	Cell      lipgloss.Style
	CellAlt   lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style
}

// DefaultStyles returns the default grid styles.
func DefaultStyles() Styles {
	var styles Styles

	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red

	styles.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Cell = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255"))

	styles.CellAlt = lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	styles.Status = lipgloss.NewStyle().
		Foreground(secondaryColor)

	styles.StatusErr = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	return styles
}

// NewModel creates a grid model over src, sized by sizer.
func NewModel(src RowSource, sizer *sizing.ColumnSizer) Model {
	return Model{
		src:      src,
		sizer:    sizer,
		rowCount: src.RowCount(),
		colCount: src.ColCount(),
		widths:   make(map[int]int),
		styles:   DefaultStyles(),
	}
}

// colWidth returns the display width for col, computing and caching it on
// first use. The cache is the layout the sizer invalidates through
// LayoutResetMsg.
func (m Model) colWidth(col int) int {
	if w, ok := m.widths[col]; ok {
		return w
	}
	w := m.sizer.ColumnWidth(col)
	m.widths[col] = w
	return w
}

// visibleRows is how many data rows fit under the header and status lines.
func (m Model) visibleRows() int {
	rows := m.height - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

// visibleCols counts the columns that fit across the terminal starting at
// the current column offset. At least one column is always shown.
func (m Model) visibleCols() int {
	used, n := 0, 0
	for col := m.colOffset; col < m.colCount; col++ {
		used += m.colWidth(col) + 1 // separator
		if n > 0 && used > m.width {
			break
		}
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

// viewport derives the sizing viewport from the scroll position and the
// terminal size.
func (m Model) viewport() sizing.Viewport {
	rowStop := m.rowOffset + m.visibleRows()
	if rowStop > m.rowCount {
		rowStop = m.rowCount
	}
	if rowStop < m.rowOffset {
		rowStop = m.rowOffset
	}

	colStop := m.colOffset + m.visibleCols()
	if colStop > m.colCount {
		colStop = m.colCount
	}
	if colStop < m.colOffset {
		colStop = m.colOffset
	}

	return sizing.Viewport{
		RowStart: m.rowOffset,
		RowStop:  rowStop,
		ColStart: m.colOffset,
		ColStop:  colStop,
	}
}

// maxRowOffset is the furthest the grid can scroll down.
func (m Model) maxRowOffset() int {
	max := m.rowCount - m.visibleRows()
	if max < 0 {
		max = 0
	}
	return max
}
