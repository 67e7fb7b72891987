package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View renders the grid.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Loading...\n"
	}

	if m.colCount == 0 {
		return m.styles.Status.Render("no data") + "\n"
	}

	var lines []string
	lines = append(lines, m.renderHeader())

	vp := m.viewport()
	for row := vp.RowStart; row < vp.RowStop; row++ {
		lines = append(lines, m.renderRow(row))
	}

	lines = append(lines, m.renderStatus())

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderHeader renders the column header row.
func (m Model) renderHeader() string {
	var cells []string
	vp := m.viewport()
	for col := vp.ColStart; col < vp.ColStop; col++ {
		name, _ := m.src.Header(col)
		cells = append(cells, m.styles.Header.Render(fit(name, m.colWidth(col))))
	}
	return strings.Join(cells, " ")
}

// renderRow renders one data row.
func (m Model) renderRow(row int) string {
	style := m.styles.Cell
	if row%2 == 1 {
		style = m.styles.CellAlt
	}

	var cells []string
	vp := m.viewport()
	for col := vp.ColStart; col < vp.ColStop; col++ {
		val, _ := m.src.Value(row, col)
		cells = append(cells, style.Render(fit(val, m.colWidth(col))))
	}
	return strings.Join(cells, " ")
}

// renderStatus renders the bottom status line.
func (m Model) renderStatus() string {
	if m.err != nil {
		return m.styles.StatusErr.Render("error: " + m.err.Error())
	}

	pos := fmt.Sprintf("row %d/%d  col %d/%d", m.rowOffset+1, m.rowCount, m.colOffset+1, m.colCount)
	if m.status != "" {
		pos += "  " + m.status
	}
	return m.styles.Status.Render(pos)
}

// fit pads or truncates s to exactly width display cells.
func fit(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
