package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		first := !m.ready
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.sizer.OnViewportChange(m.viewport())
		if first {
			// The first render pass computes widths for the initial
			// viewport itself; only mark mounted after caching it.
			m.sizer.MarkMounted()
		}
		return m, nil

	case LayoutResetMsg:
		for col := range m.widths {
			if col >= msg.Col {
				delete(m.widths, col)
			}
		}
		return m, nil

	case DataReloadedMsg:
		m.rowCount = msg.Rows
		m.colCount = msg.Cols
		m.widths = make(map[int]int)
		m.clampOffsets()
		m.sizer.OnViewportChange(m.viewport())
		m.status = fmt.Sprintf("reloaded: %d rows", msg.Rows)
		m.err = nil
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		m.sizer.Close()
		return m, tea.Quit
	case "down", "j":
		return m.scrollRows(1), nil
	case "up", "k":
		return m.scrollRows(-1), nil
	case "pgdown", "ctrl+d":
		return m.scrollRows(m.visibleRows()), nil
	case "pgup", "ctrl+u":
		return m.scrollRows(-m.visibleRows()), nil
	case "g", "home":
		return m.scrollRowsTo(0), nil
	case "G", "end":
		return m.scrollRowsTo(m.maxRowOffset()), nil
	case "right", "l":
		return m.scrollCols(1), nil
	case "left", "h":
		return m.scrollCols(-1), nil
	}
	return m, nil
}

// scrollRows scrolls vertically by delta rows and notifies the sizer.
func (m Model) scrollRows(delta int) Model {
	return m.scrollRowsTo(m.rowOffset + delta)
}

func (m Model) scrollRowsTo(offset int) Model {
	if offset < 0 {
		offset = 0
	}
	if max := m.maxRowOffset(); offset > max {
		offset = max
	}
	if offset == m.rowOffset {
		return m
	}
	m.rowOffset = offset
	m.sizer.OnViewportChange(m.viewport())
	return m
}

// scrollCols scrolls horizontally by delta columns and notifies the sizer.
func (m Model) scrollCols(delta int) Model {
	offset := m.colOffset + delta
	if offset < 0 {
		offset = 0
	}
	if offset > m.colCount-1 {
		offset = m.colCount - 1
	}
	if offset < 0 || offset == m.colOffset {
		return m
	}
	m.colOffset = offset
	m.sizer.OnViewportChange(m.viewport())
	return m
}

// clampOffsets pulls the scroll position back inside the data after a
// reload shrank it.
func (m *Model) clampOffsets() {
	if max := m.maxRowOffset(); m.rowOffset > max {
		m.rowOffset = max
	}
	if m.colOffset > m.colCount-1 {
		m.colOffset = m.colCount - 1
	}
	if m.colOffset < 0 {
		m.colOffset = 0
	}
}
