package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgramSender is an interface for sending messages to a Bubbletea program.
type ProgramSender interface {
	Send(msg tea.Msg)
}

// HostAdapter bridges the sizer's debounced re-layout calls onto the
// program's event loop. The debounce timer fires on its own goroutine,
// so the reset must travel as a message instead of touching the model.
type HostAdapter struct {
	sender ProgramSender
}

// NewHostAdapter creates a host adapter over sender.
func NewHostAdapter(sender ProgramSender) *HostAdapter {
	return &HostAdapter{sender: sender}
}

// ResetAfterIndices implements sizing.LayoutResetter.
func (h *HostAdapter) ResetAfterIndices(row, col int) {
	h.sender.Send(LayoutResetMsg{Row: row, Col: col})
}
