package tui

// LayoutResetMsg is sent when the sizer asks the host to invalidate cached
// layout from the given cell onward.
type LayoutResetMsg struct {
	Row int
	Col int
}

// DataReloadedMsg is sent after the dataset was reloaded from disk.
type DataReloadedMsg struct {
	Rows int
	Cols int
}

// ErrorMsg is sent when a background error occurs.
type ErrorMsg struct {
	Err error
}
