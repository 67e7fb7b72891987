package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuroradiology/grid/internal/dataset"
	"github.com/neuroradiology/grid/measure"
	"github.com/neuroradiology/grid/sizing"
	"github.com/neuroradiology/grid/tui"
)

// AppDependencies contains the dependencies for the main application.
type AppDependencies struct {
	DataPath       string
	Full           bool
	IgnoreScroll   bool
	Font           string
	MinColumnWidth int
	CellMargin     int
	DebounceDelay  time.Duration
	StoreOpener    func(string) (*dataset.Store, error)
	WatcherCreator func(string) (dataset.WatcherInterface, error)
	ProgramRunner  func(*tea.Program) error
}

func run(deps *AppDependencies) error {
	// Load the data file into the cell store
	st, err := deps.StoreOpener(":memory:")
	if err != nil {
		return fmt.Errorf("failed to open store: %v", err)
	}
	defer st.Close()

	if err := st.LoadFile(deps.DataPath); err != nil {
		return fmt.Errorf("failed to load data: %v", err)
	}

	// Configure the column sizer for terminal cells
	cfg := sizing.Config{
		MinColumnWidth: deps.MinColumnWidth,
		CellMargin:     deps.CellMargin,
		DebounceDelay:  deps.DebounceDelay,
		IgnoreScroll:   deps.IgnoreScroll,
		Font:           deps.Font,
	}
	if deps.Full {
		cfg.Strategy = sizing.StrategyFull
		cfg.TotalRows = st.RowCount()
	}

	sizer, err := sizing.New(cfg, st, measure.NewCellMeasurer())
	if err != nil {
		return fmt.Errorf("failed to build sizer: %v", err)
	}
	defer sizer.Close()

	// Create TUI model
	model := tui.NewModel(st, sizer)

	// Start file watcher
	watcher, err := deps.WatcherCreator(deps.DataPath)
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %v", err)
	}
	defer watcher.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	// The debounced re-layout fires on a timer goroutine; route it back
	// into the program loop as a message.
	sizer.AttachHost(tui.NewHostAdapter(p))

	// Start goroutine to handle file watching
	go runWatchLoop(p, watcher, st, deps.DataPath)

	// Run the program
	return deps.ProgramRunner(p)
}

// runWatchLoop reloads the store whenever the data file changes and keeps
// the TUI informed.
func runWatchLoop(sender tui.ProgramSender, watcher dataset.WatcherInterface, st *dataset.Store, path string) {
	for {
		select {
		case _, ok := <-watcher.Reloads():
			if !ok {
				return
			}
			if err := st.LoadFile(path); err != nil {
				// Editors often replace files non-atomically; report and
				// wait for the next change.
				sender.Send(tui.ErrorMsg{Err: err})
				continue
			}
			sender.Send(tui.DataReloadedMsg{Rows: st.RowCount(), Cols: st.ColCount()})

		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "Warning: watcher error: %v\n", err)
		}
	}
}
