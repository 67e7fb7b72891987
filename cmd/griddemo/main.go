// Command griddemo renders a CSV file in a virtualized scrollable grid
// whose column widths are estimated by the sizing package.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuroradiology/grid/internal/dataset"
	"github.com/neuroradiology/grid/measure"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	full := flag.Bool("full", false, "size columns from the whole data set up front")
	ignoreScroll := flag.Bool("ignore-scroll", false, "never recalculate widths on scroll")
	font := flag.String("font", measure.ProfileDefault, "measurement profile: default, east-asian or strict-emoji")
	minWidth := flag.Int("min-width", 6, "minimum column width in cells")
	margin := flag.Int("margin", 2, "spacing margin added to each column, in cells")
	debounce := flag.Duration("debounce", 300*time.Millisecond, "quiet period before a re-layout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <data.csv>\n", os.Args[0])
		flag.PrintDefaults()
		exitFunc(2)
		return
	}

	err := run(&AppDependencies{
		DataPath:       flag.Arg(0),
		Full:           *full,
		IgnoreScroll:   *ignoreScroll,
		Font:           *font,
		MinColumnWidth: *minWidth,
		CellMargin:     *margin,
		DebounceDelay:  *debounce,
		StoreOpener:    dataset.Open,
		WatcherCreator: func(path string) (dataset.WatcherInterface, error) {
			return dataset.NewWatcher(path)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}
