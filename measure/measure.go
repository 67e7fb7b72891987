// Package measure provides terminal text measurement for the sizing
// package. Widths are terminal display cells, computed with
// mattn/go-runewidth so emoji and CJK double-width characters measure
// correctly.
package measure

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/neuroradiology/grid/sizing"
)

// Measurement profile names accepted by SetFont. A terminal has no fonts
// to switch, but it does have ambiguous-width conventions; profiles map
// the font slot onto runewidth conditions.
const (
	ProfileDefault     = "default"
	ProfileEastAsian   = "east-asian"
	ProfileStrictEmoji = "strict-emoji"
)

// CellMeasurer measures strings in terminal display cells under a mutable
// measurement profile. The active profile applies to every measurement
// until changed; results taken under a previous profile should not be
// assumed valid afterwards.
type CellMeasurer struct {
	profile string
	cond    *runewidth.Condition
}

var _ sizing.Measurer = (*CellMeasurer)(nil)

// NewCellMeasurer returns a measurer using the default profile.
func NewCellMeasurer() *CellMeasurer {
	m := &CellMeasurer{}
	_ = m.SetFont(ProfileDefault)
	return m
}

// MeasureText returns the display-cell width of s under the active profile.
func (m *CellMeasurer) MeasureText(s string) (sizing.Metrics, error) {
	return sizing.Metrics{Width: float64(m.cond.StringWidth(s))}, nil
}

// SetFont switches the active measurement profile. An unknown profile
// name is an error and leaves the active profile unchanged.
func (m *CellMeasurer) SetFont(font string) error {
	cond := runewidth.NewCondition()
	switch font {
	case ProfileDefault, "":
	case ProfileEastAsian:
		cond.EastAsianWidth = true
	case ProfileStrictEmoji:
		cond.StrictEmojiNeutral = true
	default:
		return fmt.Errorf("measure: unknown profile %q", font)
	}
	m.profile = font
	m.cond = cond
	return nil
}

// Profile returns the active profile name.
func (m *CellMeasurer) Profile() string {
	return m.profile
}
