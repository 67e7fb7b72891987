package sizing

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
)

const testDelay = 300 * time.Millisecond

// newTestSizer builds a mounted sizer with an attached mock host and a
// fake clock, the common fixture for coordinator tests.
func newTestSizer(t *testing.T, cfg Config, host LayoutResetter) (*ColumnSizer, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	s, err := NewWithClock(cfg, nil, nil, clock)
	if err != nil {
		t.Fatalf("NewWithClock() error = %v", err)
	}
	s.AttachHost(host)
	s.MarkMounted()
	return s, clock
}

func TestViewportAlwaysCached(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"lazy", Config{}},
		{"scroll ignored", Config{IgnoreScroll: true}},
		{"full", Config{Strategy: StrategyFull, TotalRows: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSizer(t, tt.cfg, nil)
			vp := Viewport{RowStart: 7, RowStop: 20, ColStart: 3, ColStop: 9}
			s.OnViewportChange(vp)
			if got := s.Viewport(); got != vp {
				t.Errorf("Viewport() = %+v, want %+v", got, vp)
			}
		})
	}
}

func TestSameOriginNeverSchedules(t *testing.T) {
	s, clock := newTestSizer(t, Config{}, nil)

	s.OnViewportChange(Viewport{RowStart: 5, RowStop: 20, ColStart: 2, ColStop: 8})
	clock.advance(testDelay)

	// Same start indices, different stop indices: pure within-bounds
	// change, must not schedule.
	s.OnViewportChange(Viewport{RowStart: 5, RowStop: 40, ColStart: 2, ColStop: 12})
	if clock.pending() != 0 {
		t.Errorf("pending timers = %d after same-origin change, want 0", clock.pending())
	}
}

func TestDebounceCollapsesBurstToLastArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := NewMockLayoutResetter(ctrl)
	host.EXPECT().ResetAfterIndices(30, 6).Times(1)

	s, clock := newTestSizer(t, Config{}, host)

	for i := 1; i <= 3; i++ {
		s.OnViewportChange(Viewport{RowStart: i * 10, RowStop: i*10 + 20, ColStart: i * 2, ColStop: i*2 + 4})
		clock.advance(testDelay / 3)
	}
	clock.advance(testDelay)
}

func TestDebounceTimerResetsOnEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := NewMockLayoutResetter(ctrl)
	fired := 0
	host.EXPECT().ResetAfterIndices(20, 0).Times(1).Do(func(int, int) { fired++ })

	s, clock := newTestSizer(t, Config{}, host)

	s.OnViewportChange(Viewport{RowStart: 10, RowStop: 30})
	clock.advance(200 * time.Millisecond)
	s.OnViewportChange(Viewport{RowStart: 20, RowStop: 40})
	clock.advance(200 * time.Millisecond)

	// 400ms elapsed but never 300ms of quiet; nothing may have fired yet.
	if fired != 0 {
		t.Fatalf("reset fired %d times before the quiet period elapsed", fired)
	}

	clock.advance(100 * time.Millisecond)
	if fired != 1 {
		t.Errorf("reset fired %d times after the quiet period, want 1", fired)
	}
}

func TestFullStrategyNeverSchedules(t *testing.T) {
	s, clock := newTestSizer(t, Config{Strategy: StrategyFull, TotalRows: 100}, nil)

	s.OnViewportChange(Viewport{RowStart: 10, RowStop: 30, ColStart: 1, ColStop: 5})
	s.OnViewportChange(Viewport{RowStart: 50, RowStop: 70, ColStart: 2, ColStop: 6})
	clock.advance(testDelay)

	if len(clock.timers) != 0 {
		t.Errorf("scheduled %d timers under the full strategy, want 0", len(clock.timers))
	}
}

func TestIgnoreScrollSuppresses(t *testing.T) {
	s, clock := newTestSizer(t, Config{IgnoreScroll: true}, nil)

	s.OnViewportChange(Viewport{RowStart: 10, RowStop: 30})
	clock.advance(testDelay)

	if len(clock.timers) != 0 {
		t.Errorf("scheduled %d timers with scroll recalculation off, want 0", len(clock.timers))
	}
}

func TestUnmountedSuppressesUntilMarkMounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := NewMockLayoutResetter(ctrl)
	host.EXPECT().ResetAfterIndices(20, 0).Times(1)

	clock := newFakeClock()
	s, err := NewWithClock(Config{}, nil, nil, clock)
	if err != nil {
		t.Fatalf("NewWithClock() error = %v", err)
	}
	s.AttachHost(host)

	// Before first mount: cached, but never scheduled.
	s.OnViewportChange(Viewport{RowStart: 10, RowStop: 30})
	clock.advance(testDelay)
	if len(clock.timers) != 0 {
		t.Fatalf("scheduled %d timers before mount, want 0", len(clock.timers))
	}

	s.MarkMounted()
	s.OnViewportChange(Viewport{RowStart: 20, RowStop: 40})
	clock.advance(testDelay)
}

func TestMissingHostDropsResetSilently(t *testing.T) {
	s, clock := newTestSizer(t, Config{}, nil)

	s.OnViewportChange(Viewport{RowStart: 10, RowStop: 30})
	clock.advance(testDelay) // must not panic with no host attached
}

func TestHostAttachedAfterScheduleStillFires(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := NewMockLayoutResetter(ctrl)
	host.EXPECT().ResetAfterIndices(10, 0).Times(1)

	clock := newFakeClock()
	s, err := NewWithClock(Config{}, nil, nil, clock)
	if err != nil {
		t.Fatalf("NewWithClock() error = %v", err)
	}
	s.MarkMounted()

	// The host reference is late-bound; it only needs to exist by the
	// time the debounced call fires.
	s.OnViewportChange(Viewport{RowStart: 10, RowStop: 30})
	s.AttachHost(host)
	clock.advance(testDelay)
}

func TestCloseCancelsPendingReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := NewMockLayoutResetter(ctrl) // no expected calls

	s, clock := newTestSizer(t, Config{}, host)

	s.OnViewportChange(Viewport{RowStart: 10, RowStop: 30})
	s.Close()
	clock.advance(testDelay)
}
