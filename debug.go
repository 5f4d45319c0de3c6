package controls

import (
	"io"
	"time"

	"github.com/kataras/golog"
)

// logger receives every diagnostic of the package. Warnings and errors are
// printed by default; SetDebugMode adds per-gesture statistics.
var logger = golog.Child("[controls]")

// debugEnabled mirrors the most recent SetDebugMode call.
var debugEnabled bool

// SetDebugMode enables or disables debug logging. When enabled, each
// completed gesture logs its duration, move count and inertial frames.
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
	if enabled {
		logger.SetLevel("debug")
	} else {
		logger.SetLevel("warn")
	}
}

// SetLogOutput redirects the package's diagnostics, e.g. to a test buffer.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// gestureStats holds per-gesture counters. Only logged in debug mode.
type gestureStats struct {
	started         time.Time
	moves           int
	simulatedFrames int
}

func (s *gestureStats) begin(now time.Time) {
	*s = gestureStats{started: now}
}

// end logs the finished gesture and resets the counters.
func (s *gestureStats) end(now time.Time) {
	if debugEnabled && !s.started.IsZero() {
		logger.Debugf("gesture: %v | moves: %d | inertial frames: %d",
			now.Sub(s.started), s.moves, s.simulatedFrames)
	}
	*s = gestureStats{}
}
