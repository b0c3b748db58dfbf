// Package timing measures the critical section of a shortest-path computation.
//
// A Stopwatch captures two monotonic timestamps, one just before the adjacency
// is built and one right after the relax loop drains the queue. It reports the
// difference as an integer count of microseconds, truncated toward zero. That
// count is the only artifact persisted to the shared timing log.
package timing

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for timing configuration.
var (
	// ErrNotStarted indicates Stop was called before Start.
	ErrNotStarted = errors.New("timing: stopwatch not started")

	// ErrUnknownRegion indicates an unrecognised region name.
	ErrUnknownRegion = errors.New("timing: unknown region")
)

// Clock abstracts time.Now so tests can drive the stopwatch.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, which carries a monotonic reading.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Stopwatch measures one interval. It is not safe for concurrent use.
type Stopwatch struct {
	clock Clock
	start time.Time
	end   time.Time
}

// NewStopwatch returns a stopwatch on c, or on SystemClock when c is nil.
func NewStopwatch(c Clock) *Stopwatch {
	if c == nil {
		c = SystemClock{}
	}

	return &Stopwatch{clock: c}
}

// Start records the start timestamp. Calling it again restarts the interval.
func (s *Stopwatch) Start() {
	s.start = s.clock.Now()
	s.end = time.Time{}
}

// Started reports whether Start has been called.
func (s *Stopwatch) Started() bool { return !s.start.IsZero() }

// Stop records the end timestamp and returns the elapsed duration.
func (s *Stopwatch) Stop() (time.Duration, error) {
	if !s.Started() {
		return 0, ErrNotStarted
	}
	s.end = s.clock.Now()

	return s.Elapsed(), nil
}

// Elapsed returns end-start, or the running time if Stop has not been called.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.Started() {
		return 0
	}
	if s.end.IsZero() {
		return s.clock.Now().Sub(s.start)
	}

	return s.end.Sub(s.start)
}

// Micros returns Elapsed as whole microseconds.
func (s *Stopwatch) Micros() int64 { return s.Elapsed().Microseconds() }

// Region selects where the stopwatch starts.
type Region string

const (
	// RegionLoadAndSolve starts before the edge lines are read. Recorded
	// results were measured this way, so it is the default.
	RegionLoadAndSolve Region = "load+solve"

	// RegionSolveOnly starts after loading and times the algorithm alone.
	RegionSolveOnly Region = "solve"
)

// ParseRegion maps a name to a Region. The empty string is RegionLoadAndSolve.
func ParseRegion(s string) (Region, error) {
	switch Region(s) {
	case "", RegionLoadAndSolve:
		return RegionLoadAndSolve, nil
	case RegionSolveOnly:
		return RegionSolveOnly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, s)
	}
}
