// Package scheduler drives a session with a fixed logic timestep that is
// independent of how often the frontend polls input and draws.
package scheduler

import (
	"context"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// DefaultInterval is how much wall-clock time accumulates between logic ticks.
const DefaultInterval = 160 * time.Millisecond

// Target is what the loop advances and draws.
type Target interface {
	Tick(in core.Input)
	Draw(r core.Renderer)
	Ended() bool
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Loop is a single-threaded accumulator: every frame adds elapsed time, and
// one tick fires when the total reaches Interval.
type Loop struct {
	Interval time.Duration

	acc   time.Duration
	ticks uint64
}

// New creates a loop. A non-positive interval falls back to DefaultInterval.
func New(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{Interval: interval}
}

// Frame runs one iteration: poll, render, then tick if enough time has
// accumulated. A quit request is forwarded to the target right after the
// poll and skips the render and the clock. Returns true if the target was
// ticked, a forwarded quit included; Ticks does not count the quit.
func (l *Loop) Frame(elapsed time.Duration, src core.InputSource, r core.Renderer, target Target) bool {
	src.Poll()

	if src.QuitRequested() {
		target.Tick(core.QuitInput())
		return true
	}

	target.Draw(r)

	if elapsed > 0 {
		l.acc += elapsed
	}
	if l.acc < l.Interval {
		return false
	}
	l.acc = 0

	in := core.Input{}
	if d, ok := src.LastDirection(); ok {
		in = core.DirectionInput(d)
	}
	target.Tick(in)
	l.ticks++
	return true
}

// Run repeats Frame until the target ends, a quit is observed or ctx is
// cancelled. The renderer's Present call is expected to pace the loop.
// The final frame is drawn once more so the end state is visible.
func (l *Loop) Run(ctx context.Context, clock Clock, src core.InputSource, r core.Renderer, target Target) error {
	last := clock.Now()

	for !target.Ended() {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := clock.Now()
		elapsed := now.Sub(last)
		last = now

		l.Frame(elapsed, src, r, target)
	}

	target.Draw(r)
	return nil
}

// Accumulated returns the time waiting for the next tick.
func (l *Loop) Accumulated() time.Duration {
	return l.acc
}

// Ticks returns how many logic ticks the loop has fired, quit excluded.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Reset clears accumulated time and the tick counter for a new session.
func (l *Loop) Reset() {
	l.acc = 0
	l.ticks = 0
}
