package search

import (
	"context"
	"time"
)

// timeManager turns a LimitsType into a soft/hard deadline pair: the hard
// deadline cancels ctx outright (a node mid-recursion aborts), the soft
// deadline is a driver-only check consulted only between completed
// iterations, so a depth already underway is never abandoned prematurely
// just because the soft budget ticked over.
type timeManager struct {
	start    time.Time
	softTime time.Duration
}

func (tm *timeManager) elapsed() time.Duration { return time.Since(tm.start) }

func (tm *timeManager) softTimeout() bool {
	return tm.softTime > 0 && tm.elapsed() >= tm.softTime
}

// newTimeManager derives soft/hard budgets from limits for the side to
// move, wraps ctx with the hard deadline, and returns the cancel func the
// caller must invoke once the search returns.
func newTimeManager(ctx context.Context, limits LimitsType, whiteToMove bool) (*timeManager, context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}

	var main, increment int
	if whiteToMove {
		main, increment = limits.WhiteTime, limits.WhiteIncrement
	} else {
		main, increment = limits.BlackTime, limits.BlackIncrement
	}

	var softMs, hardMs int
	switch {
	case limits.MoveTime > 0:
		hardMs = limits.MoveTime
	case limits.Infinite || limits.Depth > 0:
		// no clock budget: the depth loop is bounded by limits.Depth /
		// MaxDepth instead, and the driver never sets a soft/hard timer.
	case main > 0:
		softMs, hardMs = allocateTime(main, increment, limits.MovesToGo)
	}

	var cancel context.CancelFunc
	if hardMs > 0 {
		ctx, cancel = context.WithTimeout(ctx, time.Duration(hardMs)*time.Millisecond)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	return &timeManager{
		start:    time.Now(),
		softTime: time.Duration(softMs) * time.Millisecond,
	}, ctx, cancel
}

// allocateTime splits a clock reading (milliseconds remaining, increment,
// moves to next control) into a soft budget (the driver stops starting
// new iterations once past it) and a hard budget (four times as long,
// enforced by context cancellation regardless of iteration progress).
func allocateTime(main, inc, movesToGo int) (soft, hard int) {
	const (
		assumedMovesToGo = 35
		reserve          = 300
	)
	if movesToGo <= 0 || movesToGo > assumedMovesToGo {
		movesToGo = assumedMovesToGo
	}
	main -= reserve
	if main < 1 {
		main = 1
	}
	var ceiling = main
	if movesToGo > 1 {
		var half = main/2 + inc
		if half < ceiling {
			ceiling = half
		}
	}
	var safeMoves = 1 + float64(movesToGo-1)*1.41
	soft = int(float64(main)/safeMoves) + inc
	hard = soft * 4
	if soft > ceiling {
		soft = ceiling
	}
	if soft < 1 {
		soft = 1
	}
	if hard > ceiling {
		hard = ceiling
	}
	if hard < 1 {
		hard = 1
	}
	return soft, hard
}
