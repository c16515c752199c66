package motion

import (
	"math"

	"github.com/phanxgames/sprig/reactive"
)

// RunClosed is the value a Run counter takes once its window has closed.
const RunClosed = -1

// timeEpsilon absorbs accumulated rounding when elapsed time is compared to a
// duration that is itself a multiple of Rate.
const timeEpsilon = 1e-9

func within(elapsed, window float64) bool {
	return elapsed <= window+timeEpsilon
}

// Elapsed returns a memo of the milliseconds accumulated since creation. The
// frame current at creation counts as the first step.
func Elapsed(c *Clock) *reactive.Memo[float64] {
	return reactive.CreateMemo(func(prev float64) float64 {
		return prev + c.Frame().DT
	}, 0, reactive.AlwaysNotify[float64]())
}

// Interval returns a counter that increments each time the elapsed time
// crosses a multiple of period.
func Interval(c *Clock, period float64) *reactive.Memo[int] {
	elapsed := Elapsed(c)
	return reactive.CreateMemo(reactive.OnMemo(elapsed.Get, func(e, e0 float64, n int) int {
		if math.Floor((e0+timeEpsilon)/period) != math.Floor((e+timeEpsilon)/period) {
			return n + 1
		}
		return n
	}), 0)
}

// Run returns a frame counter for a window of the given length: it counts the
// frames while the elapsed time is within the window, becomes RunClosed on the
// frame the window closes and stays there.
func Run(c *Clock, window float64) *reactive.Memo[int] {
	elapsed := Elapsed(c)
	open := func() bool { return within(elapsed.Get(), window) }
	return reactive.CreateMemo(reactive.OnMemo(open, func(in, wasIn bool, n int) int {
		switch {
		case in != wasIn && in:
			return n + 1
		case in != wasIn:
			return RunClosed
		case !in:
			return n
		default:
			return n + 1
		}
	}), 0)
}

// Flip returns a memo that is a while the elapsed time is within window and b
// afterwards.
func Flip[A any](c *Clock, window float64, a, b A) *reactive.Memo[A] {
	elapsed := Elapsed(c)
	return reactive.CreateMemo(func(A) A {
		if within(elapsed.Get(), window) {
			return a
		}
		return b
	}, a)
}
