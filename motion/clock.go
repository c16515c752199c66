package motion

import "github.com/phanxgames/sprig/reactive"

// Rate is the nominal frame duration in milliseconds (60 ticks per second).
const Rate = 1000.0 / 60

// Durations expressed in nominal frames.
const (
	Second  = 60 * Rate
	Half    = 30 * Rate
	Third   = 20 * Rate
	Quarter = 15 * Rate
	Sixth   = 10 * Rate
	Five    = 5 * Rate
	Three   = 3 * Rate
	One     = Rate
)

// Ticks converts a frame count into milliseconds.
func Ticks(n float64) float64 {
	return n * Rate
}

// Frame is one simulation step.
type Frame struct {
	DT  float64 // duration of this step
	DT0 float64 // duration of the previous step
}

// Clock publishes frames. Every Tick notifies, even when DT repeats.
type Clock struct {
	frame *reactive.Signal[Frame]
	last  float64
	count int
}

// NewClock returns a clock whose current frame is one nominal step.
func NewClock() *Clock {
	return &Clock{
		frame: reactive.CreateSignal(Frame{DT: Rate, DT0: Rate}, reactive.AlwaysNotify[Frame]()),
		last:  Rate,
	}
}

// Frame returns the current frame and subscribes the running computation.
func (c *Clock) Frame() Frame {
	return c.frame.Get()
}

// Tick advances the clock by dt milliseconds. A dt that is not positive
// publishes nothing.
func (c *Clock) Tick(dt float64) {
	if !(dt > 0) {
		return
	}
	f := Frame{DT: dt, DT0: c.last}
	c.last = dt
	c.count++
	c.frame.Set(f)
}

// Count returns the number of ticks so far.
func (c *Clock) Count() int {
	return c.count
}
