// Package motion is the fixed-step simulation layer: a frame clock published
// as a reactive signal, timing counters derived from it, eased tweens, and a
// single-axis damped integrator used for every moving body in the game.
//
// Time is measured in milliseconds. A frame carries its own duration DT and
// the previous frame's duration DT0 so integrators can rescale velocity when
// the step length changes.
package motion
