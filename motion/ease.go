package motion

import "github.com/tanema/gween/ease"

// Ease is an easing curve in gween's (t, begin, change, duration) form.
type Ease = ease.TweenFunc

// Easing curves used by the game.
var (
	Linear    Ease = ease.Linear
	QuadIn    Ease = ease.InQuad
	QuadOut   Ease = ease.OutQuad
	QuadInOut Ease = ease.InOutQuad
	CubicIn   Ease = ease.InCubic
)

// EaseRatio evaluates fn on a normalized ratio in [0, 1].
func EaseRatio(fn Ease, t float64) float64 {
	return float64(fn(float32(t), 0, 1, 1))
}

// Lerp interpolates between a and b by i.
func Lerp(a, b, i float64) float64 {
	return a*(1-i) + b*i
}
