package game

import (
	"strconv"
	"strings"

	"github.com/phanxgames/sprig/motion"
)

// Point is a whole-pixel arena position encoded as "x y". Being a string it
// is comparable, which makes it usable as a MapArray key.
type Point string

// P returns the point at (x, y).
func P(x, y int) Point {
	return Point(strconv.Itoa(x) + " " + strconv.Itoa(y))
}

// PointAt truncates v to a point.
func PointAt(v motion.Vec2) Point {
	return P(int(v.X), int(v.Y))
}

// XY decodes the point. Malformed coordinates decode as 0.
func (p Point) XY() (x, y int) {
	xs, ys, _ := strings.Cut(string(p), " ")
	x, _ = strconv.Atoi(xs)
	y, _ = strconv.Atoi(ys)
	return x, y
}

// Vec returns the point as a vector.
func (p Point) Vec() motion.Vec2 {
	x, y := p.XY()
	return motion.V(float64(x), float64(y))
}
