package game

// Color indexes the palette.
type Color uint8

const (
	Dark Color = iota
	Cyan
	Green
	Sand
	Red
	Purple
	Blue
)

// Colors lists the palette in sheet order.
var Colors = []Color{Dark, Cyan, Green, Sand, Red, Purple, Blue}

// Lums is the number of lightness steps per color. Lum 0 is the lightest,
// lum 2 the base color.
const Lums = 3

// base holds the 0xRRGGBB value of every palette color at lum 2.
var base = [...]uint32{
	Dark:   0x222034,
	Cyan:   0x5fcde4,
	Green:  0x6abe30,
	Sand:   0xd9a066,
	Red:    0xbc3e5b,
	Purple: 0x76428a,
	Blue:   0x306082,
}

// RGB returns the 0xRRGGBB value of c at the given lum. Lighter lums blend
// the base color toward white by a third per step.
func RGB(c Color, lum int) uint32 {
	if int(c) >= len(base) {
		c = Dark
	}
	if lum < 0 {
		lum = 0
	}
	if lum > Lums-1 {
		lum = Lums - 1
	}
	rgb := base[c]
	t := float64(Lums-1-lum) / float64(Lums)
	ch := func(shift uint) uint32 {
		v := float64((rgb >> shift) & 0xff)
		return uint32(v+(255-v)*t+0.5) << shift
	}
	return ch(16) | ch(8) | ch(0)
}
