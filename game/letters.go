package game

import (
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/reactive"
)

// LetterFrames is the glyph order of the letter sheet.
const LetterFrames = "abcdefghijklmnopqrstuvwxyz!0123456789,."

// LetterFrame returns the sheet frame of r, or -1 when there is no glyph.
func LetterFrame(r rune) int {
	for i, f := range LetterFrames {
		if f == r {
			return i
		}
	}
	return -1
}

// LetterRune is the inverse of LetterFrame. It returns ' ' for -1.
func LetterRune(frame int) rune {
	if frame < 0 || frame >= len(LetterFrames) {
		return ' '
	}
	return rune(LetterFrames[frame])
}

// FormatLetters maps every character of s to its frame.
func FormatLetters(s string) []int {
	out := make([]int, 0, len(s))
	for _, r := range s {
		out = append(out, LetterFrame(r))
	}
	return out
}

// Letter is one glyph tile of a text readout. A freshly created letter is
// tinted red for a third of a second, then white.
type Letter struct {
	Frame int
	Index func() int

	tint *reactive.Memo[uint32]
}

// Tint returns the current 0xRRGGBB tint.
func (l *Letter) Tint() uint32 { return l.tint.Get() }

// Letters maps a text accessor to letter tiles. Tiles whose frame survives a
// text change are kept, so only the characters that changed flash.
func Letters(c *motion.Clock, text func() string) *reactive.Memo[[]*Letter] {
	mapped := reactive.MapArray(func() []int { return FormatLetters(text()) },
		func(frame int, index func() int) *Letter {
			return &Letter{
				Frame: frame,
				Index: index,
				tint:  motion.Flip(c, motion.Third, uint32(0xbc3e5b), uint32(0xffffff)),
			}
		})
	return reactive.CreateMemo(func([]*Letter) []*Letter { return mapped() }, nil)
}
