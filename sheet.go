package sprig

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sheet layout. Palette swatches sit on a grid of 2px cells, one row per
// color and one column per luminance step; the glyph strip starts below it.
const (
	swatchCell  = 2
	GlyphWidth  = 8
	GlyphHeight = 16
)

// SheetLayout describes a procedural sprite sheet.
type SheetLayout struct {
	Colors int // palette rows
	Lums   int // luminance steps per color
	// Swatch returns the 0xRRGGBB value for a palette cell.
	Swatch func(color, lum int) uint32
	// Glyphs lists the characters of the glyph strip in frame order.
	Glyphs string
}

// Sheet is a generated texture page holding palette swatches and a strip of
// debug-font glyphs, with an Atlas naming every region.
type Sheet struct {
	cfg    SheetLayout
	glyphs []rune
	atlas  *Atlas
	img    *ebiten.Image
}

// NewSheet lays out a sheet. The page image is rendered on first use.
func NewSheet(cfg SheetLayout) *Sheet {
	sh := &Sheet{cfg: cfg, glyphs: []rune(cfg.Glyphs), atlas: NewAtlas()}
	for c := 0; c < cfg.Colors; c++ {
		for l := 0; l < cfg.Lums; l++ {
			sh.atlas.Add(swatchName(c, l), sh.swatchRegion(c, l))
		}
	}
	for i := range sh.glyphs {
		sh.atlas.Add(glyphName(i), sh.glyphRegion(i))
	}
	return sh
}

func swatchName(color, lum int) string { return fmt.Sprintf("swatch/%d/%d", color, lum) }
func glyphName(frame int) string      { return fmt.Sprintf("glyph/%d", frame) }

func (sh *Sheet) glyphTop() int {
	return sh.cfg.Colors * swatchCell
}

// Size returns the page size in pixels.
func (sh *Sheet) Size() (w, h int) {
	w = max(sh.cfg.Lums*swatchCell, len(sh.glyphs)*GlyphWidth, 1)
	h = sh.glyphTop()
	if len(sh.glyphs) > 0 {
		h += GlyphHeight
	}
	return w, max(h, 1)
}

func (sh *Sheet) swatchRegion(color, lum int) TextureRegion {
	return TextureRegion{
		X:         uint16(lum * swatchCell),
		Y:         uint16(color * swatchCell),
		Width:     1,
		Height:    1,
		OriginalW: 1,
		OriginalH: 1,
	}
}

func (sh *Sheet) glyphRegion(frame int) TextureRegion {
	return TextureRegion{
		X:         uint16(frame * GlyphWidth),
		Y:         uint16(sh.glyphTop()),
		Width:     GlyphWidth,
		Height:    GlyphHeight,
		OriginalW: GlyphWidth,
		OriginalH: GlyphHeight,
	}
}

// Swatch returns the 1x1 region of a palette cell. Out-of-range cells fall
// back to the magenta placeholder.
func (sh *Sheet) Swatch(color, lum int) TextureRegion {
	return sh.atlas.Region(swatchName(color, lum))
}

// Glyph returns the region of a glyph frame, or the magenta placeholder.
func (sh *Sheet) Glyph(frame int) TextureRegion {
	return sh.atlas.Region(glyphName(frame))
}

// Atlas returns the named regions of the sheet.
func (sh *Sheet) Atlas() *Atlas {
	return sh.atlas
}

// Image renders the page on first call and returns it.
func (sh *Sheet) Image() *ebiten.Image {
	if sh.img != nil {
		return sh.img
	}
	w, h := sh.Size()
	sh.img = ebiten.NewImage(w, h)
	for c := 0; c < sh.cfg.Colors; c++ {
		for l := 0; l < sh.cfg.Lums; l++ {
			r := sh.swatchRegion(c, l)
			cell := image.Rect(int(r.X), int(r.Y), int(r.X)+swatchCell, int(r.Y)+swatchCell)
			sh.img.SubImage(cell).(*ebiten.Image).Fill(RGB(sh.cfg.Swatch(c, l)).toRGBA())
		}
	}
	for i, g := range sh.glyphs {
		r := sh.glyphRegion(i)
		ebitenutil.DebugPrintAt(sh.img, string(g), int(r.X)+1, int(r.Y))
	}
	return sh.img
}

// Register renders the page and adds it to the scene, remapping the
// sheet's regions to the page index the scene assigns.
func (sh *Sheet) Register(s *Scene) {
	sh.atlas.Pages = []*ebiten.Image{sh.Image()}
	s.AddAtlas(sh.atlas)
}
