package sprig

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// TextureRegion describes a sub-rectangle within an atlas page.
// Value type, stored directly on Node.
type TextureRegion struct {
	Page      uint16 // atlas page index (references Scene.pages)
	X, Y      uint16 // top-left corner of the sub-image rect within the page
	Width     uint16
	Height    uint16
	OriginalW uint16 // size used for hit testing
	OriginalH uint16
}

// Atlas holds page images and a map of named regions.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]TextureRegion
}

// NewAtlas returns an empty atlas over the given pages.
func NewAtlas(pages ...*ebiten.Image) *Atlas {
	return &Atlas{Pages: pages, regions: make(map[string]TextureRegion)}
}

// Add names a region. OriginalW/H default to the region size.
func (a *Atlas) Add(name string, r TextureRegion) {
	if r.OriginalW == 0 && r.OriginalH == 0 {
		r.OriginalW, r.OriginalH = r.Width, r.Height
	}
	a.regions[name] = r
}

// Has reports whether a region is named name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// Len returns the number of named regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// Region returns the TextureRegion for the given name.
// If the name doesn't exist, it logs in debug mode and returns a 1x1 magenta
// placeholder region.
func (a *Atlas) Region(name string) TextureRegion {
	if r, ok := a.regions[name]; ok {
		return r
	}
	if globalDebug {
		debugLogger.Warn("atlas region not found, using magenta placeholder", zap.String("region", name))
	}
	return magentaRegion()
}

var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// magentaPlaceholderPage is a sentinel page index that never collides with
// real pages.
const magentaPlaceholderPage = 0xFFFF

func magentaRegion() TextureRegion {
	return TextureRegion{
		Page:      magentaPlaceholderPage,
		Width:     1,
		Height:    1,
		OriginalW: 1,
		OriginalH: 1,
	}
}
