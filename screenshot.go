package sprig

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Screenshot queues a capture of the frame being drawn. Files land in
// ScreenshotDir as <label>_<tag>.png, where the tag comes from ScreenshotTag.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots writes the queued captures of screen. Called at the end
// of Scene.Draw.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)

	var tag string
	if s.ScreenshotTag != nil {
		tag = s.ScreenshotTag()
	}
	paths, err := writeCaptures(s.ScreenshotDir, tag, s.screenshotQueue, straightAlpha(pix, b.Dx(), b.Dy()))
	for _, p := range paths {
		s.log.Info("screenshot saved", zap.String("path", p))
	}
	if err != nil {
		s.log.Error("screenshot", zap.String("dir", s.ScreenshotDir), zap.Error(err))
	}
}

// straightAlpha turns premultiplied RGBA pixels as read back from the GPU into
// an NRGBA image, which is what PNG stores.
func straightAlpha(pix []byte, w, h int) *image.NRGBA {
	src := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewNRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, src, image.Point{}, draw.Src)
	return dst
}

// writeCaptures saves img once per label and returns the paths written.
func writeCaptures(dir, tag string, labels []string, img image.Image) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create screenshot dir: %w", err)
	}
	var paths []string
	for _, name := range captureNames(tag, labels) {
		p := filepath.Join(dir, name)
		if err := savePNG(p, img); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// captureNames builds one file name per label. Repeats within a frame get a
// -2, -3 ... suffix so nothing is overwritten.
func captureNames(tag string, labels []string) []string {
	suffix := ""
	if t := slug(tag); t != "" {
		suffix = "_" + t
	}
	seen := make(map[string]int, len(labels))
	names := make([]string, len(labels))
	for i, l := range labels {
		base := slug(l)
		if base == "" {
			base = "capture"
		}
		base += suffix
		seen[base]++
		if n := seen[base]; n > 1 {
			base = fmt.Sprintf("%s-%d", base, n)
		}
		names[i] = base + ".png"
	}
	return names
}

// slug lowercases s and keeps letters, digits, '-' and '.'.
func slug(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, strings.ToLower(strings.TrimSpace(s)))
	return strings.Trim(s, "_")
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
