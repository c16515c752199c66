package sprig

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsRefresh is how often the widget redraws, in seconds.
const statsRefresh = 0.5

// NewStatsWidget creates a sprite that shows FPS and TPS followed by the
// lines extra returns. extra may be nil. The image is redrawn every half
// second from the node's OnUpdate hook.
func NewStatsWidget(width, height int, extra func() string) *Node {
	img := ebiten.NewImage(width, height)

	node := NewSprite("stats", TextureRegion{})
	node.SetCustomImage(img)
	node.RenderLayer = 255

	elapsed := statsRefresh
	node.OnUpdate = func(dt float64) {
		elapsed += dt
		if elapsed < statsRefresh {
			return
		}
		elapsed = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), extra))
	}
	return node
}

func statsText(fps, tps float64, extra func() string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f", fps, tps)
	if extra != nil {
		if s := extra(); s != "" {
			b.WriteByte('\n')
			b.WriteString(s)
		}
	}
	return b.String()
}
