package game

import (
	"strings"

	"github.com/phanxgames/sprig/audio"
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/reactive"
)

// Level is a counter that climbs every LevelUp and drops back to zero every
// LevelReset. When both periods end on the same frame the reset wins.
type Level struct {
	max   int
	level *reactive.Signal[int]
	label *reactive.Memo[string]
	sink  audio.Sink

	// Letters is the label as letter tiles.
	Letters *reactive.Memo[[]*Letter]
}

func newLevel(c *motion.Clock, cfg Config, sink audio.Sink) *Level {
	l := &Level{
		max:   cfg.MaxLevel,
		level: reactive.CreateSignal(0),
		sink:  sink,
	}
	l.label = reactive.Derive(func() string {
		return "level " + FormatLevel(l.level.Get(), l.max)
	})
	l.Letters = Letters(c, l.label.Get)

	up := motion.Interval(c, cfg.LevelUp)
	reset := motion.Interval(c, cfg.LevelReset)
	reactive.CreateEffect(reactive.On(func() [2]int {
		return [2]int{up.Get(), reset.Get()}
	}, func(n, n0 [2]int) {
		switch {
		case n[1] != n0[1]:
			l.Reset()
		case n[0] != n0[0]:
			l.Up()
		}
	}))
	return l
}

// Value returns the current level.
func (l *Level) Value() int { return l.level.Get() }

// Label returns the label text.
func (l *Level) Label() string { return l.label.Get() }

// Up raises the level by one, capped at the maximum.
func (l *Level) Up() {
	prev := l.level.Peek()
	next := min(l.max, prev+1)
	l.level.Set(next)
	if next == l.max && prev != l.max {
		l.sink.Play(audio.SoundLevelUp)
	}
}

// Reset drops the level to zero.
func (l *Level) Reset() { l.level.Set(0) }

// FormatLevel renders level as top characters: '.' for every missing level
// followed by '!' for every reached one.
func FormatLevel(level, top int) string {
	level = min(max(level, 0), top)
	return strings.Repeat(".", top-level) + strings.Repeat("!", level)
}
