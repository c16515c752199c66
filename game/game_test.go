package game

import (
	"math"
	"testing"

	"github.com/phanxgames/sprig/audio"
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	played []audio.Sound
}

func (r *recorder) Play(s audio.Sound) { r.played = append(r.played, s) }

func (r *recorder) count(s audio.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

func newGame(t *testing.T, cfg Config) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	g := New(motion.NewClock(), cfg, rec, zap.NewNop())
	t.Cleanup(g.Dispose)
	return g, rec
}

func steps(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(Pointer{}, motion.Rate)
	}
}

func vec(x, y float64) *motion.Vec2 {
	v := motion.V(x, y)
	return &v
}

func TestPoint(t *testing.T) {
	p := P(12, -3)
	assert.Equal(t, Point("12 -3"), p)
	x, y := p.XY()
	assert.Equal(t, 12, x)
	assert.Equal(t, -3, y)
	assert.Equal(t, motion.V(12, -3), p.Vec())
	assert.Equal(t, Point("7 9"), PointAt(motion.V(7.9, 9.2)))

	x, y = Point("junk").XY()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestFormatLevel(t *testing.T) {
	tests := []struct {
		level, top int
		want       string
	}{
		{0, 10, ".........."},
		{3, 10, ".......!!!"},
		{10, 10, "!!!!!!!!!!"},
		{12, 10, "!!!!!!!!!!"},
		{-1, 4, "...."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLevel(tt.level, tt.top))
	}
}

func TestFormatLetters(t *testing.T) {
	assert.Equal(t, []int{11, 4, 21, 4, 11, -1, 26, 38}, FormatLetters("level !."))
	assert.Equal(t, []int{0, 37, 25, 27, 36}, FormatLetters("a,z09"))
	assert.Equal(t, 'z', LetterRune(25))
	assert.Equal(t, ' ', LetterRune(-1))
}

func TestPalette(t *testing.T) {
	assert.Equal(t, uint32(0xbc3e5b), RGB(Red, 2))
	assert.Equal(t, uint32(0x306082), RGB(Blue, 2))
	light, mid := RGB(Dark, 0), RGB(Dark, 1)
	for _, shift := range []uint{16, 8, 0} {
		ch := func(c uint32) uint32 { return (c >> shift) & 0xff }
		assert.Greater(t, ch(light), ch(mid))
		assert.Greater(t, ch(mid), ch(RGB(Dark, 2)))
	}
	assert.Equal(t, RGB(Dark, 2), RGB(Color(99), 5))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.MaxLevel = 0
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.EnemyFriction = 1.5
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Width = 0
	assert.Error(t, bad.Validate())
}

func TestCursorFollowsPointer(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())

	g.Step(Pointer{Hover: vec(30, 40)}, motion.Rate)
	assert.Equal(t, motion.V(30, 40), g.Cursor.Pos.Vec())

	g.Step(Pointer{}, motion.Rate)
	assert.Equal(t, motion.V(30, 40), g.Cursor.Pos.Vec(), "no hover keeps the last position")

	g.Step(Pointer{LClick: vec(50, 60), RClick: vec(5, 6)}, motion.Rate)
	assert.Equal(t, motion.V(50, 60), g.Cursor.Click.Vec())
	assert.Equal(t, motion.V(5, 6), g.Cursor.RClick.Vec())
}

func TestWaypointWithinReachPopsAtOnce(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())

	g.Waypoint(motion.V(100, 103))
	assert.Equal(t, 0, g.Waypoints.Len())
	assert.Equal(t, motion.V(100, 103), g.Player.Target.Vec())
	assert.True(t, g.Player.Reached())
}

func TestPlayerWalksWaypoints(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())

	g.Step(Pointer{LClick: vec(200, 100)}, motion.Rate)
	g.Waypoint(motion.V(200, 150))
	require.Equal(t, []Point{"200 100", "200 150"}, g.Waypoints.List())
	assert.Equal(t, motion.V(200, 100), g.Player.Target.Vec())
	assert.False(t, g.Player.Reached())

	steps(g, 70)
	assert.Equal(t, []Point{"200 150"}, g.Waypoints.List())
	assert.Equal(t, motion.V(200, 150), g.Player.Target.Vec())

	steps(g, 80)
	assert.Equal(t, 0, g.Waypoints.Len())
	assert.InDelta(t, 200, g.Player.Pos.X(), 1e-6)
	assert.InDelta(t, 150, g.Player.Pos.Y(), 1e-6)
	assert.InDelta(t, 0, g.Player.Distance(), 1e-6)
}

func TestWaypointIsClamped(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())
	g.Waypoint(motion.V(-20, 999))
	assert.Equal(t, []Point{"0 180"}, g.Waypoints.List())
}

func TestEnemyDashesOnInterval(t *testing.T) {
	g, rec := newGame(t, DefaultConfig())

	// The first dash starts with the game, toward the cursor at the origin.
	assert.Equal(t, 1, g.Enemy.Dashes())
	assert.True(t, g.Enemy.Dashing())
	assert.Less(t, g.Enemy.Force().X, 0.0)
	assert.Less(t, g.Enemy.Force().Y, 0.0)

	steps(g, 9)
	assert.True(t, g.Enemy.Dashing())
	steps(g, 1)
	assert.False(t, g.Enemy.Dashing())
	assert.Less(t, g.Enemy.Pos.X(), 100.0)
	assert.Less(t, g.Enemy.Pos.Y(), 100.0)

	steps(g, 50)
	assert.Equal(t, 2, g.Enemy.Dashes())
	assert.True(t, g.Enemy.Dashing())
	assert.Equal(t, 2, rec.count(audio.SoundDash))
}

func TestEnemyChasesHover(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())
	steps(g, 50)
	g.Step(Pointer{Hover: vec(300, 100)}, motion.Rate)
	x := g.Enemy.Pos.X()
	steps(g, 20)
	assert.Greater(t, g.Enemy.Force().X, -1e-9)
	assert.Greater(t, g.Enemy.Pos.X(), x)
}

func TestCursorTrailLags(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())
	for i := 0; i < 2; i++ {
		g.Step(Pointer{Hover: vec(40, 80)}, motion.Rate)
	}
	assert.Greater(t, g.Cursor.Trail.X(), 0.0)
	assert.Less(t, g.Cursor.Trail.X(), 40.0)
	assert.Less(t, g.Cursor.Trail.Y(), 80.0)

	steps(g, 40)
	assert.InDelta(t, 40, g.Cursor.Trail.X(), 0.01)
	assert.InDelta(t, 80, g.Cursor.Trail.Y(), 0.01)
}

func TestEnemyGlowHoldsWhileDashing(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())
	require.True(t, g.Enemy.Dashing())
	assert.Equal(t, motion.SideB, g.Enemy.Glow.Resolution())

	steps(g, 10)
	require.False(t, g.Enemy.Dashing())
	assert.Equal(t, motion.SideNone, g.Enemy.Glow.Resolution())

	lo, hi := 2.0, 0.0
	for i := 0; i < 45; i++ {
		steps(g, 1)
		v := g.Enemy.Glow.Value()
		lo, hi = min(lo, v), max(hi, v)
	}
	assert.GreaterOrEqual(t, lo, glowDim-1e-9)
	assert.LessOrEqual(t, hi, glowBright+1e-9)
	assert.Less(t, lo, 0.9, "the glow breathes while coasting")
	assert.InDelta(t, glowBright, hi, 1e-6)
}

func TestProjectileSpins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HitRadius = 0
	g, _ := newGame(t, cfg)
	g.Fire(motion.V(300, 100))
	p := g.Projectiles.List()[0]
	assert.Zero(t, p.Spin.Value())

	steps(g, 5)
	first := p.Spin.Value()
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 2*math.Pi)

	steps(g, 15)
	require.Equal(t, 1, g.Projectiles.Len())
	assert.Less(t, p.Spin.Value(), first+1e-9, "a full turn wraps back to zero")
}

func TestZeroStepKeepsBodiesFinite(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())
	steps(g, 5)
	frames := g.Clock.Count()

	g.Step(Pointer{Hover: vec(200, 50)}, 0)
	assert.Equal(t, frames, g.Clock.Count())

	steps(g, 5)
	pos := g.Enemy.Pos.Vec()
	assert.False(t, math.IsNaN(pos.X) || math.IsNaN(pos.Y), "enemy at %v", pos)
	pos = g.Player.Pos.Vec()
	assert.False(t, math.IsNaN(pos.X) || math.IsNaN(pos.Y), "player at %v", pos)
}

func TestProjectileHitsEnemy(t *testing.T) {
	g, rec := newGame(t, DefaultConfig())

	// Player and enemy both start at (100, 100).
	g.Fire(motion.V(300, 100))
	assert.Equal(t, 1, g.Projectiles.Hits())
	assert.Equal(t, 0, g.Projectiles.Len())
	assert.Equal(t, 1, rec.count(audio.SoundShot))
	assert.Equal(t, 1, rec.count(audio.SoundHit))

	steps(g, 1)
	assert.Greater(t, g.Enemy.Pos.X(), 100.0, "knocked back along the shot")
}

func TestProjectileExpires(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HitRadius = 0
	g, _ := newGame(t, cfg)

	g.Step(Pointer{RClick: vec(300, 100)}, motion.Rate)
	require.Equal(t, 1, g.Projectiles.Len())
	assert.Equal(t, 0, g.Projectiles.Hits())

	steps(g, 59)
	require.Equal(t, 1, g.Projectiles.Len())
	x := g.Projectiles.List()[0].Pos.X()
	assert.Greater(t, x, 250.0)
	assert.Less(t, x, 300.0)

	steps(g, 1)
	assert.Equal(t, 0, g.Projectiles.Len())
}

func TestProjectileLeavesArena(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HitRadius = 0
	g, _ := newGame(t, cfg)

	g.Fire(motion.V(100, 0))
	steps(g, 20)
	require.Equal(t, 1, g.Projectiles.Len())
	p := g.Projectiles.List()[0]
	assert.InDelta(t, 100, p.Pos.X(), 1e-9)
	assert.Less(t, p.Pos.Y(), 100.0)

	steps(g, 15)
	assert.Equal(t, 0, g.Projectiles.Len())
}

func TestLevelClimbsAndResets(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())
	assert.Equal(t, 0, g.Level.Value())
	assert.Equal(t, "level ..........", g.Level.Label())

	steps(g, 29)
	assert.Equal(t, 1, g.Level.Value())
	assert.Equal(t, "level .........!", g.Level.Label())

	steps(g, 269)
	assert.Equal(t, 9, g.Level.Value())

	// 5000ms is also a level-up boundary; the reset wins.
	steps(g, 1)
	assert.Equal(t, 0, g.Level.Value())
}

func TestLevelCapsAndCues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLevel = 3
	g, rec := newGame(t, cfg)

	steps(g, 120)
	assert.Equal(t, 3, g.Level.Value())
	assert.Equal(t, "level !!!", g.Level.Label())
	assert.Equal(t, 1, rec.count(audio.SoundLevelUp))

	g.Level.Reset()
	assert.Equal(t, 0, g.Level.Value())
}

func TestLettersKeepSurvivingTiles(t *testing.T) {
	const red, white = uint32(0xbc3e5b), uint32(0xffffff)
	c := motion.NewClock()
	text := reactive.CreateSignal("ab")

	var dispose func()
	letters := reactive.CreateRoot(func(d func()) *reactive.Memo[[]*Letter] {
		dispose = d
		return Letters(c, text.Get)
	})
	defer dispose()

	first := letters.Get()
	require.Len(t, first, 2)
	assert.Equal(t, 0, first[0].Frame)
	assert.Equal(t, red, first[0].Tint())

	for i := 0; i < 20; i++ {
		c.Tick(motion.Rate)
	}
	assert.Equal(t, white, first[1].Tint())

	text.Set("cab")
	next := letters.Get()
	require.Len(t, next, 3)
	assert.Same(t, first[0], next[1])
	assert.Same(t, first[1], next[2])
	assert.Equal(t, 1, next[1].Index())
	assert.Equal(t, white, next[1].Tint())
	assert.Equal(t, red, next[0].Tint())
}

func TestLevelLettersFlashOnChange(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())
	steps(g, 25)
	before := g.Level.Letters.Get()
	require.Len(t, before, len("level .........."))

	steps(g, 4)
	after := g.Level.Letters.Get()
	require.Len(t, after, len(before))
	last := after[len(after)-1]
	assert.Equal(t, LetterFrame('!'), last.Frame)
	assert.Equal(t, uint32(0xbc3e5b), last.Tint())
	assert.Equal(t, uint32(0xffffff), after[0].Tint())
}

func TestSnapshotAndDispose(t *testing.T) {
	g, _ := newGame(t, DefaultConfig())
	g.Step(Pointer{Hover: vec(10, 20), LClick: vec(150, 90)}, motion.Rate)

	s := g.Snapshot()
	assert.Equal(t, 1, s.Frame)
	assert.Equal(t, motion.V(10, 20), s.Cursor)
	assert.Equal(t, []Point{"150 90"}, s.Waypoints)
	assert.Equal(t, motion.V(150, 90), s.Target)
	assert.Equal(t, "level ..........", s.Label)

	g.Dispose()
	g.Waypoint(motion.V(10, 10))
	assert.Equal(t, motion.V(150, 90), g.Player.Target.Vec())
}
