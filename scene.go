package sprig

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	StartX float64
	StartY float64
	DeltaX float64
	DeltaY float64
}

const defaultCommandCap = 256

// Scene owns the node tree, input state, and render buffers.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool
	log   *zap.Logger

	// Render state
	commands []RenderCommand
	sortBuf  []RenderCommand
	pages    []*ebiten.Image
	nextPage int

	// Input state
	handlers     handlerRegistry
	pointer      pointerState
	captured     *Node
	hitBuf       []*Node
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent

	testRunner      *TestRunner
	screenshotQueue []string
	updateFunc      func() error

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string
	// ScreenshotTag, when set, names captures after the state being drawn.
	ScreenshotTag func() string
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:          root,
		log:           zap.NewNop(),
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:       make([]RenderCommand, 0, defaultCommandCap),
		dragDeadZone:  defaultDragDeadZone,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update runs node hooks, advances the test runner, and processes input.
func (s *Scene) Update() {
	dt := 1.0 / float64(ebiten.TPS())

	// Refresh world transforms first so hit testing sees this frame's layout.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	updateNodes(s.root, dt)
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
}

// Draw traverses the scene tree, emits render commands, sorts them, and
// submits them to the given screen image.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.commands = s.commands[:0]

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	treeOrder := 0
	s.traverse(s.root, identityTransform, 1.0, false, &treeOrder)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.mergeSort()

	if s.debug {
		stats.sortTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		t0 = time.Now()
	}

	s.submit(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger routes scene diagnostics to log. A nil logger discards them.
func (s *Scene) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
	debugLogger = log
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame timing stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// RegisterPage stores a page image at the given index.
func (s *Scene) RegisterPage(index int, img *ebiten.Image) {
	for len(s.pages) <= index {
		s.pages = append(s.pages, nil)
	}
	s.pages[index] = img
	s.nextPage = max(s.nextPage, index+1)
}

// AddAtlas registers an atlas's pages starting at the next free page index
// and shifts its regions to match.
func (s *Scene) AddAtlas(a *Atlas) {
	start := s.nextPage
	for i, page := range a.Pages {
		s.RegisterPage(start+i, page)
	}
	if start > 0 {
		for name, r := range a.regions {
			r.Page += uint16(start)
			a.regions[name] = r
		}
	}
}
