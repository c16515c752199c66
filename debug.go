package sprig

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugLogger receives warnings from node operations, which have no Scene.
var debugLogger = zap.NewNop()

// debugStats holds per-frame timing metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	commandCount int
}

func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.log.Debug("frame",
		zap.Duration("traverse", stats.traverseTime),
		zap.Duration("sort", stats.sortTime),
		zap.Duration("submit", stats.submitTime),
		zap.Duration("total", stats.traverseTime+stats.sortTime+stats.submitTime),
		zap.Int("commands", stats.commandCount),
	)
}

// debugCheckDisposed panics when a disposed node is used in a tree operation.
// Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sprig debug: %s on disposed node %q", op, n.Name))
	}
}

const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold",
			zap.String("node", n.Name), zap.Int("depth", depth), zap.Int("threshold", debugMaxTreeDepth))
	}
}

const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn("child count exceeds threshold",
			zap.String("node", n.Name), zap.Int("children", len(n.children)), zap.Int("threshold", debugMaxChildCount))
	}
}
