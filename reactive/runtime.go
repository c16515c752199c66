package reactive

// maxFlushPasses bounds the number of queue passes in a single flush. A graph
// that keeps re-invalidating itself past this point is treated as a bug.
const maxFlushPasses = 100000

type kind uint8

const (
	kindSignal kind = iota // value cell, no computation
	kindMemo               // cached derived value
	kindEffect             // side-effecting computation
	kindRoot               // ownership scope only
)

// state is the freshness of a computation.
type state uint8

const (
	stateClean state = iota // up to date
	stateCheck              // an upstream memo may have changed
	stateDirty              // a direct source changed; must re-run
)

// node is the graph vertex shared by signals, memos, effects and roots.
type node struct {
	kind  kind
	state state

	sources   []*node
	observers []*node

	// run re-executes the computation and reports whether its value changed.
	run func() bool

	owner    *node
	owned    []*node
	cleanups []func()
	disposed bool
}

// runtime holds the global tracking context. No locking: single-threaded.
type runtime struct {
	listener   *node // computation recording reads, nil when untracked
	owner      *node // scope that adopts newly created computations
	batchDepth int
	flushing   bool
	pure       []*node // memos awaiting refresh
	effects    []*node // effects awaiting re-run
}

var rt runtime

// track records src as a dependency of the current listener.
func track(src *node) {
	l := rt.listener
	if l == nil || l.disposed {
		return
	}
	for _, s := range l.sources {
		if s == src {
			return
		}
	}
	l.sources = append(l.sources, src)
	src.observers = append(src.observers, l)
}

// adopt attaches n to the current owner.
func adopt(n *node) {
	if rt.owner != nil && !rt.owner.disposed {
		n.owner = rt.owner
		rt.owner.owned = append(rt.owner.owned, n)
	}
}

// stale raises n to at least st, enqueues it when it leaves the clean state,
// and propagates a check downstream.
func stale(n *node, st state) {
	if n.disposed || n.state >= st {
		return
	}
	if n.state == stateClean {
		switch n.kind {
		case kindMemo:
			rt.pure = append(rt.pure, n)
		case kindEffect:
			rt.effects = append(rt.effects, n)
		}
	}
	n.state = st
	for _, o := range n.observers {
		stale(o, stateCheck)
	}
}

// notify marks every observer of a changed source dirty and flushes unless a
// batch or flush is already in progress.
func notify(src *node) {
	for _, o := range src.observers {
		stale(o, stateDirty)
	}
	if rt.batchDepth == 0 {
		flush()
	}
}

// updateIfNecessary brings n up to date, pulling upstream memos first.
func (n *node) updateIfNecessary() {
	if n.disposed {
		return
	}
	if n.state == stateCheck {
		for _, src := range n.sources {
			if src.kind == kindMemo {
				src.updateIfNecessary()
			}
			if n.state == stateDirty {
				break
			}
		}
		if n.state == stateCheck {
			n.state = stateClean
			return
		}
	}
	if n.state == stateDirty {
		n.update()
	}
}

// update re-runs the computation with fresh dependency tracking. The node is
// marked clean before running so that a self-invalidating write re-queues it.
func (n *node) update() {
	n.reset()
	n.state = stateClean

	prevListener, prevOwner := rt.listener, rt.owner
	rt.listener, rt.owner = n, n
	var changed bool
	func() {
		defer func() { rt.listener, rt.owner = prevListener, prevOwner }()
		changed = n.run()
	}()

	if changed {
		for _, o := range n.observers {
			stale(o, stateDirty)
		}
	}
}

// reset disposes owned computations, runs cleanups and drops all sources.
func (n *node) reset() {
	for i := len(n.owned) - 1; i >= 0; i-- {
		n.owned[i].dispose()
	}
	n.owned = n.owned[:0]
	for i := len(n.cleanups) - 1; i >= 0; i-- {
		n.cleanups[i]()
	}
	n.cleanups = n.cleanups[:0]
	n.unlink()
}

// unlink removes n from the observer list of every source.
func (n *node) unlink() {
	for _, src := range n.sources {
		obs := src.observers
		for i, o := range obs {
			if o == n {
				last := len(obs) - 1
				obs[i] = obs[last]
				obs[last] = nil
				src.observers = obs[:last]
				break
			}
		}
	}
	n.sources = n.sources[:0]
}

func (n *node) dispose() {
	if n.disposed {
		return
	}
	n.reset()
	n.disposed = true
	n.owner = nil
}

// flush drains the memo and effect queues. Memos are refreshed before any
// effect runs; effects queued by writes made during the flush run in a later
// pass of the same flush. When a computation panics, every node still queued
// is dropped back to clean so the next write can schedule it again.
func flush() {
	if rt.flushing {
		return
	}
	rt.flushing = true
	settled := false
	var queue []*node
	defer func() {
		rt.flushing = false
		if !settled {
			abandon(queue)
			abandon(rt.pure)
			abandon(rt.effects)
			rt.pure, rt.effects = nil, nil
		}
	}()

	for pass := 0; len(rt.pure) > 0 || len(rt.effects) > 0; pass++ {
		if pass >= maxFlushPasses {
			panic("reactive: update loop did not settle (a computation keeps invalidating itself)")
		}
		if len(rt.pure) > 0 {
			queue = rt.pure
			rt.pure = nil
		} else {
			queue = rt.effects
			rt.effects = nil
		}
		for _, n := range queue {
			n.updateIfNecessary()
		}
	}
	settled = true
}

func abandon(queue []*node) {
	for _, n := range queue {
		n.state = stateClean
	}
}

// Batch runs fn and defers effect execution until the outermost batch
// returns. Signal writes inside fn are visible to reads immediately.
func Batch(fn func()) {
	rt.batchDepth++
	func() {
		defer func() { rt.batchDepth-- }()
		fn()
	}()
	if rt.batchDepth == 0 {
		flush()
	}
}

// Untrack runs fn without recording any reads as dependencies.
func Untrack(fn func()) {
	prev := rt.listener
	rt.listener = nil
	defer func() { rt.listener = prev }()
	fn()
}

// UntrackValue is Untrack for functions returning a value.
func UntrackValue[T any](fn func() T) T {
	var v T
	Untrack(func() { v = fn() })
	return v
}
