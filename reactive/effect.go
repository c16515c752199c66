package reactive

// Effect is a handle to a running side-effecting computation.
type Effect struct {
	n node
}

// CreateEffect runs fn now and again whenever anything it read changes.
// Writes performed by the first run are flushed after it returns.
func CreateEffect(fn func()) *Effect {
	e := &Effect{}
	e.n.kind = kindEffect
	e.n.run = func() bool {
		fn()
		return false
	}
	adopt(&e.n)
	e.n.state = stateDirty
	Batch(e.n.updateIfNecessary)
	return e
}

// Dispose stops the effect, disposes what it owns and runs its cleanups.
func (e *Effect) Dispose() {
	e.n.dispose()
}

// Disposed reports whether the effect has been disposed, either directly or
// by its owner.
func (e *Effect) Disposed() bool {
	return e.n.disposed
}
