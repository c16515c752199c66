package reactive

// Memo is a cached derived value. It recomputes when a dependency changes and
// notifies its own dependents only when the result differs under its
// equality.
type Memo[T any] struct {
	n      node
	value  T
	fn     func(prev T) T
	equals func(a, b T) bool
}

// CreateMemo computes fn(init) immediately and keeps the result current.
// fn receives the previous result, which makes accumulators straightforward:
//
//	elapsed := reactive.CreateMemo(func(prev float64) float64 {
//		return prev + frame.Get().DT
//	}, 0)
func CreateMemo[T any](fn func(prev T) T, init T, opts ...Option[T]) *Memo[T] {
	o := buildOptions(opts)
	m := &Memo[T]{value: init, fn: fn, equals: o.equals}
	m.n.kind = kindMemo
	m.n.run = m.recompute
	adopt(&m.n)
	m.n.state = stateDirty
	m.n.updateIfNecessary()
	return m
}

func (m *Memo[T]) recompute() bool {
	v := m.fn(m.value)
	if m.equals(m.value, v) {
		return false
	}
	m.value = v
	return true
}

// Get returns the current value, refreshing it first if it is stale, and
// subscribes the running computation.
func (m *Memo[T]) Get() T {
	m.n.updateIfNecessary()
	track(&m.n)
	return m.value
}

// Peek returns the current value without subscribing.
func (m *Memo[T]) Peek() T {
	m.n.updateIfNecessary()
	return m.value
}

// Derive is CreateMemo for computations that ignore the previous value.
func Derive[T any](fn func() T, opts ...Option[T]) *Memo[T] {
	var zero T
	return CreateMemo(func(T) T { return fn() }, zero, opts...)
}
