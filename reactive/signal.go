package reactive

import "reflect"

// Option configures a Signal or Memo.
type Option[T any] func(*options[T])

type options[T any] struct {
	equals func(a, b T) bool
}

// WithEquals sets the comparison used to decide whether a write is a change.
func WithEquals[T any](fn func(a, b T) bool) Option[T] {
	return func(o *options[T]) { o.equals = fn }
}

// AlwaysNotify makes every write a change, even when the value is identical.
func AlwaysNotify[T any]() Option[T] {
	return func(o *options[T]) { o.equals = neverEqual[T] }
}

func neverEqual[T any](T, T) bool { return false }

// defaultEquals compares with == when T is comparable and treats every write
// as a change otherwise. An interface-typed T holding an uncomparable dynamic
// value panics on comparison; use WithEquals or AlwaysNotify for those.
func defaultEquals[T any]() func(a, b T) bool {
	if reflect.TypeFor[T]().Comparable() {
		return func(a, b T) bool { return any(a) == any(b) }
	}
	return neverEqual[T]
}

func buildOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	if o.equals == nil {
		o.equals = defaultEquals[T]()
	}
	return o
}

// Signal is a mutable reactive value.
type Signal[T any] struct {
	n      node
	value  T
	equals func(a, b T) bool
}

// CreateSignal returns a signal holding value.
func CreateSignal[T any](value T, opts ...Option[T]) *Signal[T] {
	o := buildOptions(opts)
	return &Signal[T]{n: node{kind: kindSignal}, value: value, equals: o.equals}
}

// Get returns the current value and subscribes the running computation.
func (s *Signal[T]) Get() T {
	track(&s.n)
	return s.value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set stores v and notifies dependents unless v equals the current value.
func (s *Signal[T]) Set(v T) {
	if s.equals(s.value, v) {
		return
	}
	s.value = v
	notify(&s.n)
}

// Update stores fn(current). The current value is read untracked.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Mutate lets fn modify the value in place and always notifies. It is the
// write form for always-notify signals holding pointers or structs that are
// changed rather than replaced.
func (s *Signal[T]) Mutate(fn func(*T)) {
	fn(&s.value)
	notify(&s.n)
}
