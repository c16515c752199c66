// Package reactive is a small fine-grained reactivity runtime: signals,
// memos, effects, ownership scopes and keyed list mapping.
//
// Reads performed while a computation runs are recorded as dependencies.
// Writes mark dependents stale; memos and effects are then brought up to date
// in a single flush, pulling stale upstream memos first so that no
// computation ever observes a half-updated graph.
//
//	count := reactive.CreateSignal(1)
//	double := reactive.CreateMemo(func(int) int { return count.Get() * 2 }, 0)
//	reactive.CreateEffect(func() { fmt.Println(double.Get()) }) // 2
//	count.Set(5)                                                  // 10
//
// Computations created while another computation runs are owned by it. An
// owner disposes everything it owns, and runs its [OnCleanup] callbacks,
// before it re-runs and when it is disposed. [CreateRoot] opens a detached
// scope with an explicit dispose function.
//
// The runtime is single-threaded. All signals, memos and effects must be
// created and used from the same goroutine (typically the game loop).
package reactive
