package reactive

type mappedItem[T comparable, U any] struct {
	item    T
	value   U
	index   *Signal[int]
	dispose func()
}

// MapArray returns a function mapping list() element-wise through mapFn,
// usually wrapped in a memo:
//
//	tiles := reactive.CreateMemo(func([]Tile) []Tile { return mapped() }, nil)
//
// Items are matched by value between runs. A matched item keeps its mapped
// value and only sees its index signal change; a new item is mapped in its
// own ownership scope; an item that leaves the list has its scope disposed.
// All scopes are disposed with the owner that called MapArray.
func MapArray[T comparable, U any](list func() []T, mapFn func(item T, index func() int) U) func() []U {
	var current []*mappedItem[T, U]

	OnCleanup(func() {
		for _, m := range current {
			m.dispose()
		}
		current = nil
	})

	return func() []U {
		items := list()
		var out []U
		Untrack(func() {
			pool := make(map[T][]*mappedItem[T, U], len(current))
			for _, m := range current {
				pool[m.item] = append(pool[m.item], m)
			}

			next := make([]*mappedItem[T, U], len(items))
			Batch(func() {
				for i, it := range items {
					if reuse := pool[it]; len(reuse) > 0 {
						m := reuse[0]
						pool[it] = reuse[1:]
						m.index.Set(i)
						next[i] = m
						continue
					}
					m := &mappedItem[T, U]{item: it, index: CreateSignal(i)}
					m.value = CreateRoot(func(dispose func()) U {
						m.dispose = dispose
						return mapFn(it, m.index.Get)
					})
					next[i] = m
				}
			})

			for _, gone := range pool {
				for _, m := range gone {
					m.dispose()
				}
			}
			current = next

			out = make([]U, len(next))
			for i, m := range next {
				out[i] = m.value
			}
		})
		return out
	}
}
