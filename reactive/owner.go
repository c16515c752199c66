package reactive

// CreateRoot runs fn inside a new ownership scope that is not attached to the
// current owner. Everything created inside lives until dispose is called.
func CreateRoot[T any](fn func(dispose func()) T) T {
	root := &node{kind: kindRoot}
	prevListener, prevOwner := rt.listener, rt.owner
	rt.listener, rt.owner = nil, root
	defer func() { rt.listener, rt.owner = prevListener, prevOwner }()
	return fn(root.dispose)
}

// OnCleanup registers fn with the current owner. It runs before the owner
// re-executes and when the owner is disposed. Outside any owner it is a
// no-op.
func OnCleanup(fn func()) {
	if rt.owner == nil || rt.owner.disposed {
		return
	}
	rt.owner.cleanups = append(rt.owner.cleanups, fn)
}

// Owned reports whether code is currently running inside an ownership scope.
func Owned() bool {
	return rt.owner != nil
}
