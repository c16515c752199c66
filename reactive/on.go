package reactive

// On makes an effect body with an explicit dependency. Only dep is tracked;
// fn runs untracked with the new and previous dep values. On the first run
// prevInput equals input.
//
//	reactive.CreateEffect(reactive.On(clock.Frame.Get, func(f, _ motion.Frame) {
//		pos.SetX(body.X())
//	}))
func On[D any](dep func() D, fn func(input, prevInput D)) func() {
	var prevInput D
	first := true
	return func() {
		input := dep()
		if first {
			prevInput = input
			first = false
		}
		Untrack(func() { fn(input, prevInput) })
		prevInput = input
	}
}

// OnMemo is On for memos: fn also receives the previous memo result.
func OnMemo[D, R any](dep func() D, fn func(input, prevInput D, prev R) R) func(prev R) R {
	var prevInput D
	first := true
	return func(prev R) R {
		input := dep()
		if first {
			prevInput = input
			first = false
		}
		var out R
		Untrack(func() { out = fn(input, prevInput, prev) })
		prevInput = input
		return out
	}
}
