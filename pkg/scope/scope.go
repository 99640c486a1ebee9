package scope

type policy int

const (
	always policy = iota
	onFailure
	onSuccess
)

// Guard owns an action to run when its scope ends. A Guard is single-use and
// must not be copied; finalize it with `defer g.Exit()` in the scope it
// protects.
type Guard struct {
	fn       func()
	policy   policy
	err      *error
	released bool
	done     bool
}

// OnExit returns a guard whose action runs when the scope ends, whether or
// not it failed.
func OnExit(fn func()) *Guard {
	return &Guard{fn: fn, policy: always}
}

// OnFailure returns a guard whose action runs only when the scope ends in
// failure: err points at a non-nil error, or a panic is unwinding through
// Exit. err may be nil, in which case only panics count as failure.
func OnFailure(err *error, fn func()) *Guard {
	return &Guard{fn: fn, policy: onFailure, err: err}
}

// OnSuccess returns a guard whose action runs only when the scope ends
// without failure.
func OnSuccess(err *error, fn func()) *Guard {
	return &Guard{fn: fn, policy: onSuccess, err: err}
}

// Release disarms the guard. The action will never run.
func (g *Guard) Release() {
	g.released = true
}

// Exit evaluates the policy and runs the action at most once; a second call
// is a no-op. It must be called directly from a defer statement so that it
// can observe an in-flight panic; the panic is re-raised after the policy
// runs.
func (g *Guard) Exit() {
	if g.done {
		return
	}
	g.done = true

	v := recover()
	failed := v != nil || (g.err != nil && *g.err != nil)

	if !g.released {
		switch g.policy {
		case always:
			g.fn()
		case onFailure:
			if failed {
				g.fn()
			}
		case onSuccess:
			if !failed {
				g.fn()
			}
		}
	}

	if v != nil {
		panic(v)
	}
}
