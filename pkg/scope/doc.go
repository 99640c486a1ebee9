// Package scope provides guards that run a stored action when a scope ends,
// according to a policy: always (OnExit), only on failure (OnFailure) or only
// on success (OnSuccess).
//
// A guard is finalized by deferring Exit:
//
//	func restore(path string) (err error) {
//		g := scope.OnFailure(&err, func() { rollback(path) })
//		defer g.Exit()
//		// ...
//		return apply(path)
//	}
//
// Failure means the bound *error points at a non-nil error when the scope
// ends, or a panic is unwinding through Exit (the panic is re-raised after
// the policy runs). Release disarms a guard early; the action runs at most
// once in every case.
package scope
