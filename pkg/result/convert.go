package result

import "golang.org/x/exp/constraints"

// Number covers the built-in numeric types usable with Widen.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map transforms the success payload with f, leaving the error state
// untouched.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.isError {
		return Result[U, E]{err: r.err, isError: true}
	}
	return Ok[U, E](f(r.value))
}

// MapError transforms the error value with f, leaving the success state
// untouched.
func MapError[T, E, G any](r Result[T, E], f func(E) G) Result[T, G] {
	if !r.isError {
		return Ok[T, G](r.value)
	}
	return Fail[T, G](f(r.err))
}

// Convert rebuilds r as a Result[T, E], converting the success payload with
// value and the error with errf. It is the general form of the cross-type
// conversions; only the function matching the live payload is called.
func Convert[T, E, U, G any](r Result[U, G], value func(U) T, errf func(G) E) Result[T, E] {
	if r.isError {
		return Fail[T, E](errf(r.err))
	}
	return Ok[T, E](value(r.value))
}

// Widen converts a numeric result into one with wider (or otherwise
// convertible) numeric payload and error types, e.g. turning a
// Result[int, int] into a Result[float32, float32]. The target types must be
// named explicitly: Widen[float32, float32](r).
func Widen[T, E Number, U, G Number](r Result[U, G]) Result[T, E] {
	return Convert(r, func(u U) T { return T(u) }, func(g G) E { return E(g) })
}
