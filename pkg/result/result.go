package result

// Void marks a Result with no success payload. Use Result[Void, E] for
// operations that succeed without producing a value. E must never be Void.
type Void struct{}

// Result holds either a success payload of type T or an error value of type E,
// exactly one at a time. It is a plain value type with no internal
// synchronization.
//
// The discriminant is stored inverted so that the zero value of Result is the
// success state holding the zero value of T, matching default construction.
// Whenever the state changes, the dead slot is zeroed so no stale payload
// stays reachable.
type Result[T, E any] struct {
	value   T
	err     E
	isError bool
}

// Ok returns a success result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// OkVoid returns a success result with no payload.
func OkVoid[E any]() Result[Void, E] {
	return Ok[Void, E](Void{})
}

// Fail returns an error result holding e. E must not be Void.
func Fail[T, E any](e E) Result[T, E] {
	assertNotVoid[E]()
	return Result[T, E]{err: e, isError: true}
}

// FromError returns an error result holding the wrapped value of e.
func FromError[T, E any](e Error[E]) Result[T, E] {
	return Result[T, E]{err: e.value, isError: true}
}

// HasValue reports whether the result holds a success payload.
func (r Result[T, E]) HasValue() bool {
	return !r.isError
}

// IsError reports whether the result holds an error.
func (r Result[T, E]) IsError() bool {
	return r.isError
}

// Value returns the success payload. If the result holds an error, it panics
// with a *MissingValueError[E] carrying a copy of that error. This is the
// unwrap-or-raise accessor; use Get or ValueOr for non-panicking access.
func (r Result[T, E]) Value() T {
	if r.isError {
		panic(&MissingValueError[E]{err: r.err})
	}
	return r.value
}

// MustValue returns the success payload. Calling it on an error result is a
// programming error and panics with a plain assertion message.
func (r Result[T, E]) MustValue() T {
	if r.isError {
		panic("result: MustValue called on an error result")
	}
	return r.value
}

// MustError returns the error value. Calling it on a success result is a
// programming error and panics with a plain assertion message.
func (r Result[T, E]) MustError() E {
	if !r.isError {
		panic("result: MustError called on a success result")
	}
	return r.err
}

// Get returns the success payload and true, or the zero value of T and false
// if the result holds an error.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, !r.isError
}

// GetError returns the error value and true, or the zero value of E and false
// if the result holds a success payload.
func (r Result[T, E]) GetError() (E, bool) {
	return r.err, r.isError
}

// WrappedError returns the error as an Error[E] wrapper. Calling it on a
// success result is a programming error and panics.
func (r Result[T, E]) WrappedError() Error[E] {
	if !r.isError {
		panic("result: WrappedError called on a success result")
	}
	return Error[E]{value: r.err}
}

// ValueOr returns the success payload if present, else fallback.
func (r Result[T, E]) ValueOr(fallback T) T {
	if r.isError {
		return fallback
	}
	return r.value
}

// Unpack returns the success payload and nil, or the zero value of T and a
// *MissingValueError[E] carrying the error. It bridges Result into the
// ordinary Go (value, error) convention.
func (r Result[T, E]) Unpack() (T, error) {
	if r.isError {
		var zero T
		return zero, &MissingValueError[E]{err: r.err}
	}
	return r.value, nil
}

// Set replaces whichever payload is live with the success value v.
func (r *Result[T, E]) Set(v T) {
	var zeroE E
	r.err = zeroE
	r.value = v
	r.isError = false
}

// SetError replaces whichever payload is live with the error value e.
// E must not be Void.
func (r *Result[T, E]) SetError(e E) {
	assertNotVoid[E]()
	var zeroT T
	r.value = zeroT
	r.err = e
	r.isError = true
}

// Emplace replaces whichever payload is live with a new success payload.
func (r *Result[T, E]) Emplace(v T) {
	r.Set(v)
}

// Assign replaces the state of r with a copy of other.
func (r *Result[T, E]) Assign(other Result[T, E]) {
	*r = other
}

// Swap exchanges the states of r and other.
func (r *Result[T, E]) Swap(other *Result[T, E]) {
	*r, *other = *other, *r
}
