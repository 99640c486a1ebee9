package result

import "reflect"

// Error wraps a value of type E to mark it as an error. It exists to
// disambiguate error construction from success construction when T and E are
// the same type. The wrapped value is fixed at construction.
type Error[E any] struct {
	value E
}

// NewError wraps e. E must not be Void: an error always carries information.
func NewError[E any](e E) Error[E] {
	assertNotVoid[E]()
	return Error[E]{value: e}
}

// Value returns the wrapped error value.
func (e Error[E]) Value() E {
	return e.value
}

// Equal compares the wrapped values.
func (e Error[E]) Equal(other Error[E]) bool {
	return reflect.DeepEqual(e.value, other.value)
}

func assertNotVoid[E any]() {
	var zero E
	if _, ok := any(zero).(Void); ok {
		panic("result: error type must not be Void")
	}
}
