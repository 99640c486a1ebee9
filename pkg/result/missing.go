package result

// MissingValueError is the panic payload raised by [Result.Value] when the
// result holds an error, and the error returned by [Result.Unpack] in the same
// state. It carries a copy of the error value that was present at the time.
type MissingValueError[E any] struct {
	err E
}

func (e *MissingValueError[E]) Error() string {
	return "result: missing value"
}

// ErrorValue returns the error that was present when the value was requested.
func (e *MissingValueError[E]) ErrorValue() E {
	return e.err
}
