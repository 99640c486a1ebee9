package result

// Catch runs f and converts a *MissingValueError[E] panic back into an
// error-state result. Any other panic propagates unchanged. It is the inverse
// of [Result.Value]: code written in unwrap style can be contained at a
// boundary and resume explicit error passing.
func Catch[T, E any](f func() T) (r Result[T, E]) {
	defer func() {
		if v := recover(); v != nil {
			mv, ok := v.(*MissingValueError[E])
			if !ok {
				panic(v)
			}
			r = Fail[T, E](mv.ErrorValue())
		}
	}()
	return Ok[T, E](f())
}
