package pipeline

import (
	"context"

	"github.com/dgavedissian/base/pkg/result"
)

// Chain carries a result through a sequence of context-aware steps. Steps
// only run while the result holds a success payload; once it holds an error,
// every remaining step is skipped and the error is carried to the end.
type Chain[T, E any] struct {
	ctx   context.Context
	res   result.Result[T, E]
	trace Trace
}

// Start begins a chain from an existing result.
func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r, trace: NewTrace()}
}

// FromValue begins a chain from a success value.
func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Ok[T, E](v))
}

// Result returns the current result of the chain.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Trace returns the chain identity assigned at Start.
func (c Chain[T, E]) Trace() Trace {
	return c.trace
}

// Context returns the context the chain was started with.
func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then composes a step that already returns a result. It is skipped when the
// chain holds an error.
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsError() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.MustValue()), trace: c.trace}
}

// Tee runs a side effect on the success payload without changing the chain.
func (c Chain[T, E]) Tee(onSuccess func(ctx context.Context, t T)) Chain[T, E] {
	if !c.res.IsError() {
		onSuccess(c.ctx, c.res.MustValue())
	}
	return c
}

// Or returns c if it holds a success payload, else alternative.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if !c.res.IsError() {
		return c
	}
	return alternative
}

// And returns c if it holds an error, else required.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsError() {
		return c
	}
	return required
}

// Try converts a (value, error) pair into a result, failing on non-nil error.
func Try[T any](v T, err error) result.Result[T, error] {
	if err != nil {
		return result.Fail[T, error](err)
	}
	return result.Ok[T, error](v)
}

// ThenTry composes a step using the ordinary (value, error) convention onto a
// chain whose error type is error. It is skipped when the chain holds an
// error.
func ThenTry[T any](c Chain[T, error], f func(ctx context.Context, t T) (T, error)) Chain[T, error] {
	if c.res.IsError() {
		return c
	}
	return Chain[T, error]{ctx: c.ctx, res: Try(f(c.ctx, c.res.MustValue())), trace: c.trace}
}
