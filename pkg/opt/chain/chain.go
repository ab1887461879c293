package chain

import (
	"context"

	"github.com/ib-77/opt3/pkg/opt"
)

// Chain wraps an opt.Optional with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	o   opt.Optional[T]
}

func Start[T any](ctx context.Context, o opt.Optional[T]) Chain[T] {
	return Chain[T]{ctx: ctx, o: o}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, opt.Some(v))
}

func (c Chain[T]) Optional() opt.Optional[T] {
	return c.o
}

// Then composes functions that already return opt.Optional[T]. An empty
// chain short-circuits: onPresent is not invoked and absence flows on.
func (c Chain[T]) Then(onPresent func(ctx context.Context, t T) opt.Optional[T]) Chain[T] {
	if c.o.IsEmpty() {
		return c
	}
	return Chain[T]{ctx: c.ctx, o: onPresent(c.ctx, c.o.Value())}
}

// Map transforms the held value to a new value of the same type.
func (c Chain[T]) Map(onPresent func(ctx context.Context, t T) T) Chain[T] {
	if c.o.IsEmpty() {
		return c
	}
	return Chain[T]{ctx: c.ctx, o: opt.Some(onPresent(c.ctx, c.o.Value()))}
}

// OrElse supplies a replacement when the chain is empty; a non-empty
// chain passes through and onEmpty is never invoked.
func (c Chain[T]) OrElse(onEmpty func(ctx context.Context) opt.Optional[T]) Chain[T] {
	if c.o.IsPresent() {
		return c
	}
	return Chain[T]{ctx: c.ctx, o: onEmpty(c.ctx)}
}

// OrElseDo triggers a side effect on the empty path and leaves the chain
// empty.
func (c Chain[T]) OrElseDo(onEmpty func(ctx context.Context)) Chain[T] {
	if c.o.IsEmpty() {
		onEmpty(c.ctx)
	}
	return c
}

// Filter empties the chain when the predicate rejects the value.
func (c Chain[T]) Filter(keep func(ctx context.Context, t T) bool) Chain[T] {
	if c.o.IsEmpty() {
		return c
	}
	if !keep(c.ctx, c.o.Value()) {
		return Chain[T]{ctx: c.ctx, o: opt.EmptyFrom[T, T](c.o)}
	}
	return c
}

func (c Chain[T]) RepeatUntil(onPresent func(ctx context.Context, t T) opt.Optional[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.o.IsEmpty() {
		return c
	}

	for {
		c = c.Then(onPresent)

		if c.o.IsEmpty() || until(c.ctx, c.o.Value()) {
			return c
		}
	}
}

// Ensure triggers side effects for the present/empty outcome without
// changing the chain
func (c Chain[T]) Ensure(onPresent func(context.Context, T), onEmpty func(context.Context)) Chain[T] {
	if c.o.IsPresent() {
		if onPresent != nil {
			onPresent(c.ctx, c.o.Value())
		}
		return c
	}

	if onEmpty != nil {
		onEmpty(c.ctx)
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onPresent func(context.Context, T) T, onEmpty func(context.Context) T) T {
	if c.o.IsPresent() {
		return onPresent(c.ctx, c.o.Value())
	}
	return onEmpty(c.ctx)
}

// Then chains a function that switches the value type. Methods cannot add
// type parameters, so type-switching steps are free functions.
func Then[T, U any](c Chain[T], onPresent func(context.Context, T) opt.Optional[U]) Chain[U] {
	if c.o.IsEmpty() {
		return Chain[U]{ctx: c.ctx, o: opt.EmptyFrom[T, U](c.o)}
	}
	return Chain[U]{ctx: c.ctx, o: onPresent(c.ctx, c.o.Value())}
}

// Map chains a pure type-switching transformation.
func Map[T, U any](c Chain[T], onPresent func(context.Context, T) U) Chain[U] {
	if c.o.IsEmpty() {
		return Chain[U]{ctx: c.ctx, o: opt.EmptyFrom[T, U](c.o)}
	}
	return Chain[U]{ctx: c.ctx, o: opt.Some(onPresent(c.ctx, c.o.Value()))}
}

// Finally collapses the chain into a final value of a different type.
func Finally[T, U any](c Chain[T], onPresent func(context.Context, T) U, onEmpty func(context.Context) U) U {
	if c.o.IsPresent() {
		return onPresent(c.ctx, c.o.Value())
	}
	return onEmpty(c.ctx)
}
