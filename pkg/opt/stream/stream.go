package stream

import (
	"context"
	"sync"

	"github.com/ib-77/opt3/pkg/opt"
	"github.com/ib-77/opt3/pkg/opt/core"
)

// Engine processes one Optional and delivers exactly one result on the
// returned channel, unless the context is cancelled first.
type Engine[In, Out any] func(ctx context.Context, input opt.Optional[In]) <-chan opt.Optional[Out]

// emit lifts a synchronous per-value transform into an Engine. The inner
// channel races the transform against cancellation; onCancel fires when
// the result could not be produced or delivered.
func emit[In, Out any](apply func(ctx context.Context, input opt.Optional[In]) opt.Optional[Out],
	onCancel func(ctx context.Context, in opt.Optional[In])) Engine[In, Out] {

	return func(ctx context.Context, input opt.Optional[In]) <-chan opt.Optional[Out] {
		ch := make(chan opt.Optional[Out])
		out := make(chan opt.Optional[Out])

		go func() {
			defer close(ch)

			if ctx.Err() == nil {
				ch <- apply(ctx, input)
			}
		}()

		go func() {
			defer close(out)

			select {
			case pr, ok := <-ch:
				if ok {
					out <- pr
				} else if onCancel != nil {
					onCancel(ctx, input)
				}
			case <-ctx.Done():
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		}()

		return out
	}
}

// Map lifts a pure transformation into a stage. Empty inputs flow through
// untouched; the callable is never invoked for them.
func Map[In, Out any](mapOnPresent func(ctx context.Context, v In) Out) Engine[In, Out] {
	return emit[In, Out](func(ctx context.Context, input opt.Optional[In]) opt.Optional[Out] {
		if input.IsEmpty() {
			return opt.EmptyFrom[In, Out](input)
		}
		return opt.Some(mapOnPresent(ctx, input.Value()))
	}, nil)
}

// Then lifts an optional-returning composition into a stage. Empty inputs
// short-circuit; the callable's result is forwarded without rewrapping.
func Then[In, Out any](onPresent func(ctx context.Context, v In) opt.Optional[Out]) Engine[In, Out] {
	return emit[In, Out](func(ctx context.Context, input opt.Optional[In]) opt.Optional[Out] {
		if input.IsEmpty() {
			return opt.EmptyFrom[In, Out](input)
		}
		return onPresent(ctx, input.Value())
	}, nil)
}

// Try lifts a (value, error) function into a stage; an error empties the
// value. onError, when not nil, observes the dropped error.
func Try[In, Out any](try func(ctx context.Context, v In) (Out, error),
	onError func(ctx context.Context, err error)) Engine[In, Out] {

	return emit[In, Out](func(ctx context.Context, input opt.Optional[In]) opt.Optional[Out] {
		if input.IsEmpty() {
			return opt.EmptyFrom[In, Out](input)
		}
		u, err := try(ctx, input.Value())
		if err != nil {
			if onError != nil {
				onError(ctx, err)
			}
			return opt.EmptyFrom[In, Out](input)
		}
		return opt.Some(u)
	}, nil)
}

// OrElse lifts a fallback into a stage: empty inputs are replaced by the
// callable's result, present inputs pass through and the callable is not
// invoked.
func OrElse[T any](onEmpty func(ctx context.Context) opt.Optional[T]) Engine[T, T] {
	return emit[T, T](func(ctx context.Context, input opt.Optional[T]) opt.Optional[T] {
		if input.IsPresent() {
			return input
		}
		return onEmpty(ctx)
	}, nil)
}

// Filter empties values the predicate rejects.
func Filter[T any](keep func(ctx context.Context, v T) bool) Engine[T, T] {
	return emit[T, T](func(ctx context.Context, input opt.Optional[T]) opt.Optional[T] {
		if input.IsPresent() && !keep(ctx, input.Value()) {
			return opt.EmptyFrom[T, T](input)
		}
		return input
	}, nil)
}

// Tee triggers a side effect for every passing Optional without changing it.
func Tee[T any](sideEffect func(ctx context.Context, v opt.Optional[T])) Engine[T, T] {
	return emit[T, T](func(ctx context.Context, input opt.Optional[T]) opt.Optional[T] {
		sideEffect(ctx, input)
		return input
	}, nil)
}

// Run fans a same-type stage across lines workers.
func Run[T any](ctx context.Context, inputCh <-chan opt.Optional[T],
	engine Engine[T, T], lines int) <-chan opt.Optional[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout fans a type-switching stage across lines workers. The output
// channel closes when every worker finishes.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan opt.Optional[In],
	engine Engine[In, Out], lines int) <-chan opt.Optional[Out] {

	out := make(chan opt.Optional[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Conveyor(ctx, inputCh, out, engine, core.CancelHandlers[In, Out]{}, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// RunWithHandlers is Turnout with explicit cancellation hooks per worker.
func RunWithHandlers[In, Out any](ctx context.Context, inputCh <-chan opt.Optional[In],
	engine Engine[In, Out], handlers core.CancelHandlers[In, Out],
	onDelivered func(ctx context.Context, out opt.Optional[Out]), lines int) <-chan opt.Optional[Out] {

	out := make(chan opt.Optional[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Conveyor(ctx, inputCh, out, engine, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
