package stream

import (
	"context"

	"github.com/ib-77/opt3/pkg/opt"
	"github.com/ib-77/opt3/pkg/opt/core"
)

type FinallyHandlers[In, Out any] struct {
	OnPresent func(ctx context.Context, v In) Out
	OnEmpty   func(ctx context.Context) Out
	// OnCancel collapses inputs abandoned by a cancellation. Optional;
	// when nil, abandoned inputs fall back to OnEmpty.
	OnCancel func(ctx context.Context, in opt.Optional[In]) Out
}

func (h FinallyHandlers[In, Out]) broken(ctx context.Context, in opt.Optional[In]) Out {
	if h.OnCancel != nil {
		return h.OnCancel(ctx, in)
	}
	return h.OnEmpty(ctx)
}

// Finally collapses a channel of Optionals to plain values. Present inputs
// go through OnPresent, empty ones through OnEmpty. On cancellation,
// remaining inputs are flushed through the cancel path (subject to
// core.WithFlushOptions) so consumers still see one output per input.
func Finally[In, Out any](ctx context.Context, inputCh <-chan opt.Optional[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			core.FlushRemainingValues(ctx, inputCh, handlers.broken, out)
			return
		}

		for {
			select {
			case <-ctx.Done():
				core.FlushRemainingValues(ctx, inputCh, handlers.broken, out)
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := opt.Finally(in,
					func(v In) Out { return handlers.OnPresent(ctx, v) },
					func() Out { return handlers.OnEmpty(ctx) })

				select {
				case <-ctx.Done():
					if core.IsFlushRemainingEnabled(ctx, true) {
						out <- handlers.broken(ctx, in)
					}
					core.FlushRemainingValues(ctx, inputCh, handlers.broken, out)
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}
