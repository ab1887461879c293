package core

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/opt3/pkg/opt"
)

// CancelHandlers hook the three cancellation points of a Conveyor: after
// the input channel is abandoned, around an input that was pulled but not
// processed, and around an input whose result could not be delivered.
type CancelHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan opt.Optional[In], outCh chan<- opt.Optional[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed opt.Optional[In], outCh chan<- opt.Optional[Out])
	OnCancelProcessed   func(ctx context.Context, in opt.Optional[In], processed opt.Optional[Out], outCh chan<- opt.Optional[Out])
}

// IsCancellation reports whether err is a context cancellation or timeout.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Conveyor is one worker of a pipeline stage. It pulls Optionals from
// inputCh, runs them through engine and delivers results to outCh until
// the input closes or the context is cancelled. Each pulled value is owned
// by exactly one Conveyor at a time; nothing here is shared.
func Conveyor[In, Out any](ctx context.Context, inputCh <-chan opt.Optional[In], outCh chan<- opt.Optional[Out],
	engine func(ctx context.Context, input opt.Optional[In]) <-chan opt.Optional[Out],
	handlers CancelHandlers[In, Out],
	onDelivered func(ctx context.Context, out opt.Optional[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onDelivered != nil {
						onDelivered(ctx, pr)
					}
				}
			}
		}
	}
}
