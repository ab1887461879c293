package core

import (
	"context"

	"github.com/ib-77/opt3/pkg/opt"
)

// FlushRemaining drains inputs left on inputCh after a cancellation and
// forwards each downstream as an empty Optional, keeping provenance, so
// consumers see one output per input even on the cancelled path. Disabled
// via WithFlushOptions.
func FlushRemaining[In, Out any](ctx context.Context,
	inputCh <-chan opt.Optional[In], outCh chan<- opt.Optional[Out]) {

	if !IsFlushRemainingEnabled(ctx, true) {
		return
	}

	for in := range inputCh {
		outCh <- opt.EmptyFrom[In, Out](in)
	}
}

// FlushRemainingOne forwards a single unprocessed input as empty.
func FlushRemainingOne[In, Out any](ctx context.Context, in opt.Optional[In],
	outCh chan<- opt.Optional[Out]) {

	if !IsFlushRemainingEnabled(ctx, true) {
		return
	}

	outCh <- opt.EmptyFrom[In, Out](in)
}

// FlushRemainingValues collapses unprocessed inputs to plain values via
// brokenF and forwards them, for stages past the Finally boundary.
func FlushRemainingValues[In, Out any](ctx context.Context, inputCh <-chan opt.Optional[In],
	brokenF func(ctx context.Context, in opt.Optional[In]) Out, outCh chan<- Out) {

	if !IsFlushRemainingEnabled(ctx, true) {
		return
	}

	for in := range inputCh {
		outCh <- brokenF(ctx, in)
	}
}
