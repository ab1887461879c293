package core

import "context"

type OptionKey string

const (
	FlushOptionKey  OptionKey = "flush_options"
	WorkerOptionKey OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type FlushOptions struct {
	FlushRemaining bool
}

// WithFlushOptions controls whether inputs left unprocessed after a
// cancellation are forwarded downstream as empty values.
func WithFlushOptions(ctx context.Context, flushRemaining bool) context.Context {
	return context.WithValue(ctx, FlushOptionKey, FlushOptions{FlushRemaining: flushRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsFlushRemainingEnabled(ctx context.Context, defaultFlushRemaining bool) bool {
	options, ok := ctx.Value(FlushOptionKey).(FlushOptions)
	if ok {
		return options.FlushRemaining
	}
	return defaultFlushRemaining
}
