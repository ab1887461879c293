package chain

import (
	"context"
	"strconv"
	"testing"

	"github.com/ib-77/opt3/pkg/opt"
	"github.com/stretchr/testify/assert"
)

func TestChain_ThenMap(t *testing.T) {
	ctx := context.Background()

	got := FromValue(ctx, 5).
		Map(func(_ context.Context, v int) int { return v * 2 }).
		Then(func(_ context.Context, v int) opt.Optional[int] {
			if v > 0 {
				return opt.Some(v)
			}
			return opt.None[int]()
		}).
		Optional()

	assert.Equal(t, 10, got.Value())
}

func TestChain_EmptyShortCircuits(t *testing.T) {
	ctx := context.Background()
	calls := 0

	got := Start(ctx, opt.None[int]()).
		Then(func(_ context.Context, v int) opt.Optional[int] {
			calls++
			return opt.Some(v)
		}).
		Map(func(_ context.Context, v int) int {
			calls++
			return v
		}).
		Optional()

	assert.True(t, got.IsEmpty())
	assert.Equal(t, 0, calls)
}

func TestChain_OrElse(t *testing.T) {
	ctx := context.Background()
	calls := 0
	fallback := func(context.Context) opt.Optional[int] {
		calls++
		return opt.Some(7)
	}

	got := FromValue(ctx, 3).OrElse(fallback).Optional()
	assert.Equal(t, 3, got.Value())
	assert.Equal(t, 0, calls)

	got = Start(ctx, opt.None[int]()).OrElse(fallback).Optional()
	assert.Equal(t, 7, got.Value())
	assert.Equal(t, 1, calls)
}

func TestChain_OrElseDo(t *testing.T) {
	ctx := context.Background()
	logged := false

	got := Start(ctx, opt.None[int]()).
		OrElseDo(func(context.Context) { logged = true }).
		Optional()

	assert.True(t, got.IsEmpty())
	assert.True(t, logged)
}

func TestChain_Filter(t *testing.T) {
	ctx := context.Background()

	got := FromValue(ctx, 4).
		Filter(func(_ context.Context, v int) bool { return v%2 == 0 }).
		Optional()
	assert.True(t, got.IsPresent())

	got = FromValue(ctx, 5).
		Filter(func(_ context.Context, v int) bool { return v%2 == 0 }).
		Optional()
	assert.True(t, got.IsEmpty())
}

func TestChain_RepeatUntil(t *testing.T) {
	ctx := context.Background()

	got := FromValue(ctx, 1).
		RepeatUntil(
			func(_ context.Context, v int) opt.Optional[int] { return opt.Some(v * 2) },
			func(_ context.Context, v int) bool { return v >= 16 }).
		Optional()

	assert.Equal(t, 16, got.Value())
}

func TestChain_Ensure(t *testing.T) {
	ctx := context.Background()
	var present, empty bool

	FromValue(ctx, 1).Ensure(
		func(context.Context, int) { present = true },
		func(context.Context) { empty = true })
	assert.True(t, present)
	assert.False(t, empty)

	present, empty = false, false
	Start(ctx, opt.None[int]()).Ensure(
		func(context.Context, int) { present = true },
		func(context.Context) { empty = true })
	assert.False(t, present)
	assert.True(t, empty)
}

func TestChain_TypeSwitch(t *testing.T) {
	ctx := context.Background()

	c := Then(FromValue(ctx, "21"),
		func(_ context.Context, s string) opt.Optional[int] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return opt.None[int]()
			}
			return opt.Some(n)
		})

	got := Finally(Map(c, func(_ context.Context, v int) int { return v * 2 }),
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(context.Context) string { return "none" })

	assert.Equal(t, "42", got)
}

func TestChain_TypeSwitchOnEmpty(t *testing.T) {
	ctx := context.Background()
	calls := 0

	c := Then(Start(ctx, opt.None[string]()),
		func(_ context.Context, s string) opt.Optional[int] {
			calls++
			return opt.Some(len(s))
		})

	assert.True(t, c.Optional().IsEmpty())
	assert.Equal(t, 0, calls)
}

func TestChain_Finally(t *testing.T) {
	ctx := context.Background()

	got := FromValue(ctx, 5).Finally(
		func(_ context.Context, v int) int { return v },
		func(context.Context) int { return -1 })
	assert.Equal(t, 5, got)

	got = Start(ctx, opt.None[int]()).Finally(
		func(_ context.Context, v int) int { return v },
		func(context.Context) int { return -1 })
	assert.Equal(t, -1, got)
}
