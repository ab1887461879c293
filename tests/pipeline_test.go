package tests

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/opt3/pkg/opt"
	"github.com/ib-77/opt3/pkg/opt/chain"
	"github.com/ib-77/opt3/pkg/opt/core"
	"github.com/ib-77/opt3/pkg/opt/stream"

	"github.com/stretchr/testify/assert"
)

// TestRegistrationProcessing runs the whole stack over a batch of raw user
// records: parse, validate, normalize, collapse.
func TestRegistrationProcessing(t *testing.T) {
	records := []string{
		"alice:30",
		"bob:25",
		"carol:17", // too young
		"broken",   // no age
		"dave:abc", // bad age
		":40",      // no name
	}

	results := processRecords(records)

	assert.Equal(t, len(records), len(results))

	accepted := 0
	rejected := 0
	for _, r := range results {
		if r == "rejected" {
			rejected++
		} else {
			accepted++
		}
	}

	assert.Equal(t, 2, accepted)
	assert.Equal(t, 4, rejected)
}

type record struct {
	name string
	age  int
}

func processRecords(raw []string) []string {
	ctx := context.Background()

	parse := stream.Then(func(_ context.Context, s string) opt.Optional[record] {
		name, ageStr, ok := strings.Cut(s, ":")
		if !ok || name == "" {
			return opt.None[record]()
		}
		age, err := strconv.Atoi(ageStr)
		if err != nil {
			return opt.None[record]()
		}
		return opt.Some(record{name: name, age: age})
	})

	adults := stream.Filter(func(_ context.Context, r record) bool {
		return r.age >= 18
	})

	normalize := stream.Map(func(_ context.Context, r record) record {
		return record{name: strings.ToUpper(r.name), age: r.age}
	})

	out := stream.Finally(ctx,
		stream.Run(ctx,
			stream.Run(ctx,
				stream.Turnout(ctx,
					core.ToChanManyOptionals(ctx, raw),
					parse, 2),
				adults, 2),
			normalize, 2),
		stream.FinallyHandlers[record, string]{
			OnPresent: func(_ context.Context, r record) string {
				return r.name + "/" + strconv.Itoa(r.age)
			},
			OnEmpty: func(context.Context) string { return "rejected" },
		})

	return core.FromChanMany(ctx, out)
}

// TestChainScenarios walks the canonical composition scenarios end to end.
func TestChainScenarios(t *testing.T) {
	ctx := context.Background()

	// present value: map then bind
	got := chain.Then(
		chain.FromValue(ctx, 5).Map(func(_ context.Context, v int) int { return v * 2 }),
		func(_ context.Context, v int) opt.Optional[int] { return opt.Some(v) },
	).Optional()
	assert.Equal(t, 10, got.Value())

	// empty start: nothing downstream runs
	calls := 0
	got = chain.Start(ctx, opt.None[int]()).
		Then(func(_ context.Context, v int) opt.Optional[int] {
			calls++
			return opt.Some(v)
		}).
		Optional()
	assert.True(t, got.IsEmpty())
	assert.Equal(t, 0, calls)

	// fallback skipped on present, taken once on empty
	got = chain.FromValue(ctx, 3).
		OrElse(func(context.Context) opt.Optional[int] { return opt.Some(7) }).
		Optional()
	assert.Equal(t, 3, got.Value())

	got = chain.Start(ctx, opt.None[int]()).
		OrElse(func(context.Context) opt.Optional[int] { return opt.Some(7) }).
		Optional()
	assert.Equal(t, 7, got.Value())

	// side-effect-only fallback keeps the chain empty
	logged := false
	got = chain.Start(ctx, opt.None[int]()).
		OrElseDo(func(context.Context) { logged = true }).
		Optional()
	assert.True(t, got.IsEmpty())
	assert.True(t, logged)
}
