package overload

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrNotCallable is returned when a registered candidate is not a func.
	ErrNotCallable = errors.New("candidate is not callable")
	// ErrBadShape is returned when a candidate's signature violates the
	// set's contract.
	ErrBadShape = errors.New("candidate has wrong shape")
	// ErrAmbiguousCall is returned when two candidates match a call
	// equally well and neither is more specific.
	ErrAmbiguousCall = errors.New("ambiguous call")
	// ErrNoCandidate is returned when no candidate accepts the mode.
	ErrNoCandidate = errors.New("no viable candidate")
)

// Candidate is one resolvable definition of an operation: either
// conventionally qualified for a single access mode, or deduced, accepting
// every mode with the mode bound per call site.
type Candidate struct {
	name    string
	mode    AccessMode
	deduced bool
	fn      reflect.Value
}

// IsDeduced reports whether the candidate deduces its mode at the call site.
func (c Candidate) IsDeduced() bool {
	return c.deduced
}

func (c Candidate) describe() string {
	if c.deduced {
		return fmt.Sprintf("%s(self)", c.name)
	}
	return fmt.Sprintf("%s(%s self)", c.name, c.mode)
}

// Invoke calls the resolved candidate with args. Argument arity and types
// were not part of resolution; a mismatch here panics like any other
// miscalled func.
func (c Candidate) Invoke(args ...any) []any {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	out := c.fn.Call(in)
	res := make([]any, len(out))
	for i, o := range out {
		res[i] = o.Interface()
	}
	return res
}

// Set is a named overload set: the candidates visible for one operation
// name on one type. Registration validates callable shapes; Resolve ranks
// the candidates against a call site's access mode. Both run while the
// call graph is being composed, so every failure here is a composition
// error, not a runtime one.
type Set struct {
	name           string
	optionalResult bool
	qualified      []Candidate
	deduced        []Candidate
}

// NewSet creates an overload set for the operation called name.
func NewSet(name string) *Set {
	return &Set{name: name}
}

// NewBindSet creates an overload set whose candidates must return an
// Optional, the contract of and_then-style operations. Candidates
// returning anything else are rejected at registration, never coerced.
func NewBindSet(name string) *Set {
	return &Set{name: name, optionalResult: true}
}

// AddQualified registers a conventionally mode-qualified, non-deduced
// candidate.
func (s *Set) AddQualified(mode AccessMode, fn any) error {
	v, err := checkCallable(fn, s.optionalResult)
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	s.qualified = append(s.qualified, Candidate{name: s.name, mode: mode, fn: v})
	return nil
}

// AddDeduced registers a mode-deduced candidate, viable under every
// access mode.
func (s *Set) AddDeduced(fn any) error {
	v, err := checkCallable(fn, s.optionalResult)
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	s.deduced = append(s.deduced, Candidate{name: s.name, deduced: true, fn: v})
	return nil
}

// Resolve picks the candidate for a call under the given access mode.
// A qualified candidate matching the mode exactly wins over the deduced
// one: genericity is a tie-breaker of last resort, never an overriding
// preference. Candidates matching equally well with neither more specific
// fail with ErrAmbiguousCall, and a mode no candidate accepts fails with
// ErrNoCandidate; resolution never picks arbitrarily.
func (s *Set) Resolve(mode AccessMode) (Candidate, error) {
	var exact []Candidate
	for _, c := range s.qualified {
		if c.mode == mode {
			exact = append(exact, c)
		}
	}

	switch {
	case len(exact) == 1:
		return exact[0], nil
	case len(exact) > 1:
		return Candidate{}, ambiguous(s.name, mode, exact)
	}

	switch {
	case len(s.deduced) == 1:
		return s.deduced[0], nil
	case len(s.deduced) > 1:
		return Candidate{}, ambiguous(s.name, mode, s.deduced)
	}

	return Candidate{}, fmt.Errorf("%w: `%s` has no candidate for %s access",
		ErrNoCandidate, s.name, mode)
}

func ambiguous(name string, mode AccessMode, candidates []Candidate) error {
	descs := make([]string, len(candidates))
	for i, c := range candidates {
		descs[i] = c.describe()
	}
	return fmt.Errorf("%w: `%s` under %s access can be one of [%s]",
		ErrAmbiguousCall, name, mode, strings.Join(descs, ", "))
}
