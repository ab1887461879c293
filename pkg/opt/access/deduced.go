package access

import "github.com/ib-77/opt3/pkg/opt"

// Deduced operations: one generic body per operation serves all four
// binding modes, with behaviour identical to writing the mode-qualified
// variants out by hand. The receiver arrives as an explicit Self and the
// value transfer goes through yield, so the mode decides copy vs drain in
// one place.

// Map applies f to the bound value and wraps the result. Empty receivers
// yield an empty result of the new type without invoking f. Under the
// movable read-write mode the value is drained into f, so T need not be
// copyable-by-convention; under const modes the source is never disturbed.
func Map[M Mode, In, Out any](s Self[M, In], f func(In) Out) opt.Optional[Out] {
	if !s.Present() {
		return opt.EmptyFrom[In, Out](*s.target)
	}
	return opt.Some(f(yield(s)))
}

// MapVoid applies a valueless f; a present receiver always yields a
// present Optional[Unit].
func MapVoid[M Mode, In any](s Self[M, In], f func(In)) opt.Optional[opt.Unit] {
	if !s.Present() {
		return opt.EmptyFrom[In, opt.Unit](*s.target)
	}
	f(yield(s))
	return opt.Done()
}

// AndThen hands the bound value to f and returns f's Optional result
// directly, never wrapping it again. Empty receivers short-circuit
// without invoking f.
func AndThen[M Mode, In, Out any](s Self[M, In], f func(In) opt.Optional[Out]) opt.Optional[Out] {
	if !s.Present() {
		return opt.EmptyFrom[In, Out](*s.target)
	}
	return f(yield(s))
}

// OrElse returns the receiver when present (moved out under the movable
// read-write mode, copied otherwise) without invoking f. On an empty
// receiver f runs exactly once and its result is returned.
func OrElse[M Mode, T any](s Self[M, T], f func() opt.Optional[T]) opt.Optional[T] {
	if s.Present() {
		return yieldAll(s)
	}
	return f()
}

// OrElseDo runs f for its side effect on the empty path and keeps the
// result empty. A present receiver passes through per the mode's transfer
// rules.
func OrElseDo[M Mode, T any](s Self[M, T], f func()) opt.Optional[T] {
	if s.Present() {
		return yieldAll(s)
	}
	f()
	return *s.target
}
