package access

import "github.com/ib-77/opt3/pkg/opt"

// Self binds an Optional receiver under mode M. Operations take their
// receiver as an explicit Self parameter; there is no implicit receiver
// access, so every read, write and drain of the underlying Optional is
// visible in the signature it flows through.
//
// The mode is fixed by the binding constructor, never by the Optional's
// state: a named read-write variable binds with BindMut, a named read-only
// one with BindConst, an expiring value with BindMove or BindConstMove.
// Self always binds the declaring Optional type itself; it deduces access
// mode, not dynamic type.
type Self[M Mode, T any] struct {
	target *opt.Optional[T]
}

func BindMut[T any](o *opt.Optional[T]) Self[Mut, T] {
	return Self[Mut, T]{target: o}
}

func BindConst[T any](o *opt.Optional[T]) Self[Const, T] {
	return Self[Const, T]{target: o}
}

func BindMove[T any](o *opt.Optional[T]) Self[Mov, T] {
	return Self[Mov, T]{target: o}
}

func BindConstMove[T any](o *opt.Optional[T]) Self[ConstMov, T] {
	return Self[ConstMov, T]{target: o}
}

// Forward re-exports the binding with its exact mode preserved. Passing a
// Self onward must go through Forward (or the Self itself), never through
// a fresh binding, so movability and constness survive the hop.
func Forward[M Mode, T any](s Self[M, T]) Self[M, T] {
	return s
}

// Mode reports the binding's access mode.
func (s Self[M, T]) Mode() Info {
	var m M
	return m.ModeInfo()
}

// Present reports whether the bound Optional holds a value. Read-only
// under every mode.
func (s Self[M, T]) Present() bool {
	return s.target.IsPresent()
}

// Peek reads the held value without disturbing the source. Read-only
// under every mode.
func (s Self[M, T]) Peek() (T, bool) {
	return s.target.Get()
}

// Take drains the bound Optional. Only the movable read-write binding can
// call it; draining through Const, ConstMov or Mut does not compile.
func Take[T any](s Self[Mov, T]) T {
	return s.target.Take()
}

// Put assigns through the binding. Only the named read-write binding can
// call it; writing through a const or expiring binding does not compile.
func Put[T any](s Self[Mut, T], v T) {
	s.target.Set(v)
}

// yield hands out the contained value following M's transfer rules: the
// movable read-write mode drains the source, every other mode copies and
// leaves the source untouched. Callers must have checked Present first.
func yield[M Mode, T any](s Self[M, T]) T {
	var m M
	if info := m.ModeInfo(); info.Movable && info.Mutable {
		return s.target.Take()
	}
	return s.target.Value()
}

// yieldAll hands out the whole Optional: moved (source drained) under the
// movable read-write mode, copied otherwise.
func yieldAll[M Mode, T any](s Self[M, T]) opt.Optional[T] {
	var m M
	if info := m.ModeInfo(); info.Movable && info.Mutable {
		v := s.target.Take()
		return opt.Some(v)
	}
	return *s.target
}
