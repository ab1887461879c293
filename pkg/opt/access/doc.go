// Package access provides mode-qualified receiver bindings for Optional
// and monadic operations written once but instantiated per binding mode.
//
// A receiver can be reached four ways at a call site: as a named
// read-write variable, a named read-only variable, an expiring read-write
// value or an expiring read-only value. Writing each operation four times
// over duplicates one logical behaviour; package access instead binds the
// receiver into a Self[M, T] whose mode parameter M records how it was
// reached, and each operation is a single generic function over M.
//
// - BindMut/BindConst/BindMove/BindConstMove: fix the mode at the call site
// - Map/MapVoid/AndThen/OrElse/OrElseDo: one body, four behaviours
// - Take/Put: drain and assign, restricted to the modes that permit them
// - Forward: pass a binding on without losing its mode
//
// Transfer rules: the movable read-write mode drains the source (it is
// left empty but valid); all other modes read without disturbing it.
// Draining a const or read-only binding is rejected by the compiler, not
// at run time.
package access
