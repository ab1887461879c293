// Package opt provides Optional[T], a container holding zero or one value,
// with monadic composition operations.
//
// Core surface:
// - Some/None/Of/FromPtr: create an Optional
// - Map/MapVoid: transform the held value, presence preserved
// - AndThen: compose functions that already return an Optional
// - OrElse/OrElseDo: supply a fallback or side effect on the empty path
// - Filter/Tee/Flatten/Finally: predicates, side effects, reduction
//
// Chains of Map/AndThen short-circuit at the first empty step; callables of
// later steps are never invoked. Absence is a designed signal, not an
// error: no operation fails merely because the container is empty.
//
// The container does no locking. Sharing one Optional between goroutines
// is the caller's problem; each operation runs synchronously on the
// calling goroutine.
//
// Subpackages build on this core: access (mode-deduced operations),
// overload (candidate resolution), chain (fluent composition), core and
// stream (channel pipelines).
package opt
