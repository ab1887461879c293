// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of opt.Optional[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Map: compose optional-returning or pure functions
// - OrElse/OrElseDo: handle the empty path
// - Filter/Ensure: predicates and side effects
// - Finally: reduce to a concrete value via handlers
//
// Steps run strictly in written order on the calling goroutine; an empty
// chain short-circuits every later step without invoking its callable.
// Type-switching steps (Then, Map, Finally over two type parameters) are
// free functions because methods cannot introduce type parameters.
package chain
