package opt

// Map applies f to the held value and wraps the result. On an empty input
// it returns an empty Optional of the result type and never invokes f.
// A present input always yields a present output.
func Map[In, Out any](o Optional[In], f func(In) Out) Optional[Out] {
	if o.IsEmpty() {
		return EmptyFrom[In, Out](o)
	}
	return Some(f(o.value))
}

// MapVoid applies a valueless f. The result is a present Optional[Unit]
// when the input is present, so Map's presence guarantee also holds for
// callables with no return value.
func MapVoid[In any](o Optional[In], f func(In)) Optional[Unit] {
	if o.IsEmpty() {
		return EmptyFrom[In, Unit](o)
	}
	f(o.value)
	return Done()
}

// AndThen chains a computation that may itself come up empty. On a present
// input it returns f's result directly, never wrapping it a second time.
// On an empty input f is not invoked.
func AndThen[In, Out any](o Optional[In], f func(In) Optional[Out]) Optional[Out] {
	if o.IsEmpty() {
		return EmptyFrom[In, Out](o)
	}
	return f(o.value)
}

// OrElse supplies a fallback. A present receiver is returned unchanged and
// f is never invoked; on an empty receiver f runs exactly once and its
// result is returned.
func OrElse[T any](o Optional[T], f func() Optional[T]) Optional[T] {
	if o.IsPresent() {
		return o
	}
	return f()
}

// OrElseDo runs f for its side effect when the receiver is empty (log,
// raise) and keeps the result empty. A present receiver passes through
// untouched.
func OrElseDo[T any](o Optional[T], f func()) Optional[T] {
	if o.IsEmpty() {
		f()
	}
	return o
}

// Filter empties the Optional when the predicate rejects the value.
func Filter[T any](o Optional[T], keep func(T) bool) Optional[T] {
	if o.IsPresent() && !keep(o.value) {
		return EmptyFrom[T, T](o)
	}
	return o
}

// Tee triggers a side effect on a present value without changing the result.
func Tee[T any](o Optional[T], onPresent func(T)) Optional[T] {
	if o.IsPresent() {
		onPresent(o.value)
	}
	return o
}

// Flatten collapses one level of nesting.
func Flatten[T any](o Optional[Optional[T]]) Optional[T] {
	if o.IsEmpty() {
		return EmptyFrom[Optional[T], T](o)
	}
	return o.value
}

// Finally collapses the Optional to a plain value via the matching handler.
func Finally[In, Out any](o Optional[In],
	onPresent func(In) Out, onEmpty func() Out) Out {

	if o.IsPresent() {
		return onPresent(o.value)
	}
	return onEmpty()
}
