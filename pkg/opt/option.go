package opt

import (
	"time"

	"github.com/google/uuid"
)

// Optional holds zero or one value of type T. It is either empty or holds
// a value; no third state exists. Every Optional carries an id and a
// creation timestamp so values can be traced through chains and pipelines.
type Optional[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	present   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		value:     v,
		present:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{
		present:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of wraps a (value, ok) pair, the shape of map lookups and type assertions.
func Of[T any](v T, ok bool) Optional[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

// FromPtr treats a nil pointer as empty and dereferences otherwise.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// EmptyFrom produces an empty Optional of a new value type that keeps the
// provenance (id, creation time) of the source. Used when absence crosses
// a type boundary in a chain.
func EmptyFrom[In, Out any](from Optional[In]) Optional[Out] {
	return Optional[Out]{
		present:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Value returns the held value, or the zero value when empty.
func (o Optional[T]) Value() T {
	return o.value
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) OrDefault(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Ptr returns a pointer to a copy of the value, nil when empty.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) Id() uuid.UUID {
	return o.id
}

func (o Optional[T]) CreatedAt() time.Time {
	return o.createdAt
}

// Set makes the Optional hold v, replacing any previous value.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.present = true
	if o.id == uuid.Nil {
		o.id = uuid.New()
		o.createdAt = time.Now().UTC()
	}
}

// Reset empties the Optional, dropping any held value.
func (o *Optional[T]) Reset() {
	var zero T
	o.value = zero
	o.present = false
}

// Take drains the Optional: it returns the held value and leaves the
// receiver empty. The receiver stays valid and reusable afterwards.
// Calling Take on an empty Optional returns the zero value.
func (o *Optional[T]) Take() T {
	v := o.value
	o.Reset()
	return v
}

// Equal reports whether both are empty or both hold values that eq
// considers equal. Provenance is not compared.
func Equal[T any](a, b Optional[T], eq func(T, T) bool) bool {
	if a.IsEmpty() {
		return b.IsEmpty()
	}
	if b.IsEmpty() {
		return false
	}
	return eq(a.value, b.value)
}
