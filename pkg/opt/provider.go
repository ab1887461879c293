package opt

import "time"

// Presence is implemented by every Optional regardless of value type. It
// is the reflectable marker used when callable shapes are checked at
// composition time.
type Presence interface {
	// IsPresent returns true if a value is held
	IsPresent() bool
	// IsEmpty returns true if no value is held
	IsEmpty() bool
}

// ValueProvider defines an interface for types that expose an optional value
type ValueProvider[T any] interface {
	Presence
	// Value returns the held value, zero when empty
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
