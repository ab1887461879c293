package overload

// AccessMode is the runtime descriptor of how a receiver is bound at a
// call site. It mirrors the compile-time modes of package access for
// callers that compose overload sets dynamically.
type AccessMode uint8

const (
	// Mutable is a named read-write binding.
	Mutable AccessMode = iota
	// ReadOnly is a named read-only binding.
	ReadOnly
	// Movable is an expiring read-write binding.
	Movable
	// ReadOnlyMovable is an expiring read-only binding.
	ReadOnlyMovable
)

// String returns a human-readable representation of the access mode.
func (m AccessMode) String() string {
	switch m {
	case Mutable:
		return "mut"
	case ReadOnly:
		return "const"
	case Movable:
		return "move"
	case ReadOnlyMovable:
		return "const move"
	default:
		return "?"
	}
}
