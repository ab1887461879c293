package access

// Info describes what a binding mode permits.
type Info struct {
	// Mutable allows writing through the binding
	Mutable bool
	// Movable allows the binding to be drained (the source is left empty
	// but valid)
	Movable bool
	// Name is the human-readable qualifier
	Name string
}

// Mode is the compile-time tag of a receiver binding. The four
// implementations are empty structs, so a Self[M, T] carries no per-mode
// runtime state: operations generic over M are monomorphized per mode and
// the Info branch inside them is constant in each instantiation.
type Mode interface {
	ModeInfo() Info
}

// Mut is a named read-write binding.
type Mut struct{}

// Const is a named read-only binding.
type Const struct{}

// Mov is an expiring read-write binding; the only mode that may drain.
type Mov struct{}

// ConstMov is an expiring read-only binding. Movable in form, but the
// value is read-only, so it can never be drained.
type ConstMov struct{}

func (Mut) ModeInfo() Info {
	return Info{Mutable: true, Movable: false, Name: "mut"}
}

func (Const) ModeInfo() Info {
	return Info{Mutable: false, Movable: false, Name: "const"}
}

func (Mov) ModeInfo() Info {
	return Info{Mutable: true, Movable: true, Name: "move"}
}

func (ConstMov) ModeInfo() Info {
	return Info{Mutable: false, Movable: true, Name: "const move"}
}
