package opt

// Unit is the payload of operations that produce no value. A callable with
// no result still yields a present Optional[Unit], so presence survives a
// void transformation.
type Unit struct{}

// Done is a present Optional holding Unit.
func Done() Optional[Unit] {
	return Some(Unit{})
}
