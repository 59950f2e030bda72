package abibool

// Form is the constraint satisfied by every boolean form this package
// normalizes: the native bool and the raw cells underlying Bool8 and
// Bool32. Only the zero value of each form is falsy.
type Form interface {
	~bool | ~uint8 | ~int32
}

// Truth normalizes any boolean form to a native bool. It is the single
// normalization point: every comparison, ordering and hashing operation in
// this package goes through it.
func Truth[T Form](v T) bool {
	var zero T
	return v != zero
}

// Equal reports whether x and y have the same truth value, whatever their
// widths or bit patterns: Equal(Raw8(5), Raw32(-1)) is true.
func Equal[X, Y Form](x X, y Y) bool {
	return Truth(x) == Truth(y)
}

// Compare orders x against y with false < true. It returns -1 if x is
// falsy and y truthy, +1 for the reverse, and 0 when their truth values
// are equal.
func Compare[X, Y Form](x X, y Y) int {
	return b2i(Truth(x)) - b2i(Truth(y))
}

// Less reports whether x orders strictly before y (false < true).
func Less[X, Y Form](x X, y Y) bool {
	return Compare(x, y) < 0
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
