package abibool

// A Booler reports its truth value as a native bool. Both Bool8 and
// Bool32 implement it, so code can handle either width through a single
// interface and key associative containers by the normalized value. Only
// the normalized view is offered; a raw-integer view would let two equal
// values hash and order differently.
type Booler interface {
	// Bool returns the truth value: false iff the stored bits are zero.
	Bool() bool
}

// A BoolSetter is a Booler whose truth value can be set from a native
// bool. Setting stores the canonical pattern (0 or 1).
type BoolSetter interface {
	Booler
	SetBool(v bool)
}
