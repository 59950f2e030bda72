package abibool

import "strconv"

// Bool8 is an 8-bit boolean over a raw uint8 cell. Its layout is exactly
// that of the cell, so a pointer to one converts to a pointer to the other
// (see AsBool8 and RawPtr). The zero value is False8.
type Bool8 uint8

const (
	// False8 is the canonical falsy Bool8, bit pattern 0.
	False8 Bool8 = 0
	// True8 is the canonical truthy Bool8, bit pattern 1.
	True8 Bool8 = 1
)

var (
	_ Booler     = Bool8(0)
	_ BoolSetter = (*Bool8)(nil)
)

// B8 returns the canonical Bool8 for v: True8 for true, False8 for false.
func B8(v bool) Bool8 {
	if v {
		return True8
	}
	return False8
}

// Raw8 returns a Bool8 holding the bit pattern v, verbatim. Every pattern
// is valid; any nonzero pattern is truthy.
func Raw8(v uint8) Bool8 { return Bool8(v) }

// AsBool8 reinterprets p as a *Bool8 without copying, so a cell written by
// a foreign call can be read in place. Single values only; reinterpreting
// a whole foreign buffer is the caller's own, audited business.
func AsBool8(p *uint8) *Bool8 { return (*Bool8)(p) }

// Bool returns the truth value of b: false iff the stored bits are zero.
func (b Bool8) Bool() bool { return b != 0 }

// Raw returns the stored bit pattern, not normalized: Raw8(2).Raw() is 2,
// not 1.
func (b Bool8) Raw() uint8 { return uint8(b) }

// RawPtr returns a pointer to b's storage, for foreign calls that write
// the cell in place.
func (b *Bool8) RawPtr() *uint8 { return (*uint8)(b) }

// SetBool stores the canonical pattern for v (0 or 1).
func (b *Bool8) SetBool(v bool) { *b = B8(v) }

// SetRaw stores the bit pattern v, verbatim.
func (b *Bool8) SetRaw(v uint8) { *b = Bool8(v) }

// Not returns the logical negation of b as a native bool.
func (b Bool8) Not() bool { return b == 0 }

func (b Bool8) String() string { return strconv.FormatBool(b.Bool()) }
