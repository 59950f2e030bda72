package abibool

import "strconv"

// Bool32 is a 32-bit boolean over a raw int32 cell, native endianness. Its
// layout is exactly that of the cell, so a pointer to one converts to a
// pointer to the other (see AsBool32 and RawPtr). The zero value is
// False32.
type Bool32 int32

const (
	// False32 is the canonical falsy Bool32, bit pattern 0.
	False32 Bool32 = 0
	// True32 is the canonical truthy Bool32, bit pattern 1.
	True32 Bool32 = 1
)

var (
	_ Booler     = Bool32(0)
	_ BoolSetter = (*Bool32)(nil)
)

// B32 returns the canonical Bool32 for v: True32 for true, False32 for
// false.
func B32(v bool) Bool32 {
	if v {
		return True32
	}
	return False32
}

// Raw32 returns a Bool32 holding the bit pattern v, verbatim. Every
// pattern is valid; any nonzero pattern is truthy, including negatives
// such as the -1 some foreign APIs use for TRUE.
func Raw32(v int32) Bool32 { return Bool32(v) }

// AsBool32 reinterprets p as a *Bool32 without copying, so a cell written
// by a foreign call can be read in place. Single values only;
// reinterpreting a whole foreign buffer is the caller's own, audited
// business.
func AsBool32(p *int32) *Bool32 { return (*Bool32)(p) }

// Bool returns the truth value of b: false iff the stored bits are zero.
func (b Bool32) Bool() bool { return b != 0 }

// Raw returns the stored bit pattern, not normalized: Raw32(-1).Raw() is
// -1, not 1.
func (b Bool32) Raw() int32 { return int32(b) }

// RawPtr returns a pointer to b's storage, for foreign calls that write
// the cell in place.
func (b *Bool32) RawPtr() *int32 { return (*int32)(b) }

// SetBool stores the canonical pattern for v (0 or 1).
func (b *Bool32) SetBool(v bool) { *b = B32(v) }

// SetRaw stores the bit pattern v, verbatim.
func (b *Bool32) SetRaw(v int32) { *b = Bool32(v) }

// Not returns the logical negation of b as a native bool.
func (b Bool32) Not() bool { return b == 0 }

func (b Bool32) String() string { return strconv.FormatBool(b.Bool()) }
