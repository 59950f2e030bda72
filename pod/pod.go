// Package pod declares which abibool types are plain old data: fixed
// width, no padding, no invalid bit patterns, and a valid (falsy) all-zero
// value. Bulk byte-reinterpretation tooling can bound its generic helpers
// with the Pod constraint; this package only vouches for the types, it
// does not cast anything itself.
package pod

import (
	"unsafe"

	"github.com/mna/abibool"
)

// Pod is satisfied exactly by the abibool types that are safe for
// byte-level reinterpretation. Ownership and bounds of the underlying
// memory remain the caller's problem; this package takes no position on
// slices of foreign memory.
type Pod interface {
	abibool.Bool8 | abibool.Bool32
}

// Layout assertions: each type is exactly as wide as its raw cell, with
// the cell's alignment. A build failure here means the ABI contract broke.
var (
	_ [1]byte = [unsafe.Sizeof(abibool.Bool8(0))]byte{}
	_ [4]byte = [unsafe.Sizeof(abibool.Bool32(0))]byte{}
	_ [1]byte = [unsafe.Alignof(abibool.Bool8(0))]byte{}
	_ [4]byte = [unsafe.Alignof(abibool.Bool32(0))]byte{}
)
