package abibool

import "github.com/dolthub/maphash"

var boolHasher = maphash.NewHasher[bool]()

// Hash returns the hash of v's normalized truth value. Values that are
// Equal hash identically, across widths and bit patterns. The hasher is
// seeded once per process; hashes are not stable across runs.
func Hash[T Form](v T) uint64 {
	return boolHasher.Hash(Truth(v))
}
