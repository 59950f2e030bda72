// Package abibool provides fixed-width boolean types that are bit-layout
// compatible with C ABI booleans: Bool8 for 8-bit cells (Win32's BOOLEAN,
// C's unsigned char) and Bool32 for 32-bit cells (Win32's BOOL, C's int).
//
// Most of the time, prefer the native bool in your interfaces and convert
// at the boundary. But some foreign APIs expose arrays of their boolean
// type, or structures embedding one; Bool8 and Bool32 let that memory be
// typed directly, with no per-call conversion or allocation.
//
// The zero bit pattern is falsy and every other pattern is truthy, and any
// pattern is a valid value, so reading a cell a foreign API wrote is always
// safe, whatever it wrote. Comparison, ordering and hashing operate on the
// normalized truth value, never on the raw pattern: Raw8(2), Raw32(-1) and
// the native true are all equal to each other.
package abibool
