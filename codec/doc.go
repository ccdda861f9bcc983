// Package codec packs a resolved set of node selections into a short,
// shareable string and back: an LSB-first bit stream, grouped six bits at
// a time into a fixed 64-character alphabet (A-Z, a-z, 0-9, +, /).
//
// The wire format is versioned: byte 0 of the bit stream is an 8-bit
// version tag, allowing future layout changes without breaking decoding of
// strings produced by an older version. Every node contributes a 1-bit
// "selected" flag in BuildEntryLookup's canonical (ascending node ID)
// order, followed by enough bits to identify which entry (Choice nodes)
// or which rank (Single nodes) was purchased, when selected.
//
// DecodeTalentHash("") returns a nil selections map and a nil error: an
// empty hash is a valid encoding of "nothing selected", not a malformed
// one.
package codec
