package hashes

import "hash/fnv"

// Golden-ratio mixing constant, widened to 64 bits.
const mix = 0x9e3779b97f4a7c15

// Combine folds the given hashes into seed, one at a time. The order of the
// hashes matters.
func Combine(seed uint64, hs ...uint64) uint64 {
	for _, h := range hs {
		seed ^= h + mix + (seed << 6) + (seed >> 2)
	}
	return seed
}

// Of combines the given hashes with a zero seed.
func Of(hs ...uint64) uint64 {
	return Combine(0, hs...)
}

// Bytes returns the FNV-1a hash of b.
func Bytes(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

// String returns the FNV-1a hash of s.
func String(s string) uint64 {
	return Bytes([]byte(s))
}
