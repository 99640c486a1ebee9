// Package hashes provides seeded hash combining for building composite hash
// values from multiple fields, plus FNV-1a helpers for strings and byte
// slices.
package hashes
