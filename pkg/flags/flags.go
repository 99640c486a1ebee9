package flags

import "golang.org/x/exp/constraints"

// Set is a fixed-width bitmask bound to an enumeration E. Bit i is set iff
// the member with ordinal i is on; bits at or above the cardinality are never
// set. Set has value semantics and allocates nothing.
//
// Create sets through New, All or None so the cardinality is recorded; the
// zero Set has cardinality zero and Invert/ToggleAll on it are no-ops.
type Set[E constraints.Integer] struct {
	bits uint64
	all  uint64
}

// New returns a set over an enumeration of count members, with the given
// members set.
func New[E constraints.Integer](count E, members ...E) Set[E] {
	s := Set[E]{all: allMask(count)}
	for _, e := range members {
		s.Set(e)
	}
	return s
}

// All returns the set with every member on.
func All[E constraints.Integer](count E) Set[E] {
	m := allMask(count)
	return Set[E]{bits: m, all: m}
}

// None returns the empty set.
func None[E constraints.Integer](count E) Set[E] {
	return Set[E]{all: allMask(count)}
}

// Set turns the member on.
func (s *Set[E]) Set(e E) {
	s.bits |= mask(e)
}

// Reset turns the member off.
func (s *Set[E]) Reset(e E) {
	s.bits &^= mask(e)
}

// Toggle flips the member.
func (s *Set[E]) Toggle(e E) {
	s.bits ^= mask(e)
}

// ToggleAll flips every member.
func (s *Set[E]) ToggleAll() {
	s.bits ^= s.all
}

// IsSet reports whether the member is on.
func (s Set[E]) IsSet(e E) bool {
	return s.bits&mask(e) != 0
}

// With returns a copy of s with the member on.
func (s Set[E]) With(e E) Set[E] {
	s.bits |= mask(e)
	return s
}

// Without returns a copy of s with the member off.
func (s Set[E]) Without(e E) Set[E] {
	s.bits &^= mask(e)
	return s
}

// Toggled returns a copy of s with the member flipped.
func (s Set[E]) Toggled(e E) Set[E] {
	s.bits ^= mask(e)
	return s
}

// Union returns the members on in either set.
func (s Set[E]) Union(o Set[E]) Set[E] {
	s.bits |= o.bits
	return s
}

// Intersect returns the members on in both sets.
func (s Set[E]) Intersect(o Set[E]) Set[E] {
	s.bits &= o.bits
	return s
}

// Xor returns the members on in exactly one of the sets.
func (s Set[E]) Xor(o Set[E]) Set[E] {
	s.bits ^= o.bits
	return s
}

// Invert returns the complement of s within the enumeration.
func (s Set[E]) Invert() Set[E] {
	s.bits ^= s.all
	return s
}

// Equal reports whether both sets have the same members on.
func (s Set[E]) Equal(o Set[E]) bool {
	return s.bits == o.bits
}

// EqualFlag reports whether exactly the given member is on.
func (s Set[E]) EqualFlag(e E) bool {
	return s.bits == mask(e)
}

// Value returns the raw mask.
func (s Set[E]) Value() uint64 {
	return s.bits
}

// Empty reports whether no member is on.
func (s Set[E]) Empty() bool {
	return s.bits == 0
}

// Any reports whether at least one member is on.
func (s Set[E]) Any() bool {
	return s.bits != 0
}

func allMask[E constraints.Integer](count E) uint64 {
	n := uint64(count)
	if n == 0 || n > 64 {
		panic("flags: enumeration cardinality must be between 1 and 64")
	}
	if n == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

func mask[E constraints.Integer](e E) uint64 {
	return uint64(1) << uint64(e)
}
