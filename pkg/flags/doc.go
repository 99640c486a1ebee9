// Package flags provides Set[E], a type-safe collection of flags over an
// enumeration, avoiding manual bitmasking and shifting. Enumerations do not
// need to be declared in powers of two.
//
// An unchecked precondition is that the enumeration's members are numbered
// contiguously from 0 and that a trailing sentinel equals the member count:
//
//	type Color int
//	const (
//		Red Color = iota
//		Green
//		Blue
//		ColorCount
//	)
//
//	s := flags.New(ColorCount, Red, Blue)
//	s.IsSet(Green) // false
package flags
