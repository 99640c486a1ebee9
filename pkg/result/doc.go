// Package result provides a two-state Result[T, E] value type holding either
// a success payload T or an error value E, with exactly one live at a time.
//
// Highlights:
// - Ok/Fail/FromError/OkVoid: construct Result[T, E]
// - HasValue/Get/GetError/ValueOr/Unpack: checked access
// - Value: unwrap-or-panic, raising *MissingValueError[E]
// - MustValue/MustError: unchecked fast-path access (panics on misuse)
// - Set/SetError/Emplace/Assign/Swap: in-place mutation
// - Map/MapError/Convert/Widen: conversion between result types
// - Catch: recover a MissingValueError panic back into an error result
//
// The Error[E] wrapper disambiguates error construction from success
// construction when T and E are the same type. Void marks a result with no
// success payload.
package result
