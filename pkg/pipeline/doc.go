// Package pipeline provides context-carrying composition chains over
// result.Result[T, E], short-circuiting on the error state.
//
// Highlights:
// - Start/FromValue: begin a chain
// - Then/Tee: apply error-aware steps and side effects
// - Or/And: combine alternative and required chains
// - Try/ThenTry: adapt functions using the ordinary (value, error) convention
// - Trace: per-chain identity (uuid + creation time) for correlating steps
package pipeline
