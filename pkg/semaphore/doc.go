// Package semaphore provides a counting semaphore with blocking, non-blocking
// and bounded-time acquisition.
//
// Highlights:
// - Wait: block until the counter is positive, then decrement
// - TryWait: non-blocking variant
// - WaitTimeout/WaitDeadline: bounded-time variants reporting success
// - WaitContext: cancellable variant returning ctx.Err() on cancellation
// - Notify: increment the counter and wake waiters
//
// The counter is never negative. Wait operations block the calling goroutine;
// there is no internal retry logic.
package semaphore
