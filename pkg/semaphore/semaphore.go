package semaphore

import (
	"context"
	"sync"
	"time"
)

// Semaphore is a counting semaphore. The zero value is not usable; create one
// with New.
//
// Waiters block on a broadcast channel that is swapped on every Notify, so
// notify-then-wait pairs observe ordinary mutex ordering.
type Semaphore struct {
	mu    sync.Mutex
	count int
	wake  chan struct{}
}

// New creates a semaphore with the given initial count.
// Panics if initial < 0.
func New(initial int) *Semaphore {
	if initial < 0 {
		panic("semaphore: New requires initial >= 0")
	}
	return &Semaphore{count: initial, wake: make(chan struct{})}
}

// Notify increments the counter and wakes waiters.
func (s *Semaphore) Notify() {
	s.mu.Lock()
	s.count++
	close(s.wake)
	s.wake = make(chan struct{})
	s.mu.Unlock()
}

// Wait blocks until the counter is positive, then decrements it.
func (s *Semaphore) Wait() {
	s.mu.Lock()
	for s.count == 0 {
		ch := s.wake
		s.mu.Unlock()
		<-ch
		s.mu.Lock()
	}
	s.count--
	s.mu.Unlock()
}

// TryWait decrements the counter without blocking.
// Reports whether the semaphore was acquired.
func (s *Semaphore) TryWait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return false
	}
	s.count--
	return true
}

// WaitTimeout blocks for at most d. Reports whether the semaphore was
// acquired.
func (s *Semaphore) WaitTimeout(d time.Duration) bool {
	return s.WaitDeadline(time.Now().Add(d))
}

// WaitDeadline blocks until the semaphore is acquired or the deadline passes.
// Reports whether the semaphore was acquired.
func (s *Semaphore) WaitDeadline(t time.Time) bool {
	s.mu.Lock()
	for s.count == 0 {
		remaining := time.Until(t)
		if remaining <= 0 {
			s.mu.Unlock()
			return false
		}
		ch := s.wake
		s.mu.Unlock()
		timer := time.NewTimer(remaining)
		select {
		case <-ch:
			timer.Stop()
		case <-timer.C:
		}
		s.mu.Lock()
	}
	s.count--
	s.mu.Unlock()
	return true
}

// WaitContext blocks until the semaphore is acquired or ctx is cancelled.
// Returns ctx.Err() on cancellation, nil on success.
func (s *Semaphore) WaitContext(ctx context.Context) error {
	s.mu.Lock()
	for s.count == 0 {
		ch := s.wake
		s.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
		s.mu.Lock()
	}
	s.count--
	s.mu.Unlock()
	return nil
}

// Count returns the current counter. The value may be stale in concurrent
// contexts.
func (s *Semaphore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
