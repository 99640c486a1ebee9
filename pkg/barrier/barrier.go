package barrier

import "sync"

// Barrier blocks callers of Wait until a fixed number of parties have
// arrived, then releases them all and begins a new generation.
//
// Each generation has its own broadcast channel, closed exactly when that
// generation completes. A waiter blocks on the channel of the generation it
// arrived in, so stragglers from a previous cycle can never be released
// together with waiters from the next one.
type Barrier struct {
	mu         sync.Mutex
	threshold  int
	count      int
	generation uint64
	wake       chan struct{}
}

// New creates a barrier for the given number of parties.
// Panics if threshold <= 0.
func New(threshold int) *Barrier {
	if threshold <= 0 {
		panic("barrier: New requires threshold > 0")
	}
	return &Barrier{
		threshold: threshold,
		count:     threshold,
		wake:      make(chan struct{}),
	}
}

// Wait blocks until the full party has arrived in the current generation.
// The final arriver, which releases the others, gets true; everyone else gets
// false.
func (b *Barrier) Wait() bool {
	b.mu.Lock()
	b.count--
	if b.count == 0 {
		b.generation++
		b.count = b.threshold
		close(b.wake)
		b.wake = make(chan struct{})
		b.mu.Unlock()
		return true
	}
	ch := b.wake
	b.mu.Unlock()
	<-ch
	return false
}

// Generation returns the number of completed cycles. The value may be stale
// in concurrent contexts.
func (b *Barrier) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}
