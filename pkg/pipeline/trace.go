package pipeline

import (
	"time"

	"github.com/google/uuid"
)

// Trace identifies a chain for logging and correlation. It is assigned when
// the chain starts and carried unchanged through every step.
type Trace struct {
	id        uuid.UUID
	createdAt time.Time
}

// NewTrace returns a fresh trace with a random id and the current UTC time.
func NewTrace() Trace {
	return Trace{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// ID returns the chain id.
func (t Trace) ID() uuid.UUID {
	return t.id
}

// CreatedAt returns the chain creation time (UTC).
func (t Trace) CreatedAt() time.Time {
	return t.createdAt
}
