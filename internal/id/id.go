// Package id generates record identifiers. Generation sits behind an
// interface so tests can inject a deterministic sequence; production
// uses random UUIDs, which are stable only within one pipeline run.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces one fresh identifier per call.
type Generator interface {
	NewID() string
}

// UUID generates random version-4 UUIDs.
type UUID struct{}

// NewID returns a fresh UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates predictable IDs like "sup-001" for tests and
// golden-output comparisons. Not safe for concurrent use.
type Sequence struct {
	prefix string
	n      int
}

// NewSequence creates a Sequence with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next ID in the sequence.
func (s *Sequence) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%03d", s.prefix, s.n)
}
