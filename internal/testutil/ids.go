package testutil

import (
	"fmt"
	"sync"
)

// IDSequence hands out deterministic session IDs ("test-session-0001",
// "test-session-0002", ...) in place of random UUIDs, so recorded
// sessions can be asserted on exactly.
//
// Thread-safe; a zero prefix defaults to "test-session".
type IDSequence struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewIDSequence creates a sequence with the given prefix.
func NewIDSequence(prefix string) *IDSequence {
	if prefix == "" {
		prefix = "test-session"
	}
	return &IDSequence{prefix: prefix}
}

// Next returns the next ID in the sequence, starting at 0001.
func (s *IDSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%04d", s.prefix, s.n)
}
