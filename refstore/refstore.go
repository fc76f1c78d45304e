// Package refstore offers opt-in tracking of previously used request
// references. MarzPay requires references to be unique per account; the
// SDK leaves that to the caller by default, and a Store turns it into a
// local pre-dispatch check for callers who want the guard.
package refstore

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrDuplicate is returned when a reference was already registered.
var ErrDuplicate = errors.New("reference already used")

// Store remembers references that have been dispatched. Register must be
// atomic: of two concurrent calls with the same reference exactly one
// succeeds.
type Store interface {
	Register(ctx context.Context, reference string) error
}

// MemoryStore is an in-process Store for single-binary callers and tests.
type MemoryStore struct {
	mu   sync.Mutex
	seen map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

// NewMemoryStore builds an in-memory store. Entries older than ttl are
// forgotten; a non-positive ttl keeps them forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		seen: make(map[string]time.Time),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Register records the reference, failing with ErrDuplicate if it is
// still remembered.
func (s *MemoryStore) Register(_ context.Context, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.ttl > 0 {
		for ref, at := range s.seen {
			if now.Sub(at) > s.ttl {
				delete(s.seen, ref)
			}
		}
	}

	if _, ok := s.seen[reference]; ok {
		return ErrDuplicate
	}
	s.seen[reference] = now
	return nil
}
