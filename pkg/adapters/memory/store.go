// Package memory provides an in-process ports.HistoryStore, the default
// audit trail when no Redis is configured.
package memory

import (
	"context"
	"sync"

	"github.com/okarin/deskpilot/pkg/domain"
)

const defaultLimit = 100

// Store keeps the most recent dispatch records in a bounded slice.
type Store struct {
	mu      sync.Mutex
	records []domain.Record
	limit   int
}

// Option configures a Store.
type Option func(*Store)

// WithLimit caps how many records are retained.
func WithLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// New creates an in-memory history store.
func New(opts ...Option) *Store {
	s := &Store{limit: defaultLimit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds a record, evicting the oldest once the limit is reached.
func (s *Store) Append(_ context.Context, rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	if len(s.records) > s.limit {
		s.records = s.records[len(s.records)-s.limit:]
	}
	return nil
}

// Recent returns up to n records, newest first.
func (s *Store) Recent(_ context.Context, n int) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || n > len(s.records) {
		n = len(s.records)
	}
	out := make([]domain.Record, 0, n)
	for i := len(s.records) - 1; i >= len(s.records)-n; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}
