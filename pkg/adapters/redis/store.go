// Package redis provides a Redis-backed ports.HistoryStore for deployments
// where the audit trail must survive restarts.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/okarin/deskpilot/pkg/domain"
)

// Store keeps the dispatch history in a Redis list, newest first.
type Store struct {
	client *backend.Client
	key    string
	limit  int64
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the Redis list key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLimit caps how many records the list retains.
func WithLimit(n int64) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithTTL sets an expiration on the history list, refreshed on each append.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// New creates a Redis history store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis history store over an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		key:    "deskpilot:history",
		limit:  100,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append pushes the record and trims the list to the retention limit.
func (s *Store) Append(ctx context.Context, rec domain.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal history record: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, s.key, data)
	pipe.LTrim(ctx, s.key, 0, s.limit-1)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history record: %w", err)
	}
	return nil
}

// Recent returns up to n records, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]domain.Record, error) {
	if n <= 0 || int64(n) > s.limit {
		n = int(s.limit)
	}
	raw, err := s.client.LRange(ctx, s.key, 0, int64(n)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	records := make([]domain.Record, 0, len(raw))
	for _, item := range raw {
		var rec domain.Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decode history record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
