// Package analysisstore persists analysis snapshots in Redis so readers
// outside the engine-owning process can follow an ongoing search.
package analysisstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marcusbuffett/uciengine/pkg/analysis"
)

const defaultTTL = time.Hour

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis at the given URL. A non-positive ttl falls back
// to one hour.
func New(redisURL string, ttl time.Duration) (*Store, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, fmt.Errorf("redis url required")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewWithClient(rdb, ttl), nil
}

// NewWithClient wraps an existing client, mainly for tests.
func NewWithClient(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) key(id string) string { return "analysis:" + strings.TrimSpace(id) }

// Save writes the record's snapshot JSON under the analysis id, renewing
// the TTL.
func (s *Store) Save(ctx context.Context, id string, rec analysis.Info) error {
	raw, err := rec.ToJSON()
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(id), raw, s.ttl).Err()
}

// Load reads a record back. The boolean is false when the id is unknown
// or expired.
func (s *Store) Load(ctx context.Context, id string) (analysis.Info, bool, error) {
	raw, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return analysis.Info{}, false, nil
	}
	if err != nil {
		return analysis.Info{}, false, err
	}
	rec, err := analysis.InfoFromJSON(raw)
	if err != nil {
		return analysis.Info{}, false, err
	}
	return rec, true, nil
}

// LoadRaw reads the stored snapshot JSON without decoding it, for
// handing straight to a transport.
func (s *Store) LoadRaw(ctx context.Context, id string) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

// Delete removes an analysis snapshot.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, s.key(id)).Err()
}

// Close releases the Redis connection.
func (s *Store) Close() error { return s.rdb.Close() }
