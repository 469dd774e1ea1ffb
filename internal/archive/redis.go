// Copyright (c) 2026 Telegram Toys (https://github.com/telegram-toys)
//
// redis.go — Redis-backed archive store: record put/get/delete, key
// listing via SCAN, TTL support, and the ErrMiss sentinel that drives
// clean backend fallthrough in the Archive facade.

package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/telegram-toys/tljson/internal/codec"
)

// ErrMiss is returned by Redis.Get when the key does not exist. Callers
// use errors.Is(err, archive.ErrMiss) to distinguish a miss from a
// genuine Redis error.
var ErrMiss = errors.New("archive: miss")

// Redis is the Redis archive store.
type Redis struct {
	client    redis.UniversalClient
	codec     codec.Codec
	keyPrefix string
	hits      int64
	misses    int64
}

// RedisOptions configures a new Redis store.
type RedisOptions struct {
	Client    redis.UniversalClient
	Codec     codec.Codec
	KeyPrefix string
}

// NewRedis creates a Redis archive store.
func NewRedis(opts RedisOptions) *Redis {
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "tljson"
	}
	return &Redis{client: opts.Client, codec: opts.Codec, keyPrefix: opts.KeyPrefix}
}

func (s *Redis) key(id string) string {
	return s.keyPrefix + ":dump:" + id
}

// Put stores a record under its key with the given TTL (0 = no expiry).
func (s *Redis) Put(ctx context.Context, rec Record, ttl time.Duration) error {
	b, err := s.codec.Marshal(rec)
	if err != nil {
		return fmt.Errorf("archive marshal: %w", err)
	}
	k := s.key(rec.Key)
	if err := s.client.Set(ctx, k, b, ttl).Err(); err != nil {
		return fmt.Errorf("archive set %s: %w", k, err)
	}
	return nil
}

// Get retrieves the record stored under key. Returns ErrMiss when absent.
func (s *Redis) Get(ctx context.Context, key string) (Record, error) {
	k := s.key(key)
	b, err := s.client.Get(ctx, k).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.misses++
			return Record{}, ErrMiss
		}
		return Record{}, fmt.Errorf("archive get %s: %w", k, err)
	}
	s.hits++
	var rec Record
	if err := s.codec.Unmarshal(b, &rec); err != nil {
		return Record{}, fmt.Errorf("archive unmarshal: %w", err)
	}
	return rec, nil
}

// Exists reports whether a record is stored under key.
func (s *Redis) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("archive exists %s: %w", key, err)
	}
	return n > 0, nil
}

// Delete removes the record stored under key.
func (s *Redis) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("archive delete %s: %w", key, err)
	}
	return nil
}

// Keys lists all stored dump keys using SCAN (production-safe).
func (s *Redis) Keys(ctx context.Context) ([]string, error) {
	pattern := s.keyPrefix + ":dump:*"
	strip := len(s.keyPrefix + ":dump:")
	var out []string
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("archive scan: %w", err)
		}
		for _, k := range keys {
			out = append(out, k[strip:])
		}
		cursor = next
		if cursor == 0 {
			return out, nil
		}
	}
}

// Ping checks that Redis is reachable.
func (s *Redis) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Stats holds hit and miss counts.
type Stats struct {
	Hits   int64
	Misses int64
}

// Stats returns current statistics.
func (s *Redis) Stats() Stats {
	return Stats{Hits: s.hits, Misses: s.misses}
}
