// Copyright (c) 2026 Telegram Toys (https://github.com/telegram-toys)
//
// archive.go — dump archive facade over the Redis and PostgreSQL backends:
// write-through saves, Redis-first loads with Postgres fallthrough and
// backfill, and the SaveObject/LoadObject pair that composes the codec
// with the storage layer.

package tljson

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/telegram-toys/tljson/internal/archive"
	"github.com/telegram-toys/tljson/internal/clock"
	"github.com/telegram-toys/tljson/internal/codec"
	"github.com/telegram-toys/tljson/internal/metrics"
	"github.com/telegram-toys/tljson/tl"
)

// RecordCodec frames archive records for backend storage.
type RecordCodec = codec.Codec

// ArchiveConfig contains all Archive configuration. At least one of
// RedisAddr and PostgresDSN must be set.
type ArchiveConfig struct {
	// Redis backend
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTTL      time.Duration // 0 = no expiry
	KeyPrefix     string

	// Postgres backend
	PostgresDSN string
	Table       string

	// Optional overrideable components
	RecordCodec RecordCodec
	Clock       clock.Clock
	Logger      Logger
	Metrics     metrics.Recorder
}

func (c *ArchiveConfig) defaults() {
	if c.Clock == nil {
		c.Clock = clock.Real{}
	}
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
}

// Archive persists encoded dumps. Saves write through to every configured
// backend; loads try Redis first and fall through to Postgres, backfilling
// Redis on a hit.
type Archive struct {
	redis       *archive.Redis
	redisClient *redis.Client
	pg          *archive.Postgres
	clk         clock.Clock
	logger      Logger
	metrics     metrics.Recorder
	ttl         time.Duration
}

// NewArchive creates an Archive from the provided config, bootstrapping
// the Postgres schema when that backend is configured.
func NewArchive(ctx context.Context, cfg ArchiveConfig) (*Archive, error) {
	cfg.defaults()
	if cfg.RedisAddr == "" && cfg.PostgresDSN == "" {
		return nil, ErrNoBackend
	}

	a := &Archive{
		clk:     cfg.Clock,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		ttl:     cfg.RedisTTL,
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.redisClient = client
		a.redis = archive.NewRedis(archive.RedisOptions{
			Client:    client,
			Codec:     cfg.RecordCodec,
			KeyPrefix: cfg.KeyPrefix,
		})
	}

	if cfg.PostgresDSN != "" {
		pgCfg, err := pgxpool.ParseConfig(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("tljson: archive postgres config: %w", err)
		}
		pool, err := pgxpool.NewWithConfig(ctx, pgCfg)
		if err != nil {
			return nil, fmt.Errorf("tljson: archive postgres pool: %w", err)
		}
		a.pg = archive.NewPostgres(pool, cfg.Table)
		if err := a.pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return a, nil
}

// SaveObject encodes obj and stores the dump under key, writing through to
// every configured backend. An empty key is replaced by a generated UUID.
// Returns the key the dump was stored under.
func (a *Archive) SaveObject(ctx context.Context, c *Codec, key string, obj tl.Object) (string, error) {
	dump, err := c.Encode(obj, EncodeOptions{})
	if err != nil {
		return "", err
	}
	if key == "" {
		key = uuid.NewString()
	}
	rec := archive.Record{
		Key:      key,
		TypeID:   TypeID(obj),
		Dump:     dump,
		StoredAt: a.clk.Now(),
	}
	if a.pg != nil {
		start := time.Now()
		if err := a.pg.Put(ctx, rec); err != nil {
			a.metrics.RecordError("archive_put")
			return "", err
		}
		a.metrics.RecordArchive("postgres", "put", time.Since(start))
	}
	if a.redis != nil {
		start := time.Now()
		if err := a.redis.Put(ctx, rec, a.ttl); err != nil {
			a.metrics.RecordError("archive_put")
			return "", err
		}
		a.metrics.RecordArchive("redis", "put", time.Since(start))
	}
	a.logger.Debug("tljson: dump archived", "key", key, "id", rec.TypeID)
	return key, nil
}

// LoadObject retrieves the dump stored under key and decodes it back into
// a typed object. Returns ErrArchiveMiss when no backend holds the key.
func (a *Archive) LoadObject(ctx context.Context, c *Codec, key string) (tl.Object, error) {
	rec, err := a.load(ctx, key)
	if err != nil {
		return nil, err
	}
	return c.Decode(rec.Dump)
}

func (a *Archive) load(ctx context.Context, key string) (archive.Record, error) {
	if a.redis != nil {
		rec, err := a.redis.Get(ctx, key)
		if err == nil {
			a.metrics.RecordArchive("redis", "hit", 0)
			return rec, nil
		}
		if !errors.Is(err, archive.ErrMiss) {
			a.logger.Warn("tljson: archive redis read failed", "key", key, "error", err)
		}
	}
	if a.pg != nil {
		rec, err := a.pg.Get(ctx, key)
		if err == nil {
			a.metrics.RecordArchive("postgres", "hit", 0)
			if a.redis != nil {
				// Backfill is best-effort; a failed backfill must not fail
				// the read.
				if err := a.redis.Put(ctx, rec, a.ttl); err != nil {
					a.logger.Warn("tljson: archive backfill failed", "key", key, "error", err)
				}
			}
			return rec, nil
		}
		if !errors.Is(err, archive.ErrMiss) {
			return archive.Record{}, err
		}
	}
	return archive.Record{}, fmt.Errorf("%w: %q", ErrArchiveMiss, key)
}

// Delete removes the dump stored under key from every configured backend.
func (a *Archive) Delete(ctx context.Context, key string) error {
	if a.pg != nil {
		if err := a.pg.Delete(ctx, key); err != nil {
			return err
		}
	}
	if a.redis != nil {
		if err := a.redis.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// Close releases backend resources.
func (a *Archive) Close() {
	if a.pg != nil {
		a.pg.Close()
	}
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
}
