// Package store persists catalog snapshots to a secondary Redis store and
// provides a connectivity smoke check over its known keys.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/storeops/shopify-catalog/pkg/catalog"
)

const (
	// ProductsKey holds the latest catalog snapshot as a JSON array.
	ProductsKey = "catalog:products"

	// SyncLogKey holds one JSON entry per snapshot save.
	SyncLogKey = "catalog:sync_log"
)

// Store wraps the secondary Redis store.
type Store struct {
	redis  *redis.Client
	logger zerolog.Logger
}

// New creates a store backed by the given Redis client.
func New(redisClient *redis.Client) *Store {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &Store{
		redis:  redisClient,
		logger: log.With().Str("component", "store").Logger(),
	}
}

// Ping verifies connectivity to the store.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.redis.Ping(ctx).Err(); err != nil {
		storeErrors.WithLabelValues("ping").Inc()
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// SyncEntry is one sync log line.
type SyncEntry struct {
	SyncedAt time.Time `json:"synced_at"`
	Records  int       `json:"records"`
}

// SaveSnapshot replaces the products snapshot and appends a sync log entry.
func (s *Store) SaveSnapshot(ctx context.Context, records []catalog.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := s.redis.Set(ctx, ProductsKey, data, 0).Err(); err != nil {
		storeErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	entry, err := json.Marshal(SyncEntry{
		SyncedAt: time.Now().UTC(),
		Records:  len(records),
	})
	if err != nil {
		return fmt.Errorf("marshal sync entry: %w", err)
	}

	if err := s.redis.RPush(ctx, SyncLogKey, entry).Err(); err != nil {
		storeErrors.WithLabelValues("rpush").Inc()
		return fmt.Errorf("redis rpush: %w", err)
	}

	snapshotSaves.Inc()
	s.logger.Info().
		Int("records", len(records)).
		Msg("Snapshot saved")

	return nil
}

// CheckReport summarizes store contents after a connectivity check.
type CheckReport struct {
	// Products is the record count of the latest snapshot, 0 when none
	// has been saved yet.
	Products int

	// SyncLog is the number of sync log entries.
	SyncLog int
}

// Check pings the store and counts records under the known keys.
func (s *Store) Check(ctx context.Context) (*CheckReport, error) {
	if err := s.Ping(ctx); err != nil {
		return nil, err
	}

	report := &CheckReport{}

	data, err := s.redis.Get(ctx, ProductsKey).Bytes()
	switch {
	case err == redis.Nil:
		// No snapshot yet.
	case err != nil:
		storeErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	default:
		var records []catalog.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse snapshot: %w", err)
		}
		report.Products = len(records)
	}

	logLen, err := s.redis.LLen(ctx, SyncLogKey).Result()
	if err != nil {
		storeErrors.WithLabelValues("llen").Inc()
		return nil, fmt.Errorf("redis llen: %w", err)
	}
	report.SyncLog = int(logLen)

	checksTotal.Inc()
	s.logger.Debug().
		Int("products", report.Products).
		Int("sync_log", report.SyncLog).
		Msg("Store check complete")

	return report, nil
}
