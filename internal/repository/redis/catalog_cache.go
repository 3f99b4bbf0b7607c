package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"yabaMarket/domain"

	"github.com/redis/go-redis/v9"
)

const (
	catalogSnapshotKey = "catalog:snapshot"
	catalogVersionKey  = "catalog:version"
)

// CatalogCache keeps a JSON copy of the full catalog so storefront reads
// don't hit postgres on every request. Every catalog write bumps
// catalogVersionKey; a snapshot is only stored if the version it was loaded
// under is still current.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached catalog. ok is false when no snapshot is stored.
func (c *CatalogCache) Get(ctx context.Context) ([]domain.Product, bool, error) {
	val, err := c.client.Get(ctx, catalogSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get catalog snapshot: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(val, &products); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal catalog snapshot: %w", err)
	}

	return products, true, nil
}

// Version returns the current catalog version, 0 before the first write.
func (c *CatalogCache) Version(ctx context.Context) (int64, error) {
	v, err := readVersion(ctx, c.client)
	if err != nil {
		return 0, fmt.Errorf("failed to get catalog version: %w", err)
	}
	return v, nil
}

// Set stores products if the catalog version still equals version. stored is
// false when a write landed in between and the snapshot was dropped.
func (c *CatalogCache) Set(ctx context.Context, version int64, products []domain.Product) (bool, error) {
	data, err := json.Marshal(products)
	if err != nil {
		return false, fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}

	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(ctx, tx)
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, catalogSnapshotKey, data, c.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, catalogVersionKey)

	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to store catalog snapshot: %w", err)
	}

	return stored, nil
}

// Invalidate bumps the version and drops the snapshot; the next read
// reloads from postgres.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, catalogVersionKey)
		pipe.Del(ctx, catalogSnapshotKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate catalog snapshot: %w", err)
	}

	return nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readVersion(ctx context.Context, cmd getter) (int64, error) {
	v, err := cmd.Get(ctx, catalogVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}
