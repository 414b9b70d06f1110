package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	storage "github.com/bestbuddies/grooming-booking/internal/infra/storage/catalog"
)

const cacheKey = "grooming:catalog"

// Результаты обращения к кешу для метрик
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// Cache read-through кеш каталога в redis.
// Ошибки redis не прерывают чтение: каталог берётся из источника.
type Cache struct {
	source  Source
	redis   *redis.Client
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// New создает кеш каталога поверх источника
func New(source Source, client *redis.Client, ttl time.Duration, metrics Metrics, logger Logger) *Cache {
	return &Cache{
		source:  source,
		redis:   client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// LoadCatalog возвращает каталог из кеша или из источника с записью в кеш
func (c *Cache) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	if cached, ok := c.read(ctx); ok {
		return cached, nil
	}

	catalog, err := c.source.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if catalog != nil {
		c.write(ctx, catalog)
	}
	return catalog, nil
}

// SaveCatalog сохраняет каталог в источник и сбрасывает кеш
func (c *Cache) SaveCatalog(ctx context.Context, catalog *domain.Catalog) error {
	if err := c.source.SaveCatalog(ctx, catalog); err != nil {
		return err
	}
	if c.enabled() {
		if err := c.redis.Del(ctx, cacheKey).Err(); err != nil {
			c.logger.Warn("Failed to invalidate catalog cache: %v", err)
		}
	}
	return nil
}

func (c *Cache) enabled() bool {
	return c.redis != nil && c.ttl > 0
}

func (c *Cache) read(ctx context.Context) (*domain.Catalog, bool) {
	if !c.enabled() {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.metrics.RecordCache(resultMiss)
		} else {
			c.metrics.RecordCache(resultError)
			c.logger.Warn("Catalog cache read failed: %v", err)
		}
		return nil, false
	}

	catalog, err := storage.Decode(raw)
	if err != nil {
		c.metrics.RecordCache(resultError)
		c.logger.Warn("Catalog cache entry is corrupt: %v", err)
		return nil, false
	}

	c.metrics.RecordCache(resultHit)
	return catalog, true
}

func (c *Cache) write(ctx context.Context, catalog *domain.Catalog) {
	if !c.enabled() {
		return
	}
	raw, err := storage.Encode(catalog)
	if err != nil {
		c.logger.Warn("Failed to encode catalog for cache: %v", err)
		return
	}
	if err := c.redis.Set(ctx, cacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Catalog cache write failed: %v", err)
	}
}
