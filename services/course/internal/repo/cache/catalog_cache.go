package cache

import (
	"context"
	"encoding/json"
	"time"

	"gigconnect/services/course/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	catalogKey = "courses:catalog"
	catalogTTL = 5 * time.Minute
)

// CatalogCache keeps the course catalog in Redis between mutations.
type CatalogCache struct {
	client *redis.Client
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

func (c *CatalogCache) Get(ctx context.Context) ([]*entity.Course, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, err
	}

	var courses []*entity.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *CatalogCache) Set(ctx context.Context, courses []*entity.Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey, data, catalogTTL).Err()
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
