package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"wastetrack/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// CenterCache keeps the full center listing shown to citizens. It is never consulted
// when assigning a report to a center.
type CenterCache struct {
	client *goredis.Client
	key    string
	ttl    time.Duration
}

func NewCenterCache(client *goredis.Client, ttl time.Duration) *CenterCache {
	return &CenterCache{
		client: client,
		key:    "centers:all",
		ttl:    ttl,
	}
}

// Get returns nil, nil on a cache miss.
func (c *CenterCache) Get(ctx context.Context) ([]*domain.RecyclingCenter, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var centers []*domain.RecyclingCenter
	if err := json.Unmarshal(data, &centers); err != nil {
		return nil, err
	}
	return centers, nil
}

func (c *CenterCache) Set(ctx context.Context, centers []*domain.RecyclingCenter) error {
	b, err := json.Marshal(centers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, c.ttl).Err()
}

func (c *CenterCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
