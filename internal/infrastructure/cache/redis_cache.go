package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Cache = (*RedisCache)(nil)

// RedisCache implementación de Cache sobre Redis con serialización JSON.
// La invalidación es solo por expiración (TTL); las escrituras no purgan
// entradas, así que un listado cacheado puede quedar desfasado hasta que
// venza su TTL.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedisCache construye la caché. defaultTTL se usa cuando el caller pasa un TTL <= 0.
func NewRedisCache(client *redis.Client, defaultTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, defaultTTL: defaultTTL}
}

// Get lee y deserializa la clave. Devuelve false sin error en cache miss.
func (c *RedisCache) Get(ctx context.Context, key string, value any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get clave %s: %w", key, err)
	}
	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("deserializar clave %s: %w", key, err)
	}
	return true, nil
}

// Set serializa y guarda el valor con el TTL indicado.
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar clave %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("set clave %s: %w", key, err)
	}
	return nil
}

// Delete elimina la clave.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("del clave %s: %w", key, err)
	}
	return nil
}
