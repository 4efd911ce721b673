package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// listKey ключ списка активных провайдеров
const listKey = "providers:active"

// Cache кеш справочника провайдеров в Redis
// Справочник read-mostly: список меняется только при онбординге или отключении
// провайдера, поэтому короткого TTL достаточно
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает новый кеш провайдеров
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetList возвращает закешированный список провайдеров
// Возвращает ErrCacheMiss, если записи нет или она истекла
func (c *Cache) GetList(ctx context.Context) ([]*domain.Provider, error) {
	data, err := c.client.Get(ctx, listKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetList: %v", ErrCacheUnavailable, err)
	}

	var providers []*domain.Provider
	if err := json.Unmarshal(data, &providers); err != nil {
		return nil, fmt.Errorf("%w: GetList - decode payload: %v", ErrCacheUnavailable, err)
	}

	return providers, nil
}

// SetList кеширует список провайдеров с TTL
func (c *Cache) SetList(ctx context.Context, providers []*domain.Provider) error {
	data, err := json.Marshal(providers)
	if err != nil {
		return fmt.Errorf("%w: SetList - encode payload: %v", ErrCacheUnavailable, err)
	}

	if err := c.client.Set(ctx, listKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetList: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate сбрасывает кеш списка провайдеров
// Вызывается после онбординга или отключения провайдера
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listKey).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCacheUnavailable, err)
	}
	return nil
}
