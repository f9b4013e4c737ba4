// Package cache 提供sqlframe.QueryCache的Redis与内存实现
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache 基于Redis的查询结果缓存
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCache 创建Redis缓存
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:    client,
		keyPrefix: "sqlframe:",
	}
}

// WithKeyPrefix 设置key前缀（链式调用）
func (c *RedisCache) WithKeyPrefix(prefix string) *RedisCache {
	c.keyPrefix = prefix
	return c
}

// Get 读取缓存；未命中或Redis出错都按未命中处理
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set 写入缓存；失败静默忽略，缓存不影响查询主路径
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.client.Set(ctx, c.keyPrefix+key, value, ttl)
}
