package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultLikeTTL 点赞数缓存的默认过期时间
const DefaultLikeTTL = 1800 * time.Second

// GetLikeKey 根据专辑ID生成点赞数的Redis键
func GetLikeKey(albumID string) string {
	return fmt.Sprintf("album-likes:%s", albumID)
}

// RedisLikeCache 基于Redis的专辑点赞数缓存
// 缓存值只是数据库计数的一个可丢弃副本，不存在或过期都按未命中处理
type RedisLikeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLikeCache 创建点赞数缓存，ttl 为零时使用默认值
func NewRedisLikeCache(client *redis.Client, ttl time.Duration) *RedisLikeCache {
	if ttl <= 0 {
		ttl = DefaultLikeTTL
	}
	return &RedisLikeCache{client: client, ttl: ttl}
}

// GetCount 读取专辑点赞数，未命中返回 redis.Nil
func (c *RedisLikeCache) GetCount(ctx context.Context, albumID string) (int, error) {
	val, err := c.client.Get(ctx, GetLikeKey(albumID)).Result()
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		// 损坏的缓存值按未命中处理，由调用方回源重建
		return 0, fmt.Errorf("corrupt like count for album %s: %w", albumID, err)
	}
	return count, nil
}

// SetCount 写入专辑点赞数并设置过期时间
func (c *RedisLikeCache) SetCount(ctx context.Context, albumID string, count int) error {
	return c.client.Set(ctx, GetLikeKey(albumID), strconv.Itoa(count), c.ttl).Err()
}

// Invalidate 删除专辑点赞数缓存，下一次读取会回源重建
func (c *RedisLikeCache) Invalidate(ctx context.Context, albumID string) error {
	return c.client.Del(ctx, GetLikeKey(albumID)).Err()
}
