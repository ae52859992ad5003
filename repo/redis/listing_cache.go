package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/myErrors"
)

// ListingCache 列表页缓存。
// - 以列表路径（例如 "/admin/houses"）为键，值为 JSON 序列化的列表数据。
// - 读路径 cache-aside：未命中时由服务层回源 MySQL 并回填。
// - 写路径成功后按路径失效，下一次读取拿到最新数据。
type ListingCache interface {
	// GetListing 读取路径对应的缓存并反序列化到 dest。
	// - 未命中返回 myErrors.ErrCacheMiss。
	GetListing(ctx context.Context, path string, dest interface{}) error

	// SetListing 序列化 value 并写入缓存，带 TTL
	SetListing(ctx context.Context, path string, value interface{}) error

	// InvalidateListings 删除给定路径的缓存，不存在的键忽略
	InvalidateListings(ctx context.Context, paths ...string) error
}

type listingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewListingCache ttl <= 0 时使用 constant.DefaultListingCacheTTL
func NewListingCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) ListingCache {
	if ttl <= 0 {
		ttl = constant.DefaultListingCacheTTL
	}
	return &listingCache{client: client, ttl: ttl, logger: logger}
}

func listingKey(path string) string {
	return constant.ListingCacheKeyPrefix + path
}

func (c *listingCache) GetListing(ctx context.Context, path string, dest interface{}) error {
	data, err := c.client.Get(ctx, listingKey(path)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return myErrors.ErrCacheMiss
		}
		return fmt.Errorf("读取列表缓存 %s 失败: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// 无法解析的脏数据按未命中处理，顺手删除，避免反复失败
		c.logger.Warn("列表缓存反序列化失败，删除该键", zap.String("path", path), zap.Error(err))
		_ = c.client.Del(ctx, listingKey(path)).Err()
		return myErrors.ErrCacheMiss
	}
	return nil
}

func (c *listingCache) SetListing(ctx context.Context, path string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("序列化列表缓存 %s 失败: %w", path, err)
	}
	if err := c.client.Set(ctx, listingKey(path), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("写入列表缓存 %s 失败: %w", path, err)
	}
	return nil
}

func (c *listingCache) InvalidateListings(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, listingKey(p))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("失效列表缓存失败: %w", err)
	}
	c.logger.Debug("列表缓存已失效", zap.Strings("paths", paths))
	return nil
}
