package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/myErrors"
	redisrepo "github.com/Xushengqwer/house_service/repo/redis"
)

// listingCache 包装 redis.ListingCache：缓存未配置(nil)时所有操作退化为空操作，
// 缓存故障只记录日志，不影响读写结果。
type listingCache struct {
	cache       redisrepo.ListingCache
	logger      *zap.Logger
	secondDelay time.Duration
}

func newListingCache(cache redisrepo.ListingCache, logger *zap.Logger) listingCache {
	return listingCache{cache: cache, logger: logger, secondDelay: constant.ListingSecondDeleteDelay}
}

// load 命中时返回 true 并填充 dest
func (l listingCache) load(ctx context.Context, path string, dest interface{}) bool {
	if l.cache == nil {
		return false
	}
	err := l.cache.GetListing(ctx, path, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, myErrors.ErrCacheMiss) {
		l.logger.Warn("读取列表缓存失败，回源数据库", zap.String("path", path), zap.Error(err))
	}
	return false
}

func (l listingCache) store(ctx context.Context, path string, value interface{}) {
	if l.cache == nil {
		return
	}
	if err := l.cache.SetListing(ctx, path, value); err != nil {
		l.logger.Warn("回填列表缓存失败", zap.String("path", path), zap.Error(err))
	}
}

// invalidate 写操作成功后调用：立即删除一次，secondDelay 后再删除一次。
// 失败只记录日志，不回滚写操作。
func (l listingCache) invalidate(ctx context.Context, paths ...string) {
	if l.cache == nil {
		return
	}
	l.deleteListings(ctx, paths)
	if l.secondDelay <= 0 {
		return
	}

	detached := context.WithoutCancel(ctx)
	time.AfterFunc(l.secondDelay, func() {
		delCtx, cancel := context.WithTimeout(detached, 2*time.Second)
		defer cancel()
		l.deleteListings(delCtx, paths)
	})
}

func (l listingCache) deleteListings(ctx context.Context, paths []string) {
	if err := l.cache.InvalidateListings(ctx, paths...); err != nil {
		l.logger.Error("失效列表缓存失败", zap.Strings("paths", paths), zap.Error(err))
	}
}
