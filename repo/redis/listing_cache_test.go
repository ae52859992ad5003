package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/myErrors"
)

type cachedRow struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T, ttl time.Duration) (ListingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewListingCache(client, ttl, zap.NewNop()), mr
}

func TestListingCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, time.Minute)

	var rows []cachedRow
	require.ErrorIs(t, cache.GetListing(ctx, constant.AdminHousesPath, &rows), myErrors.ErrCacheMiss)

	require.NoError(t, cache.SetListing(ctx, constant.AdminHousesPath, []cachedRow{{ID: 1, Name: "Дом"}}))
	require.NoError(t, cache.GetListing(ctx, constant.AdminHousesPath, &rows))
	require.Equal(t, []cachedRow{{ID: 1, Name: "Дом"}}, rows)
	require.Equal(t, time.Minute, mr.TTL(constant.ListingCacheKeyPrefix+constant.AdminHousesPath))

	mr.FastForward(2 * time.Minute)
	require.ErrorIs(t, cache.GetListing(ctx, constant.AdminHousesPath, &rows), myErrors.ErrCacheMiss)
}

func TestListingCache_DefaultTTL(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	require.NoError(t, cache.SetListing(context.Background(), constant.PublicHousesPath, map[string]int{"a": 1}))
	require.Equal(t, constant.DefaultListingCacheTTL, mr.TTL(constant.ListingCacheKeyPrefix+constant.PublicHousesPath))
}

func TestListingCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, time.Minute)

	for _, p := range constant.HouseListingPaths {
		require.NoError(t, cache.SetListing(ctx, p, []cachedRow{}))
	}
	require.NoError(t, cache.SetListing(ctx, constant.AdminRegionsPath, []cachedRow{}))

	require.NoError(t, cache.InvalidateListings(ctx, constant.HouseListingPaths...))
	for _, p := range constant.HouseListingPaths {
		require.False(t, mr.Exists(constant.ListingCacheKeyPrefix+p))
	}
	require.True(t, mr.Exists(constant.ListingCacheKeyPrefix+constant.AdminRegionsPath))

	// 空参数与不存在的键都不报错
	require.NoError(t, cache.InvalidateListings(ctx))
	require.NoError(t, cache.InvalidateListings(ctx, "/missing"))
}

func TestListingCache_CorruptValueIsMiss(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	key := constant.ListingCacheKeyPrefix + constant.AdminPhonesPath
	require.NoError(t, mr.Set(key, "not-json"))

	var rows []cachedRow
	require.ErrorIs(t, cache.GetListing(context.Background(), constant.AdminPhonesPath, &rows), myErrors.ErrCacheMiss)
	require.False(t, mr.Exists(key))
}

func TestListingCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	var rows []cachedRow
	err := cache.GetListing(context.Background(), constant.AdminHousesPath, &rows)
	require.Error(t, err)
	require.NotErrorIs(t, err, myErrors.ErrCacheMiss)
}
